package domain

// User is an account that owns expenses. IDs are assigned by the store,
// start at 1, and are never reused.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
