package ports

import (
	"context"

	"github.com/spendbook/expenses-api/internal/core/domain"
)

// UserRepository defines persistence operations for users. Implementations own
// the ordered collection and the id counter; Create assigns the next id.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// List returns all users in insertion order.
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
	// Exists reports whether a user with the given id is currently stored.
	// Used by the expense side for referential checks.
	Exists(ctx context.Context, id int64) (bool, error)
}
