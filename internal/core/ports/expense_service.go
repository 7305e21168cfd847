package ports

import (
	"context"

	"github.com/spendbook/expenses-api/internal/core/domain"
)

// UserIDField is the owner reference as supplied by the client. The wire
// payloads are loosely typed: the value may be a JSON number or a numeric
// string, may be explicitly null, or may be missing entirely, and each case
// carries different semantics.
type UserIDField struct {
	Present bool  // supplied and not null
	Valid   bool  // parsed as a number
	ID      int64 // parsed id; -1 when the number has no integral id form
}

// NoteField distinguishes an omitted note from an explicit null. On updates an
// explicit null clears the note while an omitted field leaves it unchanged.
type NoteField struct {
	Present bool
	Value   *string // nil = explicit null
}

// CreateExpenseInput carries the create payload. Pointer fields are nil when
// the payload omitted the field or sent null; both count as missing.
type CreateExpenseInput struct {
	UserID   UserIDField
	SpentAt  *string
	Title    *string
	Amount   *float64
	Category *string
	Note     NoteField
}

// UpdateExpenseInput carries a sparse update: nil / non-present fields leave
// the stored value unchanged.
type UpdateExpenseInput struct {
	ID       int64
	UserID   UserIDField
	SpentAt  *string
	Title    *string
	Amount   *float64
	Category *string
	Note     NoteField
}

// ListExpensesInput carries the raw query values. An empty string means the
// predicate was not supplied; malformed values never fail the request.
type ListExpensesInput struct {
	UserID     string
	From       string
	To         string
	Categories string // comma-separated category labels
}

// ExpenseService defines use-case operations for expenses.
type ExpenseService interface {
	List(ctx context.Context, input ListExpensesInput) ([]*domain.Expense, error)
	Get(ctx context.Context, id int64) (*domain.Expense, error)
	Create(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error)
	Update(ctx context.Context, input UpdateExpenseInput) (*domain.Expense, error)
	Delete(ctx context.Context, id int64) error
}
