package ports

import (
	"context"
	"time"

	"github.com/spendbook/expenses-api/internal/core/domain"
)

// ExpenseFilter carries the optional list predicates. Every supplied predicate
// must hold for an expense to be returned (conjunction); a zero filter matches
// everything.
type ExpenseFilter struct {
	UserID     *int64     // exact owner match
	From       *time.Time // spentAt on or after From
	To         *time.Time // spentAt on or before To
	Categories []string   // category must be a member (exact, case-sensitive)

	// Unmatchable marks a filter whose raw date input did not parse. The
	// listing stays successful but matches no expense, mirroring the
	// permissive query handling of the HTTP surface.
	Unmatchable bool
}

// ExpenseRepository defines persistence operations for expenses. Create
// assigns the next id from the repository-owned counter.
type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) error
	FindByID(ctx context.Context, id int64) (*domain.Expense, error)
	// List returns the expenses matching filter, in insertion order.
	List(ctx context.Context, filter ExpenseFilter) ([]*domain.Expense, error)
	Update(ctx context.Context, e *domain.Expense) error
	Delete(ctx context.Context, id int64) error
}
