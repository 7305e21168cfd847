package ports

import (
	"context"

	"github.com/spendbook/expenses-api/internal/core/domain"
)

// UserService defines use-case operations for users.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, name string) (*domain.User, error)
	// Rename replaces the user's name. The id is immutable.
	Rename(ctx context.Context, id int64, name string) (*domain.User, error)
	// Delete removes the user. Expenses referencing it are left untouched.
	Delete(ctx context.Context, id int64) error
}
