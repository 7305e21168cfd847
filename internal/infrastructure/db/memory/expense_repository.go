package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/spendbook/expenses-api/internal/core/domain"
	"github.com/spendbook/expenses-api/internal/core/ports"
)

type ExpenseRepository struct {
	mu       sync.RWMutex
	nextID   int64
	expenses []*domain.Expense
	byID     map[int64]*domain.Expense
}

func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		nextID: 1,
		byID:   make(map[int64]*domain.Expense),
	}
}

// Create assigns the next id and appends the expense.
func (r *ExpenseRepository) Create(_ context.Context, e *domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++

	stored := cloneExpense(e)
	r.expenses = append(r.expenses, stored)
	r.byID[stored.ID] = stored
	return nil
}

func (r *ExpenseRepository) FindByID(_ context.Context, id int64) (*domain.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrExpenseNotFound
	}
	return cloneExpense(e), nil
}

// List returns the expenses matching filter, in insertion order.
func (r *ExpenseRepository) List(_ context.Context, filter ports.ExpenseFilter) ([]*domain.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Expense, 0)
	if filter.Unmatchable {
		return out, nil
	}
	for _, e := range r.expenses {
		if matches(filter, e) {
			out = append(out, cloneExpense(e))
		}
	}
	return out, nil
}

func (r *ExpenseRepository) Update(_ context.Context, e *domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[e.ID]
	if !ok {
		return domain.ErrExpenseNotFound
	}
	*stored = *cloneExpense(e)
	return nil
}

func (r *ExpenseRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrExpenseNotFound
	}
	delete(r.byID, id)
	for i, e := range r.expenses {
		if e.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			break
		}
	}
	return nil
}

// matches applies every supplied predicate. An expense whose spentAt does not
// parse as a date can never satisfy a date bound, but still matches filters
// without date bounds.
func matches(f ports.ExpenseFilter, e *domain.Expense) bool {
	if f.UserID != nil && e.UserID != *f.UserID {
		return false
	}
	if f.From != nil || f.To != nil {
		spent, err := domain.ParseDate(e.SpentAt)
		if err != nil {
			return false
		}
		if f.From != nil && spent.Before(*f.From) {
			return false
		}
		if f.To != nil && spent.After(*f.To) {
			return false
		}
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, e.Category) {
		return false
	}
	return true
}

// cloneExpense deep-copies an expense so the note pointer is never shared
// between the store and callers.
func cloneExpense(e *domain.Expense) *domain.Expense {
	clone := *e
	if e.Note != nil {
		note := *e.Note
		clone.Note = &note
	}
	return &clone
}
