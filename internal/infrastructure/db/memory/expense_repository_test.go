package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spendbook/expenses-api/internal/core/domain"
	"github.com/spendbook/expenses-api/internal/core/ports"
)

func seedExpense(t *testing.T, repo *ExpenseRepository, userID int64, spentAt, category string) *domain.Expense {
	t.Helper()
	e := &domain.Expense{
		UserID:   userID,
		SpentAt:  spentAt,
		Title:    "entry",
		Amount:   10,
		Category: category,
	}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	return e
}

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return &parsed
}

func TestExpenseRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewExpenseRepository()

	first := seedExpense(t, repo, 1, "2024-01-10", "food")
	second := seedExpense(t, repo, 1, "2024-01-11", "travel")

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestExpenseRepository_ListInsertionOrder(t *testing.T) {
	repo := NewExpenseRepository()

	seedExpense(t, repo, 1, "2024-03-01", "food")
	seedExpense(t, repo, 1, "2024-01-01", "food")
	seedExpense(t, repo, 1, "2024-02-01", "food")

	got, err := repo.List(context.Background(), ports.ExpenseFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, want := range []int64{1, 2, 3} {
		if got[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, got[i].ID)
		}
	}
}

func TestExpenseRepository_ListFilters(t *testing.T) {
	repo := NewExpenseRepository()
	ctx := context.Background()

	seedExpense(t, repo, 1, "2024-01-10", "food")
	seedExpense(t, repo, 1, "2024-02-10", "travel")
	seedExpense(t, repo, 2, "2024-01-20", "food")

	one := int64(1)
	nobody := int64(-1)

	tests := []struct {
		name    string
		filter  ports.ExpenseFilter
		wantIDs []int64
	}{
		{"no predicates", ports.ExpenseFilter{}, []int64{1, 2, 3}},
		{"by user", ports.ExpenseFilter{UserID: &one}, []int64{1, 2}},
		{"user and category", ports.ExpenseFilter{UserID: &one, Categories: []string{"food", "misc"}}, []int64{1}},
		{"from inclusive", ports.ExpenseFilter{From: datePtr(t, "2024-01-20")}, []int64{2, 3}},
		{"to inclusive", ports.ExpenseFilter{To: datePtr(t, "2024-01-20")}, []int64{1, 3}},
		{"window", ports.ExpenseFilter{From: datePtr(t, "2024-01-01"), To: datePtr(t, "2024-01-31")}, []int64{1, 3}},
		{"category case-sensitive", ports.ExpenseFilter{Categories: []string{"Food"}}, nil},
		{"sentinel user matches nothing", ports.ExpenseFilter{UserID: &nobody}, nil},
		{"unmatchable", ports.ExpenseFilter{Unmatchable: true, UserID: &one}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d expenses, got %d", len(tt.wantIDs), len(got))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Fatalf("position %d: expected id %d, got %d", i, want, got[i].ID)
				}
			}
		})
	}
}

func TestExpenseRepository_DateFilterSkipsUnparseableSpentAt(t *testing.T) {
	repo := NewExpenseRepository()
	ctx := context.Background()

	seedExpense(t, repo, 1, "someday", "food")

	got, err := repo.List(ctx, ports.ExpenseFilter{From: datePtr(t, "2024-01-01")})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches for unparseable spentAt under a date bound, got %d", len(got))
	}

	// Without a date bound the record still lists normally.
	got, err = repo.List(ctx, ports.ExpenseFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 expense without date bounds, got %d", len(got))
	}
}

func TestExpenseRepository_NoteCloneIsolation(t *testing.T) {
	repo := NewExpenseRepository()
	ctx := context.Background()

	note := "shared?"
	e := &domain.Expense{UserID: 1, SpentAt: "2024-01-10", Title: "x", Amount: 1, Category: "food", Note: &note}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	*got.Note = "mutated"

	again, err := repo.FindByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if *again.Note != "shared?" {
		t.Fatalf("stored note mutated through returned clone: %q", *again.Note)
	}
}

func TestExpenseRepository_DeleteKeepsCounter(t *testing.T) {
	repo := NewExpenseRepository()
	ctx := context.Background()

	first := seedExpense(t, repo, 1, "2024-01-10", "food")
	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.FindByID(ctx, first.ID); !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}

	second := seedExpense(t, repo, 1, "2024-01-11", "food")
	if second.ID != 2 {
		t.Fatalf("expected id 2 after delete, got %d", second.ID)
	}
}
