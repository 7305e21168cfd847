package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/spendbook/expenses-api/internal/core/domain"
	"github.com/spendbook/expenses-api/internal/core/ports"
)

type ExpenseService struct {
	repo   ports.ExpenseRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewExpenseService(repo ports.ExpenseRepository, users ports.UserRepository, logger zerolog.Logger) *ExpenseService {
	return &ExpenseService{repo: repo, users: users, logger: logger}
}

// List returns the expenses matching all supplied query predicates. Malformed
// values never fail the request: an unparsable userId or date bound simply
// matches nothing, yielding an empty array.
func (s *ExpenseService) List(ctx context.Context, input ports.ListExpensesInput) ([]*domain.Expense, error) {
	var filter ports.ExpenseFilter

	if input.UserID != "" {
		id, err := strconv.ParseInt(input.UserID, 10, 64)
		if err != nil {
			id = -1 // keeps the predicate active but never matches a record
		}
		filter.UserID = &id
	}

	if input.From != "" {
		if t, err := domain.ParseDate(input.From); err != nil {
			filter.Unmatchable = true
		} else {
			filter.From = &t
		}
	}

	if input.To != "" {
		if t, err := domain.ParseDate(input.To); err != nil {
			filter.Unmatchable = true
		} else {
			filter.To = &t
		}
	}

	if input.Categories != "" {
		filter.Categories = strings.Split(input.Categories, ",")
	}

	return s.repo.List(ctx, filter)
}

func (s *ExpenseService) Get(ctx context.Context, id int64) (*domain.Expense, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and stores a new expense. Validation order is fixed:
// field presence, then userId numeric form, then the referential check. A
// missing user here is a payload defect, so it surfaces as a validation
// failure rather than a not-found lookup.
func (s *ExpenseService) Create(ctx context.Context, input ports.CreateExpenseInput) (*domain.Expense, error) {
	if !input.UserID.Present || input.SpentAt == nil || input.Title == nil ||
		input.Amount == nil || input.Category == nil {
		return nil, domain.ErrMissingFields
	}
	if !input.UserID.Valid {
		return nil, domain.ErrInvalidUserID
	}

	ok, err := s.users.Exists(ctx, input.UserID.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnknownUser
	}

	expense := &domain.Expense{
		UserID:   input.UserID.ID,
		SpentAt:  *input.SpentAt,
		Title:    *input.Title,
		Amount:   *input.Amount,
		Category: *input.Category,
		Note:     noteValue(input.Note),
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		s.logger.Error().Err(err).Msg("failed to create expense")
		return nil, err
	}

	s.logger.Info().
		Int64("expense_id", expense.ID).
		Int64("user_id", expense.UserID).
		Str("category", expense.Category).
		Msg("expense created")
	return expense, nil
}

// Update applies a sparse update. Every supplied field is validated before any
// is applied, so a rejected update leaves the stored record untouched. A
// reassignment to a missing user is a not-found failure here, unlike Create.
func (s *ExpenseService) Update(ctx context.Context, input ports.UpdateExpenseInput) (*domain.Expense, error) {
	expense, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.UserID.Present {
		if !input.UserID.Valid {
			return nil, domain.ErrUserNotFound
		}
		ok, err := s.users.Exists(ctx, input.UserID.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrUserNotFound
		}
		expense.UserID = input.UserID.ID
	}

	if input.SpentAt != nil {
		if *input.SpentAt == "" {
			return nil, domain.ErrEmptyField("spentAt")
		}
		expense.SpentAt = *input.SpentAt
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domain.ErrEmptyField("title")
		}
		expense.Title = *input.Title
	}

	if input.Amount != nil {
		expense.Amount = *input.Amount
	}

	if input.Category != nil {
		if *input.Category == "" {
			return nil, domain.ErrEmptyField("category")
		}
		expense.Category = *input.Category
	}

	if input.Note.Present {
		expense.Note = input.Note.Value
	}

	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("expense_id", expense.ID).Msg("expense updated")
	return expense, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("expense_id", id).Msg("expense deleted")
	return nil
}

// noteValue normalizes the stored note at creation time: an omitted field, an
// explicit null, and an empty string all store as null.
func noteValue(n ports.NoteField) *string {
	if !n.Present || n.Value == nil || *n.Value == "" {
		return nil
	}
	return n.Value
}
