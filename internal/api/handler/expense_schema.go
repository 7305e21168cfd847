package handler

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spendbook/expenses-api/internal/core/domain"
	"github.com/spendbook/expenses-api/internal/core/ports"
)

// userIDValue accepts the loosely typed userId payload field: a JSON number,
// a numeric string, null, or nothing at all. Unmarshalling never fails; the
// flags record what arrived so the service can apply the right rule.
type userIDValue struct {
	Present bool
	Valid   bool
	ID      int64
}

func (v *userIDValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil // explicit null counts as missing
	}
	v.Present = true

	s := strings.Trim(string(b), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil // non-numeric: Valid stays false
	}
	v.Valid = true
	if f == math.Trunc(f) {
		v.ID = int64(f)
	} else {
		v.ID = -1 // numeric but fractional: addresses no user
	}
	return nil
}

// nullableString distinguishes an omitted field from an explicit null.
type nullableString struct {
	Present bool
	Value   *string
}

func (n *nullableString) UnmarshalJSON(b []byte) error {
	n.Present = true
	if string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

type createExpenseRequest struct {
	UserID   userIDValue    `json:"userId"`
	SpentAt  *string        `json:"spentAt"`
	Title    *string        `json:"title"`
	Amount   *float64       `json:"amount"`
	Category *string        `json:"category"`
	Note     nullableString `json:"note"`
}

type updateExpenseRequest struct {
	UserID   userIDValue    `json:"userId"`
	SpentAt  *string        `json:"spentAt"`
	Title    *string        `json:"title"`
	Amount   *float64       `json:"amount"`
	Category *string        `json:"category"`
	Note     nullableString `json:"note"`
}

// expenseResponse is the transport-owned expense contract. Note serializes as
// JSON null when unset.
type expenseResponse struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"userId"`
	SpentAt  string  `json:"spentAt"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     *string `json:"note"`
}

func toExpenseResponse(e *domain.Expense) expenseResponse {
	return expenseResponse{
		ID:       e.ID,
		UserID:   e.UserID,
		SpentAt:  e.SpentAt,
		Title:    e.Title,
		Amount:   e.Amount,
		Category: e.Category,
		Note:     e.Note,
	}
}

func toUserIDField(v userIDValue) ports.UserIDField {
	return ports.UserIDField{Present: v.Present, Valid: v.Valid, ID: v.ID}
}

func toNoteField(n nullableString) ports.NoteField {
	return ports.NoteField{Present: n.Present, Value: n.Value}
}
