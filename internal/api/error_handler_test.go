package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spendbook/expenses-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/expenses/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/expenses/:id")

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return rec.Code, body["error"]
}

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"expense not found", domain.ErrExpenseNotFound, http.StatusNotFound, "Expense not found"},
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest, "Missing required fields"},
		{"invalid userId", domain.ErrInvalidUserID, http.StatusBadRequest, "Invalid userId"},
		{"unknown user on create", domain.ErrUnknownUser, http.StatusBadRequest, "User not found"},
		{"empty field", domain.ErrEmptyField("category"), http.StatusBadRequest, "category cannot be empty"},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := renderError(t, tt.err)
			if code != tt.wantCode || msg != tt.wantMsg {
				t.Fatalf("got %d %q, want %d %q", code, msg, tt.wantCode, tt.wantMsg)
			}
		})
	}
}
