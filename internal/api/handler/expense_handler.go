package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spendbook/expenses-api/internal/api/metrics"
	"github.com/spendbook/expenses-api/internal/core/domain"
	"github.com/spendbook/expenses-api/internal/core/ports"
)

// ExpenseHandler handles HTTP requests for expense operations.
type ExpenseHandler struct {
	service ports.ExpenseService
}

func NewExpenseHandler(service ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// List handles GET /expenses with optional conjunctive filters.
//
// @Summary      List expenses
// @Tags         expenses
// @Produce      json
// @Param        userId      query     string  false  "Exact owner id"
// @Param        from        query     string  false  "Inclusive lower spentAt bound (e.g. 2024-01-01)"
// @Param        to          query     string  false  "Inclusive upper spentAt bound"
// @Param        categories  query     string  false  "Comma-separated category labels"
// @Success      200         {array}   expenseResponse
// @Router       /expenses [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	expenses, err := h.service.List(c.Request().Context(), ports.ListExpensesInput{
		UserID:     c.QueryParam("userId"),
		From:       c.QueryParam("from"),
		To:         c.QueryParam("to"),
		Categories: c.QueryParam("categories"),
	})
	if err != nil {
		return err
	}

	resp := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, toExpenseResponse(e))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /expenses/:id.
//
// @Summary      Get an expense by id
// @Tags         expenses
// @Produce      json
// @Param        id   path      int  true  "Expense id"
// @Success      200  {object}  expenseResponse
// @Failure      404  {object}  map[string]string
// @Router       /expenses/{id} [get]
func (h *ExpenseHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return domain.ErrExpenseNotFound
	}

	expense, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// Create handles POST /expenses.
//
// @Summary      Create an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body      createExpenseRequest  true  "Expense details"
// @Success      201   {object}  expenseResponse
// @Failure      400   {object}  map[string]string
// @Router       /expenses [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	expense, err := h.service.Create(c.Request().Context(), ports.CreateExpenseInput{
		UserID:   toUserIDField(req.UserID),
		SpentAt:  req.SpentAt,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Note:     toNoteField(req.Note),
	})
	if err != nil {
		return err
	}

	metrics.ExpensesCreatedTotal.WithLabelValues(expense.Category).Inc()
	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// Update handles PATCH /expenses/:id with a sparse payload.
//
// @Summary      Update an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Expense id"
// @Param        body  body      updateExpenseRequest  true  "Fields to change"
// @Success      200   {object}  expenseResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /expenses/{id} [patch]
func (h *ExpenseHandler) Update(c echo.Context) error {
	var req updateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, ok := pathID(c)
	if !ok {
		return domain.ErrExpenseNotFound
	}

	expense, err := h.service.Update(c.Request().Context(), ports.UpdateExpenseInput{
		ID:       id,
		UserID:   toUserIDField(req.UserID),
		SpentAt:  req.SpentAt,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Note:     toNoteField(req.Note),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// Delete handles DELETE /expenses/:id.
//
// @Summary      Delete an expense
// @Tags         expenses
// @Param        id  path  int  true  "Expense id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return domain.ErrExpenseNotFound
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ExpensesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
