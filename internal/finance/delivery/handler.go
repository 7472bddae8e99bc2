package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack-backend/internal/finance/dto"
	"fintrack-backend/internal/finance/usecase"
	"fintrack-backend/pkg/query"
	"fintrack-backend/pkg/response"
)

// FinanceHandler handles category, expense and income HTTP requests.
type FinanceHandler struct {
	financeUsecase usecase.FinanceUsecase
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(financeUsecase usecase.FinanceUsecase) *FinanceHandler {
	return &FinanceHandler{
		financeUsecase: financeUsecase,
	}
}

// Categories

// ListCategories returns the caller's categories, filtered and paginated.
// GET /api/categories
func (h *FinanceHandler) ListCategories(c *gin.Context) {
	opts := query.Parse(c.Request.URL.Query())
	categories, total, err := h.financeUsecase.ListCategories(c.GetString("userID"), opts)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.List(c, http.StatusOK, categories, len(categories), query.Paginate(total, opts.Page, opts.Limit))
}

// GetCategory returns a single category owned by the caller.
// GET /api/categories/:id
func (h *FinanceHandler) GetCategory(c *gin.Context) {
	category, err := h.financeUsecase.GetCategory(c.GetString("userID"), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, category)
}

// CreateCategory creates a category for the caller.
// POST /api/categories
func (h *FinanceHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.financeUsecase.CreateCategory(c.GetString("userID"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, category)
}

// UpdateCategory updates a category owned by the caller.
// PUT /api/categories/:id
func (h *FinanceHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.financeUsecase.UpdateCategory(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, category)
}

// DeleteCategory removes a category owned by the caller.
// DELETE /api/categories/:id
func (h *FinanceHandler) DeleteCategory(c *gin.Context) {
	if err := h.financeUsecase.DeleteCategory(c.GetString("userID"), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{})
}

// Expenses

// ListExpenses returns the caller's expenses with category and user preloaded.
// GET /api/expenses
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	opts := query.Parse(c.Request.URL.Query())
	expenses, total, err := h.financeUsecase.ListExpenses(c.GetString("userID"), opts)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.List(c, http.StatusOK, expenses, len(expenses), query.Paginate(total, opts.Page, opts.Limit))
}

// GetExpense returns a single expense owned by the caller.
// GET /api/expenses/:id
func (h *FinanceHandler) GetExpense(c *gin.Context) {
	expense, err := h.financeUsecase.GetExpense(c.GetString("userID"), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, expense)
}

// CreateExpense creates an expense for the caller.
// POST /api/expenses
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := h.financeUsecase.CreateExpense(c.GetString("userID"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, expense)
}

// UpdateExpense updates an expense owned by the caller.
// PUT /api/expenses/:id
func (h *FinanceHandler) UpdateExpense(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := h.financeUsecase.UpdateExpense(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, expense)
}

// DeleteExpense removes an expense owned by the caller.
// DELETE /api/expenses/:id
func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	if err := h.financeUsecase.DeleteExpense(c.GetString("userID"), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{})
}

// Incomes

// ListIncomes returns the caller's incomes, filtered and paginated.
// GET /api/incomes
func (h *FinanceHandler) ListIncomes(c *gin.Context) {
	opts := query.Parse(c.Request.URL.Query())
	incomes, total, err := h.financeUsecase.ListIncomes(c.GetString("userID"), opts)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.List(c, http.StatusOK, incomes, len(incomes), query.Paginate(total, opts.Page, opts.Limit))
}

// GetIncome returns a single income owned by the caller.
// GET /api/incomes/:id
func (h *FinanceHandler) GetIncome(c *gin.Context) {
	income, err := h.financeUsecase.GetIncome(c.GetString("userID"), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, income)
}

// CreateIncome creates an income for the caller.
// POST /api/incomes
func (h *FinanceHandler) CreateIncome(c *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	income, err := h.financeUsecase.CreateIncome(c.GetString("userID"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, income)
}

// UpdateIncome updates an income owned by the caller.
// PUT /api/incomes/:id
func (h *FinanceHandler) UpdateIncome(c *gin.Context) {
	var req dto.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	income, err := h.financeUsecase.UpdateIncome(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, income)
}

// DeleteIncome removes an income owned by the caller.
// DELETE /api/incomes/:id
func (h *FinanceHandler) DeleteIncome(c *gin.Context) {
	if err := h.financeUsecase.DeleteIncome(c.GetString("userID"), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{})
}

// respondError maps usecase errors onto HTTP statuses and the uniform error
// envelope.
func (h *FinanceHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, usecase.ErrNotOwner):
		response.Error(c, http.StatusUnauthorized, "You are not authorized to access this route")
	case errors.Is(err, usecase.ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "Server error")
	}
}
