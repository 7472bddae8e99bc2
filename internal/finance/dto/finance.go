package dto

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

type CreateExpenseRequest struct {
	Date       string  `json:"date" binding:"required"`
	Time       string  `json:"time" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Detail     string  `json:"detail" binding:"required"`
	CategoryID string  `json:"category_id" binding:"required"`
}

type UpdateExpenseRequest struct {
	Date       *string  `json:"date"`
	Time       *string  `json:"time"`
	Amount     *float64 `json:"amount"`
	Detail     *string  `json:"detail"`
	CategoryID *string  `json:"category_id"`
}

type CreateIncomeRequest struct {
	Detail string  `json:"detail" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

type UpdateIncomeRequest struct {
	Detail *string  `json:"detail"`
	Amount *float64 `json:"amount"`
}
