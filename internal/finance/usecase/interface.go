package usecase

import (
	"fintrack-backend/internal/finance/domain"
	"fintrack-backend/internal/finance/dto"
	"fintrack-backend/pkg/query"
)

// FinanceUsecase exposes owner-scoped CRUD over categories, expenses and
// incomes. Reads, updates and deletes of a single resource enforce ownership
// by comparing the stored user reference against the caller.
type FinanceUsecase interface {
	ListCategories(userID string, opts query.Options) ([]*domain.Category, int64, error)
	GetCategory(userID, id string) (*domain.Category, error)
	CreateCategory(userID string, req *dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(userID, id string, req *dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(userID, id string) error

	ListExpenses(userID string, opts query.Options) ([]*domain.Expense, int64, error)
	GetExpense(userID, id string) (*domain.Expense, error)
	CreateExpense(userID string, req *dto.CreateExpenseRequest) (*domain.Expense, error)
	UpdateExpense(userID, id string, req *dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(userID, id string) error

	ListIncomes(userID string, opts query.Options) ([]*domain.Income, int64, error)
	GetIncome(userID, id string) (*domain.Income, error)
	CreateIncome(userID string, req *dto.CreateIncomeRequest) (*domain.Income, error)
	UpdateIncome(userID, id string, req *dto.UpdateIncomeRequest) (*domain.Income, error)
	DeleteIncome(userID, id string) error
}
