package repository

import (
	"fintrack-backend/internal/finance/domain"
	"fintrack-backend/pkg/query"
)

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	Create(category *domain.Category) error
	FindByID(id string) (*domain.Category, error)
	// List returns the user's categories matching opts plus the total count.
	List(userID string, opts query.Options) ([]*domain.Category, int64, error)
	Update(category *domain.Category) error
	Delete(id string) error
}

// ExpenseRepository defines data access for expenses. List preloads the
// Category and User relations.
type ExpenseRepository interface {
	Create(expense *domain.Expense) error
	FindByID(id string) (*domain.Expense, error)
	List(userID string, opts query.Options) ([]*domain.Expense, int64, error)
	Update(expense *domain.Expense) error
	Delete(id string) error
}

// IncomeRepository defines data access for incomes.
type IncomeRepository interface {
	Create(income *domain.Income) error
	FindByID(id string) (*domain.Income, error)
	List(userID string, opts query.Options) ([]*domain.Income, int64, error)
	Update(income *domain.Income) error
	Delete(id string) error
}
