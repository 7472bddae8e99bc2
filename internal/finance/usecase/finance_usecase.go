package usecase

import (
	"time"

	"fintrack-backend/internal/finance/domain"
	"fintrack-backend/internal/finance/dto"
	"fintrack-backend/internal/finance/repository"
	"fintrack-backend/pkg/query"
)

const dateLayout = "2006-01-02"

// financeUsecase implements FinanceUsecase.
type financeUsecase struct {
	categoryRepo repository.CategoryRepository
	expenseRepo  repository.ExpenseRepository
	incomeRepo   repository.IncomeRepository
}

// NewFinanceUsecase creates a new instance of financeUsecase.
func NewFinanceUsecase(categoryRepo repository.CategoryRepository, expenseRepo repository.ExpenseRepository, incomeRepo repository.IncomeRepository) FinanceUsecase {
	return &financeUsecase{
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
		incomeRepo:   incomeRepo,
	}
}

// Categories

func (u *financeUsecase) ListCategories(userID string, opts query.Options) ([]*domain.Category, int64, error) {
	return u.categoryRepo.List(userID, opts)
}

func (u *financeUsecase) GetCategory(userID, id string) (*domain.Category, error) {
	category, err := u.categoryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	if category.UserID != userID {
		return nil, ErrNotOwner
	}
	return category, nil
}

func (u *financeUsecase) CreateCategory(userID string, req *dto.CreateCategoryRequest) (*domain.Category, error) {
	category := &domain.Category{
		Name:   req.Name,
		UserID: userID,
	}
	if err := u.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (u *financeUsecase) UpdateCategory(userID, id string, req *dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := u.GetCategory(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if err := u.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (u *financeUsecase) DeleteCategory(userID, id string) error {
	if _, err := u.GetCategory(userID, id); err != nil {
		return err
	}
	return u.categoryRepo.Delete(id)
}

// Expenses

func (u *financeUsecase) ListExpenses(userID string, opts query.Options) ([]*domain.Expense, int64, error) {
	return u.expenseRepo.List(userID, opts)
}

func (u *financeUsecase) GetExpense(userID, id string) (*domain.Expense, error) {
	expense, err := u.expenseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrNotFound
	}
	if expense.UserID != userID {
		return nil, ErrNotOwner
	}
	return expense, nil
}

func (u *financeUsecase) CreateExpense(userID string, req *dto.CreateExpenseRequest) (*domain.Expense, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	expense := &domain.Expense{
		Date:       date,
		Time:       req.Time,
		Amount:     req.Amount,
		Detail:     req.Detail,
		CategoryID: req.CategoryID,
		UserID:     userID,
	}
	if err := u.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (u *financeUsecase) UpdateExpense(userID, id string, req *dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := u.GetExpense(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		expense.Date = date
	}
	if req.Time != nil {
		expense.Time = *req.Time
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Detail != nil {
		expense.Detail = *req.Detail
	}
	if req.CategoryID != nil {
		expense.CategoryID = *req.CategoryID
	}

	// Drop stale preloads so Save does not write relation rows.
	expense.Category = nil
	expense.User = nil

	if err := u.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (u *financeUsecase) DeleteExpense(userID, id string) error {
	if _, err := u.GetExpense(userID, id); err != nil {
		return err
	}
	return u.expenseRepo.Delete(id)
}

// Incomes

func (u *financeUsecase) ListIncomes(userID string, opts query.Options) ([]*domain.Income, int64, error) {
	return u.incomeRepo.List(userID, opts)
}

func (u *financeUsecase) GetIncome(userID, id string) (*domain.Income, error) {
	income, err := u.incomeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, ErrNotFound
	}
	if income.UserID != userID {
		return nil, ErrNotOwner
	}
	return income, nil
}

func (u *financeUsecase) CreateIncome(userID string, req *dto.CreateIncomeRequest) (*domain.Income, error) {
	income := &domain.Income{
		Detail: req.Detail,
		Amount: req.Amount,
		UserID: userID,
	}
	if err := u.incomeRepo.Create(income); err != nil {
		return nil, err
	}
	return income, nil
}

func (u *financeUsecase) UpdateIncome(userID, id string, req *dto.UpdateIncomeRequest) (*domain.Income, error) {
	income, err := u.GetIncome(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Detail != nil {
		income.Detail = *req.Detail
	}
	if req.Amount != nil {
		income.Amount = *req.Amount
	}
	if err := u.incomeRepo.Update(income); err != nil {
		return nil, err
	}
	return income, nil
}

func (u *financeUsecase) DeleteIncome(userID, id string) error {
	if _, err := u.GetIncome(userID, id); err != nil {
		return err
	}
	return u.incomeRepo.Delete(id)
}
