package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fintrack-backend/internal/finance/domain"
	"fintrack-backend/pkg/query"
)

// gormCategoryRepository implements CategoryRepository using GORM.
type gormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository.
func NewGormCategoryRepository(db *gorm.DB) CategoryRepository {
	return &gormCategoryRepository{db: db}
}

func (r *gormCategoryRepository) Create(category *domain.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	category.CreatedAt = time.Now()
	return r.db.Create(category).Error
}

func (r *gormCategoryRepository) FindByID(id string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *gormCategoryRepository) List(userID string, opts query.Options) ([]*domain.Category, int64, error) {
	var total int64
	err := r.db.Model(&domain.Category{}).
		Where("user_id = ?", userID).
		Scopes(opts.CountScope()).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var categories []*domain.Category
	err = r.db.Model(&domain.Category{}).
		Where("user_id = ?", userID).
		Scopes(opts.Scope()).
		Find(&categories).Error
	return categories, total, err
}

func (r *gormCategoryRepository) Update(category *domain.Category) error {
	return r.db.Save(category).Error
}

func (r *gormCategoryRepository) Delete(id string) error {
	return r.db.Delete(&domain.Category{}, "id = ?", id).Error
}

// gormExpenseRepository implements ExpenseRepository using GORM.
type gormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GORM-based ExpenseRepository.
func NewGormExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &gormExpenseRepository{db: db}
}

func (r *gormExpenseRepository) Create(expense *domain.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	expense.CreatedAt = time.Now()
	return r.db.Create(expense).Error
}

func (r *gormExpenseRepository) FindByID(id string) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.Where("id = ?", id).First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *gormExpenseRepository) List(userID string, opts query.Options) ([]*domain.Expense, int64, error) {
	var total int64
	err := r.db.Model(&domain.Expense{}).
		Where("user_id = ?", userID).
		Scopes(opts.CountScope()).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var expenses []*domain.Expense
	err = r.db.Model(&domain.Expense{}).
		Where("user_id = ?", userID).
		Scopes(opts.Scope()).
		Preload("Category").
		Preload("User").
		Find(&expenses).Error
	return expenses, total, err
}

func (r *gormExpenseRepository) Update(expense *domain.Expense) error {
	return r.db.Save(expense).Error
}

func (r *gormExpenseRepository) Delete(id string) error {
	return r.db.Delete(&domain.Expense{}, "id = ?", id).Error
}

// gormIncomeRepository implements IncomeRepository using GORM.
type gormIncomeRepository struct {
	db *gorm.DB
}

// NewGormIncomeRepository creates a new GORM-based IncomeRepository.
func NewGormIncomeRepository(db *gorm.DB) IncomeRepository {
	return &gormIncomeRepository{db: db}
}

func (r *gormIncomeRepository) Create(income *domain.Income) error {
	if income.ID == "" {
		income.ID = uuid.New().String()
	}
	income.CreatedAt = time.Now()
	return r.db.Create(income).Error
}

func (r *gormIncomeRepository) FindByID(id string) (*domain.Income, error) {
	var income domain.Income
	err := r.db.Where("id = ?", id).First(&income).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &income, nil
}

func (r *gormIncomeRepository) List(userID string, opts query.Options) ([]*domain.Income, int64, error) {
	var total int64
	err := r.db.Model(&domain.Income{}).
		Where("user_id = ?", userID).
		Scopes(opts.CountScope()).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var incomes []*domain.Income
	err = r.db.Model(&domain.Income{}).
		Where("user_id = ?", userID).
		Scopes(opts.Scope()).
		Find(&incomes).Error
	return incomes, total, err
}

func (r *gormIncomeRepository) Update(income *domain.Income) error {
	return r.db.Save(income).Error
}

func (r *gormIncomeRepository) Delete(id string) error {
	return r.db.Delete(&domain.Income{}, "id = ?", id).Error
}
