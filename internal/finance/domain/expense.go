package domain

import (
	"time"

	authdomain "fintrack-backend/internal/auth/domain"
)

// Expense is a single spending entry, tied to a category and its owner.
type Expense struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Date       time.Time `json:"date" gorm:"not null"`
	Time       string    `json:"time" gorm:"not null"`
	Amount     float64   `json:"amount" gorm:"not null"`
	Detail     string    `json:"detail" gorm:"not null"`
	CategoryID string    `json:"category_id" gorm:"index;not null"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	CreatedAt  time.Time `json:"created_at"`

	// Preloaded relations, populated on list requests only.
	Category *Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	User     *authdomain.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
