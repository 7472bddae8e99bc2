package domain

import "time"

// Income is a single earning entry for one user.
type Income struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Detail    string    `json:"detail" gorm:"not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}
