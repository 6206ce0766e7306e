package entity

import "time"

// Operator is a back-office user; Password holds the bcrypt hash.
type Operator struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:50;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
}
