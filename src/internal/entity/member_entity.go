package entity

import "time"

type Member struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100"`
	FathersName string    `json:"fathers_name" gorm:"size:100"`
	Mobile      string    `json:"mobile" gorm:"size:15;index"`
	Address     string    `json:"address" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Account *Account `json:"account,omitempty" gorm:"foreignKey:MemberID"`
	Loans   []Loan   `json:"loans,omitempty" gorm:"foreignKey:MemberID"`
}

// Account is the member's savings ledger, 1:1 with Member.
// TotalAmount only grows on deposits and shrinks via explicit reversal or
// profit-distribution adjustments; ReleasedMoney is the outstanding advance.
type Account struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	MemberID      uint      `json:"member_id" gorm:"uniqueIndex"`
	AccountNumber string    `json:"account_number" gorm:"size:32;uniqueIndex"`
	TotalAmount   float64   `json:"total_amount" gorm:"type:numeric(14,2)"`
	ReleasedMoney float64   `json:"released_money" gorm:"type:numeric(14,2)"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
