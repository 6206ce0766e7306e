package entity

import "time"

type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "ACTIVE"
	LoanStatusCompleted LoanStatus = "COMPLETED"
)

// Loan uses a fixed principal slice per period (principal / months) with
// simple reducing-balance interest computed fresh on every payment. A member
// holds at most one ACTIVE loan at a time.
type Loan struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	MemberID          uint       `json:"member_id" gorm:"index"`
	PrincipalAmount   float64    `json:"principal_amount" gorm:"type:numeric(14,2)"`
	InterestRate      float64    `json:"interest_rate" gorm:"type:numeric(8,6)"`
	TimePeriod        int        `json:"time_period"`
	EmiAmount         float64    `json:"emi_amount" gorm:"type:numeric(14,2)"`
	RemainingBalance  float64    `json:"remaining_balance" gorm:"type:numeric(14,2)"`
	TotalInterestPaid float64    `json:"total_interest_paid" gorm:"type:numeric(14,2)"`
	Status            LoanStatus `json:"status" gorm:"size:10;index"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`

	Member   *Member       `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Payments []LoanPayment `json:"payments,omitempty" gorm:"foreignKey:LoanID"`
}

// LoanPayment is append-only except for explicit reversal, which also
// reverts the loan and organisation balances.
type LoanPayment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	LoanID         uint      `json:"loan_id" gorm:"index"`
	PrincipalPaid  float64   `json:"principal_paid" gorm:"type:numeric(14,2)"`
	ExtraPrincipal float64   `json:"extra_principal" gorm:"type:numeric(14,2)"`
	InterestPaid   float64   `json:"interest_paid" gorm:"type:numeric(14,2)"`
	Penalty        float64   `json:"penalty" gorm:"type:numeric(14,2)"`
	TotalPaid      float64   `json:"total_paid" gorm:"type:numeric(14,2)"`
	RemainingAfter float64   `json:"remaining_after" gorm:"type:numeric(14,2)"`
	CreatedAt      time.Time `json:"created_at"`

	Loan *Loan `json:"loan,omitempty" gorm:"foreignKey:LoanID"`
}
