package entity

import "time"

// OrganisationID is the singleton row id; the organisation exists from
// first write and is read-or-created on first access.
const OrganisationID uint = 1

// Organisation holds the three org-level money pools: Amount (development
// fees, spendable), Penalty (penalty fund, spendable) and Profit (loan
// interest income awaiting distribution).
type Organisation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100"`
	Amount    float64   `json:"amount" gorm:"type:numeric(14,2)"`
	Penalty   float64   `json:"penalty" gorm:"type:numeric(14,2)"`
	Profit    float64   `json:"profit" gorm:"type:numeric(14,2)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WithdrawalSource string

const (
	WithdrawalSourceAmount  WithdrawalSource = "AMOUNT"
	WithdrawalSourcePenalty WithdrawalSource = "PENALTY"
)

func (s WithdrawalSource) Valid() bool {
	return s == WithdrawalSourceAmount || s == WithdrawalSourcePenalty
}

// OrgWithdrawal is an organisational expense drawn from one spendable pool.
type OrgWithdrawal struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	Purpose   string           `json:"purpose" gorm:"size:255"`
	Amount    float64          `json:"amount" gorm:"type:numeric(14,2)"`
	Source    WithdrawalSource `json:"source" gorm:"size:10"`
	CreatedAt time.Time        `json:"created_at"`
}
