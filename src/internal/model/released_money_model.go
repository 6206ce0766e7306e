package model

import "time"

type ReleaseCashRequest struct {
	MemberID uint    `json:"member_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}

type SettleCashRequest struct {
	MemberID   uint    `json:"member_id" validate:"required"`
	AmountPaid float64 `json:"amount_paid" validate:"min=0"`
	Profit     float64 `json:"profit" validate:"min=0"`
}

type MemberReleasedLogsRequest struct {
	MemberID uint `json:"-" validate:"required"`
}

type ReleasedMoneyLogResponse struct {
	ID        uint      `json:"id"`
	AccountID uint      `json:"account_id"`
	Amount    float64   `json:"amount"`
	Profit    float64   `json:"profit,omitempty"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type ReleasedMoneyResponse struct {
	Log     *ReleasedMoneyLogResponse `json:"log"`
	Account *AccountResponse          `json:"account"`
}
