package model

import "time"

type CreateTransactionRequest struct {
	MemberID       uint    `json:"member_id" validate:"required"`
	AccountID      uint    `json:"account_id" validate:"required"`
	BasicPay       float64 `json:"basic_pay" validate:"min=0"`
	DevelopmentFee float64 `json:"development_fee" validate:"min=0"`
	Penalty        float64 `json:"penalty" validate:"min=0"`
}

type DeleteTransactionRequest struct {
	ID uint `json:"-" validate:"required"`
}

// SearchTransactionRequest filters are combined with AND; name matching is
// case-insensitive substring, dates are inclusive with the end date
// normalized to 23:59:59.999.
type SearchTransactionRequest struct {
	Name          string `query:"name"`
	AccountNumber string `query:"account_number"`
	Mobile        string `query:"mobile"`
	StartDate     string `query:"start_date"`
	EndDate       string `query:"end_date"`
	Page          int    `query:"page" validate:"min=0"`
	Limit         int    `query:"limit" validate:"min=0,max=100"`
}

type MemberTransactionsRequest struct {
	MemberID  uint   `json:"-" validate:"required"`
	Limit     int    `query:"limit" validate:"min=0"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

type TransactionResponse struct {
	ID             uint          `json:"id"`
	MemberID       uint          `json:"member_id"`
	AccountID      uint          `json:"account_id"`
	BasicPay       float64       `json:"basic_pay"`
	DevelopmentFee float64       `json:"development_fee"`
	Penalty        float64       `json:"penalty"`
	CreatedAt      time.Time     `json:"created_at"`
	Member         *MemberBrief  `json:"member,omitempty"`
	Account        *AccountBrief `json:"account,omitempty"`
}

type SmartDistributeRequest struct {
	MemberID        uint    `json:"member_id" validate:"required"`
	TotalAmount     float64 `json:"total_amount" validate:"min=0"`
	PenaltyProvided float64 `json:"penalty_provided" validate:"min=0"`
}

// DistributionBreakdown is the exact waterfall allocation of one lump
// payment; its fields always sum to Total.
type DistributionBreakdown struct {
	Penalty        float64 `json:"penalty"`
	DevelopmentFee float64 `json:"development_fee"`
	BaseDeposit    float64 `json:"base_deposit"`
	LoanInterest   float64 `json:"loan_interest"`
	LoanPrincipal  float64 `json:"loan_principal"`
	ExtraDeposit   float64 `json:"extra_deposit"`
	Total          float64 `json:"total"`
}

type SmartDistributeResponse struct {
	Transaction *TransactionResponse  `json:"transaction"`
	LoanPayment *LoanPaymentResponse  `json:"loan_payment,omitempty"`
	Breakdown   DistributionBreakdown `json:"breakdown"`
}
