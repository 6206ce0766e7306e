package model

import "time"

type CreateLoanRequest struct {
	MemberID        uint    `json:"member_id" validate:"required"`
	PrincipalAmount float64 `json:"principal_amount" validate:"required,gt=0"`
	InterestRate    float64 `json:"interest_rate" validate:"required,gt=0"` // percentage, stored /100
	TimePeriod      int     `json:"time_period" validate:"required,gt=0"`  // months
}

type GetLoanRequest struct {
	ID uint `json:"-" validate:"required"`
}

type MemberLoansRequest struct {
	MemberID uint `json:"-" validate:"required"`
	Limit    int  `query:"limit" validate:"min=0"`
}

type SearchLoanRequest struct {
	Status   string `query:"status"`
	MemberID uint   `query:"member_id"`
	Page     int    `query:"page" validate:"min=0"`
	Limit    int    `query:"limit" validate:"min=0,max=100"`
}

type PayLoanRequest struct {
	LoanID        uint    `json:"-" validate:"required"`
	Penalty       float64 `json:"penalty" validate:"min=0"`
	PrincipalPaid float64 `json:"principal_paid" validate:"min=0"`
}

type DeleteLoanPaymentRequest struct {
	ID uint `json:"-" validate:"required"`
}

type MemberLoanPaymentsRequest struct {
	MemberID  uint   `json:"-" validate:"required"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

type LoanResponse struct {
	ID                uint                  `json:"id"`
	MemberID          uint                  `json:"member_id"`
	PrincipalAmount   float64               `json:"principal_amount"`
	InterestRate      float64               `json:"interest_rate"`
	TimePeriod        int                   `json:"time_period"`
	EmiAmount         float64               `json:"emi_amount"`
	RemainingBalance  float64               `json:"remaining_balance"`
	TotalInterestPaid float64               `json:"total_interest_paid"`
	Status            string                `json:"status"`
	CreatedAt         time.Time             `json:"created_at"`
	CompletedAt       *time.Time            `json:"completed_at,omitempty"`
	Member            *MemberBrief          `json:"member,omitempty"`
	Payments          []LoanPaymentResponse `json:"payments,omitempty"`
}

type LoanPaymentResponse struct {
	ID             uint      `json:"id"`
	LoanID         uint      `json:"loan_id"`
	PrincipalPaid  float64   `json:"principal_paid"`
	ExtraPrincipal float64   `json:"extra_principal"`
	InterestPaid   float64   `json:"interest_paid"`
	Penalty        float64   `json:"penalty"`
	TotalPaid      float64   `json:"total_paid"`
	RemainingAfter float64   `json:"remaining_after"`
	CreatedAt      time.Time `json:"created_at"`
}

type PayLoanResponse struct {
	Payment *LoanPaymentResponse `json:"payment"`
	Loan    *LoanResponse        `json:"loan"`
}

type LoanableAmountResponse struct {
	TotalMemberFunds float64 `json:"total_member_funds"`
	TotalLoaned      float64 `json:"total_loaned"`
	AvailableFunds   float64 `json:"available_funds"`
}
