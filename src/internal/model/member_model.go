package model

import "time"

type CreateMemberRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	FathersName    string  `json:"fathers_name" validate:"max=100"`
	Mobile         string  `json:"mobile" validate:"required,min=10,max=15,numeric"`
	Address        string  `json:"address" validate:"max=500"`
	AccountNumber  string  `json:"account_number" validate:"max=32"`
	InitialAmount  float64 `json:"initial_amount" validate:"min=0"`
	DevelopmentFee float64 `json:"development_fee" validate:"min=0"`
}

type UpdateMemberRequest struct {
	ID          uint   `json:"-" validate:"required"`
	Name        string `json:"name" validate:"max=100"`
	FathersName string `json:"fathers_name" validate:"max=100"`
	Mobile      string `json:"mobile" validate:"omitempty,min=10,max=15,numeric"`
	Address     string `json:"address" validate:"max=500"`
}

type GetMemberRequest struct {
	ID uint `json:"-" validate:"required"`
}

type AccountResponse struct {
	ID            uint    `json:"id"`
	AccountNumber string  `json:"account_number"`
	TotalAmount   float64 `json:"total_amount"`
	ReleasedMoney float64 `json:"released_money"`
}

type MemberResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	FathersName string           `json:"fathers_name,omitempty"`
	Mobile      string           `json:"mobile"`
	Address     string           `json:"address,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	Account     *AccountResponse `json:"account,omitempty"`
}

// MemberBrief is the member projection embedded in list rows.
type MemberBrief struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type AccountBrief struct {
	ID            uint   `json:"id"`
	AccountNumber string `json:"account_number"`
}
