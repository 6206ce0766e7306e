package model

import "time"

type CreateWithdrawalRequest struct {
	Purpose string  `json:"purpose" validate:"required,max=255"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Source  string  `json:"source" validate:"required,oneof=AMOUNT PENALTY"`
}

type SearchWithdrawalRequest struct {
	Page  int `query:"page" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0,max=100"`
}

type WithdrawalResponse struct {
	ID        uint      `json:"id"`
	Purpose   string    `json:"purpose"`
	Amount    float64   `json:"amount"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateWithdrawalResponse struct {
	Withdrawal   *WithdrawalResponse   `json:"withdrawal"`
	Organisation *OrganisationResponse `json:"organisation"`
}
