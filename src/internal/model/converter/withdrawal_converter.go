package converter

import (
	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"
)

func WithdrawalToResponse(withdrawal *entity.OrgWithdrawal) *model.WithdrawalResponse {
	return &model.WithdrawalResponse{
		ID:        withdrawal.ID,
		Purpose:   withdrawal.Purpose,
		Amount:    withdrawal.Amount,
		Source:    string(withdrawal.Source),
		CreatedAt: withdrawal.CreatedAt,
	}
}

func WithdrawalsToResponses(withdrawals []entity.OrgWithdrawal) []model.WithdrawalResponse {
	responses := make([]model.WithdrawalResponse, len(withdrawals))
	for i := range withdrawals {
		responses[i] = *WithdrawalToResponse(&withdrawals[i])
	}
	return responses
}

func OrganisationToResponse(org *entity.Organisation) *model.OrganisationResponse {
	return &model.OrganisationResponse{
		Name:    org.Name,
		Amount:  org.Amount,
		Penalty: org.Penalty,
		Profit:  org.Profit,
	}
}
