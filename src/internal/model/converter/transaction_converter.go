package converter

import (
	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"
)

func TransactionToResponse(log *entity.TransactionLog) *model.TransactionResponse {
	resp := &model.TransactionResponse{
		ID:             log.ID,
		MemberID:       log.MemberID,
		AccountID:      log.AccountID,
		BasicPay:       log.BasicPay,
		DevelopmentFee: log.DevelopmentFee,
		Penalty:        log.Penalty,
		CreatedAt:      log.CreatedAt,
	}
	if log.Member != nil {
		resp.Member = MemberToBrief(log.Member)
	}
	if log.Account != nil {
		resp.Account = AccountToBrief(log.Account)
	}
	return resp
}

func TransactionsToResponses(logs []entity.TransactionLog) []model.TransactionResponse {
	responses := make([]model.TransactionResponse, len(logs))
	for i := range logs {
		responses[i] = *TransactionToResponse(&logs[i])
	}
	return responses
}
