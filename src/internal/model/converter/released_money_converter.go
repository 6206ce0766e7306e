package converter

import (
	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"
)

func ReleasedMoneyLogToResponse(log *entity.ReleasedMoneyLog) *model.ReleasedMoneyLogResponse {
	return &model.ReleasedMoneyLogResponse{
		ID:        log.ID,
		AccountID: log.AccountID,
		Amount:    log.Amount,
		Profit:    log.Profit,
		Type:      string(log.Type),
		CreatedAt: log.CreatedAt,
	}
}

func ReleasedMoneyLogsToResponses(logs []entity.ReleasedMoneyLog) []model.ReleasedMoneyLogResponse {
	responses := make([]model.ReleasedMoneyLogResponse, len(logs))
	for i := range logs {
		responses[i] = *ReleasedMoneyLogToResponse(&logs[i])
	}
	return responses
}
