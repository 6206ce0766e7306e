package converter

import (
	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"
)

func AuditToResponse(audit *entity.AuditLog) *model.AuditResponse {
	return &model.AuditResponse{
		ID:             audit.ID,
		TotalProfit:    audit.TotalProfit,
		MemberCount:    audit.MemberCount,
		PerMemberShare: audit.PerMemberShare,
		CreatedAt:      audit.CreatedAt,
	}
}

func AuditsToResponses(audits []entity.AuditLog) []model.AuditResponse {
	responses := make([]model.AuditResponse, len(audits))
	for i := range audits {
		responses[i] = *AuditToResponse(&audits[i])
	}
	return responses
}
