package model

import "time"

type AuditResponse struct {
	ID             uint      `json:"id"`
	TotalProfit    float64   `json:"total_profit"`
	MemberCount    int       `json:"member_count"`
	PerMemberShare float64   `json:"per_member_share"`
	CreatedAt      time.Time `json:"created_at"`
}
