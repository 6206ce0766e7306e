package entity

import "time"

// AuditLog records one profit-distribution event.
type AuditLog struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	TotalProfit    float64   `json:"total_profit" gorm:"type:numeric(14,2)"`
	MemberCount    int       `json:"member_count"`
	PerMemberShare float64   `json:"per_member_share" gorm:"type:numeric(14,2)"`
	CreatedAt      time.Time `json:"created_at"`
}
