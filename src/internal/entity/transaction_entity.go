package entity

import "time"

// TransactionLog records one deposit event. Its three components move in
// lockstep with Account.TotalAmount (basic pay) and the organisation pools
// (development fee, penalty).
type TransactionLog struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	MemberID       uint      `json:"member_id" gorm:"index"`
	AccountID      uint      `json:"account_id" gorm:"index"`
	BasicPay       float64   `json:"basic_pay" gorm:"type:numeric(14,2)"`
	DevelopmentFee float64   `json:"development_fee" gorm:"type:numeric(14,2)"`
	Penalty        float64   `json:"penalty" gorm:"type:numeric(14,2)"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`

	Member  *Member  `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Account *Account `json:"account,omitempty" gorm:"foreignKey:AccountID"`
}
