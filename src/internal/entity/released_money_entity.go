package entity

import "time"

type ReleasedMoneyType string

const (
	ReleasedMoneyTypeRelease    ReleasedMoneyType = "RELEASE"
	ReleasedMoneyTypeSettlement ReleasedMoneyType = "SETTLEMENT"
)

// ReleasedMoneyLog tracks short-term cash advances against organisational
// liquidity. Profit is only set on SETTLEMENT entries.
type ReleasedMoneyLog struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	AccountID uint              `json:"account_id" gorm:"index"`
	Amount    float64           `json:"amount" gorm:"type:numeric(14,2)"`
	Profit    float64           `json:"profit" gorm:"type:numeric(14,2)"`
	Type      ReleasedMoneyType `json:"type" gorm:"size:10"`
	CreatedAt time.Time         `json:"created_at"`
}
