package model

import "time"

type Event interface {
	GetId() string
}

const (
	LedgerEventDepositRecorded     = "DEPOSIT_RECORDED"
	LedgerEventDepositReversed     = "DEPOSIT_REVERSED"
	LedgerEventLoanCreated         = "LOAN_CREATED"
	LedgerEventLoanPaymentRecorded = "LOAN_PAYMENT_RECORDED"
	LedgerEventLoanPaymentReversed = "LOAN_PAYMENT_REVERSED"
	LedgerEventCashReleased        = "CASH_RELEASED"
	LedgerEventCashSettled         = "CASH_SETTLED"
	LedgerEventAuditCompleted      = "AUDIT_COMPLETED"
)

// LedgerEvent is published after a money-movement commits; consumers get a
// best-effort notification, the ledger itself never depends on delivery.
type LedgerEvent struct {
	EventID  string    `json:"event_id"`
	Kind     string    `json:"kind"`
	MemberID uint      `json:"member_id,omitempty"`
	RecordID uint      `json:"record_id,omitempty"`
	Amount   float64   `json:"amount"`
	At       time.Time `json:"at"`
}

func (e *LedgerEvent) GetId() string {
	return e.EventID
}
