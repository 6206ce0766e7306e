package messaging

import (
	"time"

	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/pkg/kafka"
	"bank-portal-service/src/pkg/log"

	"github.com/google/uuid"
)

// LedgerProducer fans out money-movement notifications after commit.
// Publishing is best effort; a failed publish is logged and never fails
// the operation that produced it.
type LedgerProducer struct {
	EventProducer Producer[*model.LedgerEvent]
}

func NewLedgerProducer(producer kafka.Producer, logger log.Log) *LedgerProducer {
	return &LedgerProducer{
		EventProducer: Producer[*model.LedgerEvent]{
			Producer: producer,
			Topic:    "ledger-events",
			Log:      logger,
		},
	}
}

func (p *LedgerProducer) Publish(kind string, memberID, recordID uint, amount float64) {
	_ = p.EventProducer.Send(&model.LedgerEvent{
		EventID:  uuid.NewString(),
		Kind:     kind,
		MemberID: memberID,
		RecordID: recordID,
		Amount:   amount,
		At:       time.Now(),
	})
}
