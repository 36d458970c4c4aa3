package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type TxType int

const (
	Balance TxType = iota
	Deposit
)

var txTypeNames = [...]string{"balance", "deposit"}

func (tt TxType) String() string {
	if tt < 0 || int(tt) >= len(txTypeNames) {
		return fmt.Sprintf("TxType(%d)", int(tt))
	}
	return txTypeNames[tt]
}

type TxRecord struct {
	ID        uuid.UUID
	AccountID int64
	Type      TxType
	Amount    decimal.Decimal
	CreatedAt time.Time
}

func NewTxRecord(accountID int64, tt TxType, amount decimal.Decimal) TxRecord {
	return TxRecord{
		ID:        uuid.New(),
		AccountID: accountID,
		Type:      tt,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

// Recorder keeps a trail of executed operations.
type Recorder interface {
	Record(ctx context.Context, r TxRecord) error
}

type LogRecorder struct{}

func (LogRecorder) Record(_ context.Context, r TxRecord) error {
	log.WithFields(log.Fields{
		"id":      r.ID,
		"account": r.AccountID,
		"type":    r.Type.String(),
		"amount":  r.Amount.StringFixed(2),
	}).Info("audit record")

	return nil
}

// Multi hands every record to all of its recorders and reports the first failure.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, r TxRecord) error {
	var first error
	for _, rec := range m {
		if err := rec.Record(ctx, r); err != nil && first == nil {
			first = err
		}
	}

	return first
}
