package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"github.com/tamasbrandstadter/pixell-chatbot/cmd/chatbot/audit"
)

const (
	exchangeName = "balance-notifications"
	routeKey     = "notif"
)

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Notification struct {
	TransactionID uuid.UUID       `json:"transactionId"`
	AccountID     int64           `json:"accountId"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Publisher sends a notification for every deposit. Balance inquiries are skipped.
type Publisher struct {
	ch Channel
}

func NewPublisher(ch Channel) (*Publisher, error) {
	if err := ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		return nil, errors.Wrap(err, "declare notification exchange")
	}

	return &Publisher{ch: ch}, nil
}

func (p *Publisher) Record(_ context.Context, r audit.TxRecord) error {
	if r.Type != audit.Deposit {
		return nil
	}

	n := Notification{
		TransactionID: r.ID,
		AccountID:     r.AccountID,
		Type:          r.Type.String(),
		Amount:        r.Amount,
		CreatedAt:     r.CreatedAt,
	}

	body, err := json.Marshal(n)
	if err != nil {
		return errors.Wrap(err, "marshal notification")
	}

	err = p.ch.Publish(exchangeName, routeKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    uuid.New().String(),
		Timestamp:    r.CreatedAt,
		Body:         body,
		DeliveryMode: amqp.Transient,
	})
	if err != nil {
		log.Errorf("error sending notification to %s topic: %v", exchangeName, err)
		return errors.Wrap(err, "publish notification")
	}

	return nil
}

var _ audit.Recorder = (*Publisher)(nil)
