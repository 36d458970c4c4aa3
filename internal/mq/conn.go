package mq

import (
	"fmt"
	"io"
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

type Config struct {
	User         string
	Pass         string
	Host         string
	Port         int
	MaxReconnect uint
	Delay        time.Duration
}

type Conn struct {
	Channel *amqp.Channel

	ch   io.Closer
	conn io.Closer
}

func NewConnection(cfg Config) (Conn, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d", cfg.User, cfg.Pass, cfg.Host, cfg.Port)

	var conn *amqp.Connection
	err := retry.Do(
		func() error {
			var err error
			conn, err = amqp.Dial(url)
			return err
		},
		retry.Attempts(cfg.MaxReconnect),
		retry.Delay(cfg.Delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("attempt %d to connect to mq failed: %v", n+1, err)
		}),
	)
	if err != nil {
		return Conn{}, errors.Wrap(err, "dial mq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return Conn{}, errors.Wrap(err, "open mq channel")
	}

	log.Info("verified mq connection")
	return Conn{Channel: ch, ch: ch, conn: conn}, nil
}

// Close closes the channel and the connection, the latter even if the
// former fails. The first error is returned.
func (c Conn) Close() error {
	chErr := c.ch.Close()
	connErr := c.conn.Close()

	if chErr != nil {
		return errors.Wrap(chErr, "close mq channel")
	}
	if connErr != nil {
		return errors.Wrap(connErr, "close mq connection")
	}
	return nil
}
