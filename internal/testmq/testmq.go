package testmq

import (
	"sync"

	"github.com/streadway/amqp"
)

type Published struct {
	Exchange string
	Key      string
	Msg      amqp.Publishing
}

// Channel records what gets declared and published instead of talking to a broker.
type Channel struct {
	mu        sync.Mutex
	Exchanges []string
	Messages  []Published
	Err       error
}

func (c *Channel) ExchangeDeclare(name, _ string, _, _, _, _ bool, _ amqp.Table) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Err != nil {
		return c.Err
	}
	c.Exchanges = append(c.Exchanges, name)
	return nil
}

func (c *Channel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Err != nil {
		return c.Err
	}
	c.Messages = append(c.Messages, Published{Exchange: exchange, Key: key, Msg: msg})
	return nil
}
