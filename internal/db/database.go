package db

import (
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	User     string
	Pass     string
	Name     string
	Host     string
	Port     int
	Attempts uint
	Delay    time.Duration
}

func NewConnection(cfg Config) (*sqlx.DB, error) {
	conn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		cfg.Host, cfg.User, cfg.Pass, cfg.Name, cfg.Port)

	var db *sqlx.DB
	log.Info("connecting to database...")
	err := retry.Do(
		func() error {
			var err error
			db, err = sqlx.Connect("postgres", conn)
			return err
		},
		retry.Attempts(cfg.Attempts),
		retry.Delay(cfg.Delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("attempt %d to connect to postgres failed: %v", n+1, err)
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "connect to postgres")
	}

	log.Info("verified postgres connection")
	return db, nil
}
