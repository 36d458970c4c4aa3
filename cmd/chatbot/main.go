package main

import (
	"context"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tamasbrandstadter/pixell-chatbot/cmd/chatbot/account"
	"github.com/tamasbrandstadter/pixell-chatbot/cmd/chatbot/audit"
	"github.com/tamasbrandstadter/pixell-chatbot/cmd/chatbot/notification"
	"github.com/tamasbrandstadter/pixell-chatbot/cmd/chatbot/session"
	"github.com/tamasbrandstadter/pixell-chatbot/internal/console"
	"github.com/tamasbrandstadter/pixell-chatbot/internal/db"
	"github.com/tamasbrandstadter/pixell-chatbot/internal/env"
	"github.com/tamasbrandstadter/pixell-chatbot/internal/mq"
)

func main() {
	log.SetFormatter(&log.TextFormatter{TimestampFormat: time.RFC3339, FullTimestamp: true})
	log.SetOutput(os.Stderr)

	envCfg, err := env.GetEnvCfg()
	if err != nil {
		log.Fatalf("error parsing env vars: %v", err)
	}

	level, err := log.ParseLevel(envCfg.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, keeping %s", envCfg.LogLevel, log.GetLevel())
	} else {
		log.SetLevel(level)
	}

	recorders := audit.Multi{audit.LogRecorder{}}

	if envCfg.AuditDB {
		dbc, err := db.NewConnection(db.Config{
			User:     envCfg.DBUser,
			Pass:     envCfg.DBPass,
			Name:     envCfg.DBName,
			Host:     envCfg.DBHost,
			Port:     envCfg.DBPort,
			Attempts: envCfg.ConnectAttempts,
			Delay:    envCfg.ConnectDelay,
		})
		if err != nil {
			log.Errorf("error connecting to db, audit records stay in the log: %v", err)
		} else {
			defer func() {
				if err := dbc.Close(); err != nil {
					log.Errorf("error closing db: %v", err)
				}
			}()
			recorders = append(recorders, audit.DBRecorder{DB: dbc})
		}
	}

	if envCfg.NotificationsEnabled() {
		conn, err := mq.NewConnection(mq.Config{
			User:         envCfg.MQUser,
			Pass:         envCfg.MQPass,
			Host:         envCfg.MQHost,
			Port:         envCfg.MQPort,
			MaxReconnect: envCfg.ConnectAttempts,
			Delay:        envCfg.ConnectDelay,
		})
		if err != nil {
			log.Errorf("error connecting to mq, deposit notifications are off: %v", err)
		} else {
			defer func() {
				if err := conn.Close(); err != nil {
					log.Errorf("error closing mq connection: %v", err)
				}
			}()

			if p, err := notification.NewPublisher(conn.Channel); err != nil {
				log.Errorf("error declaring notification exchange: %v", err)
			} else {
				recorders = append(recorders, p)
			}
		}
	}

	ledger := account.NewLedger(account.NewMemoryStore(account.Seed()...))
	s := session.New(console.New(os.Stdin, os.Stdout), ledger, recorders)

	if err := s.Run(context.Background()); err != nil {
		log.Errorf("session ended: %v", err)
	}
}
