package env

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Cfg is read from APP_* variables. None of them is required, the defaults
// run the chatbot in memory with audit records going to the log only.
type Cfg struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	AuditDB bool   `envconfig:"AUDIT_DB" default:"false"`
	DBUser  string `envconfig:"DB_USER"`
	DBPass  string `envconfig:"DB_PASSWORD"`
	DBName  string `envconfig:"DB_NAME"`
	DBHost  string `envconfig:"DB_HOST" default:"localhost"`
	DBPort  int    `envconfig:"DB_PORT" default:"5432"`

	MQUser string `envconfig:"MQ_USER" default:"guest"`
	MQPass string `envconfig:"MQ_PASSWORD" default:"guest"`
	MQHost string `envconfig:"MQ_HOST"`
	MQPort int    `envconfig:"MQ_PORT" default:"5672"`

	ConnectAttempts uint          `envconfig:"CONNECT_ATTEMPTS" default:"3"`
	ConnectDelay    time.Duration `envconfig:"CONNECT_DELAY" default:"1s"`
}

func GetEnvCfg() (Cfg, error) {
	var cfg Cfg

	if err := envconfig.Process("APP", &cfg); err != nil {
		return Cfg{}, errors.Wrap(err, "parse environment variables")
	}
	if cfg.ConnectAttempts == 0 {
		cfg.ConnectAttempts = 1
	}

	return cfg, nil
}

func (c Cfg) NotificationsEnabled() bool {
	return c.MQHost != ""
}
