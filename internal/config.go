package internal

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	MaxMessageBytes int           `env:"MAX_MESSAGE_BYTES,default=400" validate:"gt=0"`
	QueueSize       int           `env:"QUEUE_SIZE,default=64" validate:"gt=0"`
	Casemapping     string        `env:"CASEMAPPING,default=rfc1459" validate:"oneof=rfc1459 strict-rfc1459 ascii"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
}

func (c Config) Validate() error {
	return validate.Struct(c)
}
