package internal

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultsAreValid(t *testing.T) {
	req := require.New(t)

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.NoError(config.Validate())
	req.Equal(400, config.MaxMessageBytes)
	req.Equal("rfc1459", config.Casemapping)
}

func TestConfig_RejectsBadValues(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero budget", func(c *Config) { c.MaxMessageBytes = 0 }},
		{"unknown casemapping", func(c *Config) { c.Casemapping = "unicode" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"zero queue", func(c *Config) { c.QueueSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var config Config
			_, err := env.UnmarshalFromEnviron(&config)
			req.NoError(err)

			tt.mutate(&config)
			req.Error(config.Validate())
		})
	}
}
