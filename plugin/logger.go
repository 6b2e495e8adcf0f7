// Package plugin holds the helpers handed to plugin authors: namespaced
// loggers, deprecation notices and lazy-loader composition.
package plugin

import (
	"log/slog"

	"github.com/mama165/sdk-go/logs"
)

// Logger returns a logger namespaced to a plugin. External plugins can't
// share the bot's logger configuration by name alone, so the plugin name is
// carried as a structured attribute instead. A nil base falls back to an
// info-level logger.
func Logger(base *slog.Logger, pluginName string) *slog.Logger {
	if base == nil {
		base = logs.GetLoggerFromLevel(slog.LevelInfo)
	}
	return base.With("plugin", pluginName)
}
