package plugin

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_CarriesPluginName(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	Logger(base, "weather").Info("forecast loaded")

	req.Contains(buf.String(), "plugin=weather")
	req.Contains(buf.String(), "forecast loaded")
}

func TestLogger_NilBaseFallsBack(t *testing.T) {
	require.NotNil(t, Logger(nil, "weather"))
}

func TestNotice_String(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name   string
		notice Notice
		want   string
	}{
		{
			name:   "reason only",
			notice: Notice{Reason: "use bot.Say instead"},
			want:   "Deprecated: use bot.Say instead",
		},
		{
			name:   "since and removal",
			notice: Notice{Reason: "obsolete", Since: "7.0", RemovedIn: "8.0"},
			want:   "Deprecated since 7.0, will be removed in 8.0: obsolete",
		},
		{
			name:   "since only",
			notice: Notice{Reason: "obsolete", Since: "7.0"},
			want:   "Deprecated since 7.0: obsolete",
		},
		{
			name:   "removal only",
			notice: Notice{Reason: "obsolete", RemovedIn: "8.0"},
			want:   "Deprecated, will be removed in 8.0: obsolete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, tt.notice.String())
		})
	}
}

func TestWarnDeprecated_LogsCallSite(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	deprecatedAPI(log)

	out := buf.String()
	req.Contains(out, "Deprecated since 1.2: old entry point")
	req.Contains(out, "plugin_test.go")
}

// deprecatedAPI stands in for an old framework function warning its caller.
func deprecatedAPI(log *slog.Logger) {
	WarnDeprecated(log, Notice{Reason: "old entry point", Since: "1.2"}, 0)
}

func TestChainLoaders_MergesInOrder(t *testing.T) {
	req := require.New(t)

	first := func(prefix string) []string { return []string{prefix + "-a", prefix + "-b"} }
	second := func(prefix string) []string { return []string{prefix + "-c"} }

	chained := ChainLoaders(first, second)

	req.Equal([]string{"x-a", "x-b", "x-c"}, chained("x"))
}

func TestChainLoaders_Empty(t *testing.T) {
	chained := ChainLoaders[string, int]()
	require.Empty(t, chained("anything"))
}
