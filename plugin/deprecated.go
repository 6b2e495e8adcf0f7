package plugin

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Notice describes a deprecated API surface. Since and RemovedIn are version
// strings shown to the plugin author; only Reason is required.
type Notice struct {
	Reason    string
	Since     string
	RemovedIn string
}

func (n Notice) String() string {
	switch {
	case n.Since != "" && n.RemovedIn != "":
		return fmt.Sprintf("Deprecated since %s, will be removed in %s: %s", n.Since, n.RemovedIn, n.Reason)
	case n.Since != "":
		return fmt.Sprintf("Deprecated since %s: %s", n.Since, n.Reason)
	case n.RemovedIn != "":
		return fmt.Sprintf("Deprecated, will be removed in %s: %s", n.RemovedIn, n.Reason)
	default:
		return "Deprecated: " + n.Reason
	}
}

// WarnDeprecated logs the notice with the call site of the deprecated
// function's caller, so plugin authors see their own file and line rather
// than the framework's. skip counts extra stack frames above the caller of
// WarnDeprecated; 0 is right when called directly from the deprecated
// function.
func WarnDeprecated(log *slog.Logger, n Notice, skip int) {
	attrs := []any{}
	if _, file, line, ok := runtime.Caller(skip + 2); ok {
		attrs = append(attrs, "file", file, "line", line)
	}
	log.Warn(n.String(), attrs...)
}
