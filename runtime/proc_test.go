package runtime

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcAlive(t *testing.T) {
	req := require.New(t)

	// Our own PID is necessarily alive.
	req.True(ProcAlive(os.Getpid()))

	// Far beyond any kernel's pid_max.
	req.False(ProcAlive(1 << 30))
}
