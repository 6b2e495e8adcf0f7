package runtime

import (
	"github.com/shirou/gopsutil/process"
)

// ProcAlive reports whether a process with the given PID currently exists.
// Lookup failures count as not alive; the caller only ever wants a boolean
// answer to "should I refuse to start because an old instance is running".
func ProcAlive(pid int) bool {
	alive, err := process.PidExists(int32(pid))
	if err != nil {
		return false
	}
	return alive
}
