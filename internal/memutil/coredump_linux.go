//go:build linux

package memutil

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DisableCoreDumps prevents the process from producing core dumps.
// PR_SET_DUMPABLE also blocks /proc/pid/mem access from other
// unprivileged processes; RLIMIT_CORE covers kernels or configurations
// that ignore the dumpable flag.
func DisableCoreDumps() error {
	if err := unix.Prctl(unix.PR_SET_DUMPABLE, 0, 0, 0, 0); err != nil {
		return fmt.Errorf("memutil: set PR_SET_DUMPABLE: %w", err)
	}
	rlimit := unix.Rlimit{Cur: 0, Max: 0}
	if err := unix.Setrlimit(unix.RLIMIT_CORE, &rlimit); err != nil {
		return fmt.Errorf("memutil: set RLIMIT_CORE: %w", err)
	}
	return nil
}
