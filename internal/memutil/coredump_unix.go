//go:build unix && !linux

package memutil

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DisableCoreDumps prevents the process from producing core dumps by
// setting RLIMIT_CORE to zero.
func DisableCoreDumps() error {
	rlimit := unix.Rlimit{Cur: 0, Max: 0}
	if err := unix.Setrlimit(unix.RLIMIT_CORE, &rlimit); err != nil {
		return fmt.Errorf("memutil: set RLIMIT_CORE: %w", err)
	}
	return nil
}
