package secmem

import "github.com/systmms/secmem/internal/memutil"

// DisableCoreDumps prevents the whole process from producing core
// dumps, complementing the per-region dump-exclusion advisory the
// containers request for their own pages. On Linux this sets
// PR_SET_DUMPABLE (which also blocks /proc/pid/mem access from other
// unprivileged processes) and zeroes RLIMIT_CORE; on other Unix
// platforms it zeroes RLIMIT_CORE; elsewhere it is a no-op.
//
// Call it once, early in main, before any secret enters the process.
func DisableCoreDumps() error {
	return memutil.DisableCoreDumps()
}
