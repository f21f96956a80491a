//go:build !unix

package memutil

// DisableCoreDumps is a no-op on platforms without a core dump facility
// this package knows how to disable.
func DisableCoreDumps() error {
	return nil
}
