package memutil

import "crypto/subtle"

// Equal reports whether a and b hold identical bytes without leaking,
// through timing, where two equal-length inputs first differ.
//
// A length mismatch returns false immediately. This is a deliberate,
// documented exception: only the length comparison is length-dependent.
// Equal-length inputs always cost exactly len(a) byte operations with
// no early exit on the first differing byte.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
