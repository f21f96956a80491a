package secmem

// NoPadding is the capability gate for byte-wise comparison and hashing.
//
// Comparing or hashing a value through its raw byte representation is
// only meaningful when every byte of that representation is determined
// by the value: padding bytes are not guaranteed to be initialized, so
// types that may contain them are excluded. The type set enumerates the
// fixed-width integer scalars (byte and rune enter through their
// underlying types uint8 and int32), the floating-point scalars, the
// empty struct, and fixed-size arrays of those scalars at common key
// lengths.
//
// The set is closed. A constraint's type set cannot be extended outside
// this package, so downstream code cannot smuggle a padded type past the
// gate; new entries can be added here later without breaking existing
// callers.
type NoPadding interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~struct{} |
		~[4]byte | ~[8]byte | ~[12]byte | ~[16]byte |
		~[24]byte | ~[32]byte | ~[48]byte | ~[64]byte |
		~[4]uint32 | ~[8]uint32 | ~[16]uint32 |
		~[4]uint64 | ~[8]uint64
}
