package secmem

import "unsafe"

// view returns the raw byte representation of a typed slice. Zero-sized
// element types and empty slices view as nil.
func view[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(s[0]))
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*size)
}

// viewOne returns the raw byte representation of a single value.
func viewOne[T any](p *T) []byte {
	size := int(unsafe.Sizeof(*p))
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), size)
}
