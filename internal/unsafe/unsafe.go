// SPDX-License-Identifier: Unlicense OR MIT

// Package unsafe converts typed pixel slices to and from the byte
// slices the driver reads and writes.
package unsafe

import (
	"unsafe"
)

// BytesView returns a byte slice view of a slice. The view aliases s.
func BytesView[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	sz := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*sz)
}

// SliceOf returns a typed view of b. Trailing bytes that don't fill a
// whole element are dropped.
func SliceOf[T any](b []byte) []T {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if len(b) < sz || sz == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/sz)
}
