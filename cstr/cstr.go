// Package cstr duplicates NUL-terminated byte strings without relying on the
// builtin length and copy primitives. The length is found by scanning for the
// terminator, and bytes are copied one at a time.
package cstr

import (
	"github.com/pkg/errors"
)

var (
	// ErrNoInput is returned when duplicating a nil string
	ErrNoInput = errors.New("cstr: no input")
	// ErrAlloc is returned when the allocator could not provide a buffer
	ErrAlloc = errors.New("cstr: allocation failed")
)

// Allocator returns a new zeroed buffer of exactly n bytes, or nil if it
// cannot. The caller owns the returned buffer
type Allocator func(n int) []byte

// Make is the default Allocator, backed by the runtime. A request the runtime
// refuses up front (a length out of range) yields nil instead of a panic
func Make(n int) (b []byte) {
	defer func() {
		if r := recover(); r != nil {
			b = nil
		}
	}()
	return make([]byte, n)
}

// Len returns the number of bytes before the first NUL terminator. A string
// without a terminator ends with the slice
func Len(s []byte) int {
	n := 0
	for n < len(s) && s[n] != 0 {
		n++
	}
	return n
}

// Dup returns a new, independently owned copy of s, including its
// terminator. See DupWith
func Dup(s []byte) ([]byte, error) {
	return DupWith(Make, s)
}

// DupWith copies s into a buffer of exactly Len(s)+1 bytes obtained from
// alloc. The copy always ends with a NUL, even when s had no terminator, and
// never shares memory with s
func DupWith(alloc Allocator, s []byte) ([]byte, error) {
	if s == nil {
		return nil, ErrNoInput
	}

	n := Len(s)
	dup := alloc(n + 1)
	if dup == nil || len(dup) != n+1 {
		return nil, errors.Wrapf(ErrAlloc, "%d bytes", n+1)
	}

	for i := 0; i < n; i++ {
		dup[i] = s[i]
	}
	dup[n] = 0
	return dup, nil
}

// Strdup is Dup with a single failure value: it returns nil both when s is nil
// and when the allocation fails. Use Dup to tell the two apart
func Strdup(s []byte) []byte {
	dup, err := Dup(s)
	if err != nil {
		return nil
	}
	return dup
}

// FromString returns s as a new NUL-terminated byte string
func FromString(s string) []byte {
	b := make([]byte, 0, len(s)+1)
	b = append(b, s...)
	return append(b, 0)
}

// String returns the text of s up to its terminator
func String(s []byte) string {
	return string(s[:Len(s)])
}
