package cstr_test

import (
	"fmt"
	"testing"

	"github.com/panoplyio/sorts/cstr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func ExampleDup() {
	src := cstr.FromString("hello")
	dup, _ := cstr.Dup(src)

	dup[0] = 'j'
	fmt.Println(cstr.String(dup)) // copy modified
	fmt.Println(cstr.String(src)) // original left intact

	// Output:
	// jello
	// hello
}

func TestLen(t *testing.T) {
	cases := []struct {
		name     string
		s        []byte
		expected int
	}{
		{"nil", nil, 0},
		{"only terminator", []byte{0}, 0},
		{"terminated", []byte("hello\x00"), 5},
		{"stops at first terminator", []byte("he\x00llo\x00"), 2},
		{"no terminator", []byte("abc"), 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, cstr.Len(c.s))
		})
	}
}

func TestDup_nil(t *testing.T) {
	dup, err := cstr.Dup(nil)
	require.Nil(t, dup)
	require.Equal(t, cstr.ErrNoInput, err)
}

func TestDup(t *testing.T) {
	src := []byte("hello\x00")
	dup, err := cstr.Dup(src)
	require.NoError(t, err)
	require.Equal(t, []byte("hello\x00"), dup)
	require.Len(t, dup, len(src))

	// distinct allocations: mutating one never affects the other
	dup[0] = 'H'
	require.Equal(t, []byte("hello\x00"), src)
	src[1] = 'E'
	require.Equal(t, []byte("Hello\x00"), dup)
}

func TestDup_empty(t *testing.T) {
	dup, err := cstr.Dup([]byte{0})
	require.NoError(t, err)
	require.Equal(t, []byte{0}, dup)
}

// only the bytes up to and including the first terminator are copied
func TestDup_trailingBytes(t *testing.T) {
	dup, err := cstr.Dup([]byte("ab\x00cd"))
	require.NoError(t, err)
	require.Equal(t, []byte("ab\x00"), dup)
}

func TestDup_noTerminator(t *testing.T) {
	dup, err := cstr.Dup([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, []byte("abc\x00"), dup)
}

func TestDupWith_exactSize(t *testing.T) {
	var requested []int
	alloc := func(n int) []byte {
		requested = append(requested, n)
		return cstr.Make(n)
	}

	_, err := cstr.DupWith(alloc, cstr.FromString("salam"))
	require.NoError(t, err)
	require.Equal(t, []int{6}, requested)
}

func TestDupWith_allocFailure(t *testing.T) {
	cases := []struct {
		name  string
		alloc cstr.Allocator
	}{
		{"nil buffer", func(int) []byte { return nil }},
		{"short buffer", func(n int) []byte { return make([]byte, n-1) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dup, err := cstr.DupWith(c.alloc, cstr.FromString("hello"))
			require.Nil(t, dup)
			require.Equal(t, cstr.ErrAlloc, errors.Cause(err))
			require.Contains(t, err.Error(), "6 bytes")
		})
	}
}

func TestMake(t *testing.T) {
	require.Equal(t, []byte{0, 0, 0}, cstr.Make(3))
	require.Nil(t, cstr.Make(-1))
}

func TestStrdup(t *testing.T) {
	require.Nil(t, cstr.Strdup(nil))

	src := cstr.FromString("hello")
	dup := cstr.Strdup(src)
	require.Equal(t, src, dup)
	require.Equal(t, "hello", cstr.String(dup))

	dup[4] = '!'
	require.Equal(t, "hello", cstr.String(src))
}

func TestFromString(t *testing.T) {
	require.Equal(t, []byte("salam\x00"), cstr.FromString("salam"))
	require.Equal(t, []byte{0}, cstr.FromString(""))
}
