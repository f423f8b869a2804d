// Package sortstest contains only tests utilities (without actual tests).
package sortstest

import (
	"io"
	"sort"
	"testing"

	"github.com/panoplyio/sorts"
	"github.com/panoplyio/sorts/compare"
	"github.com/stretchr/testify/require"
)

// VerifyReadOnly makes sure no Data method but Swap() modifies data, and that
// the values produced by Append() and Clone() own their memory: swapping them
// around leaves data as it was
func VerifyReadOnly(t *testing.T, data sorts.Data) {
	require.True(t, data.Len() > 1, "need at least two values")
	last := data.Len() - 1
	before := data.Strings()

	readers := map[string]func(){
		"Type":    func() { data.Type() },
		"Less":    func() { data.Less(0, last) },
		"Compare": func() { data.Compare(last, 0) },
		"Strings": func() { data.Strings() },
		"Render":  func() { sorts.Render(io.Discard, data) },
	}
	for name, read := range readers {
		read()
		require.Equal(t, before, data.Strings(), "%s modified data", name)
	}

	owned := map[string]sorts.Data{
		"Append": data.Append(data.Type().Data(0)),
		"Clone":  sorts.Clone(data),
	}
	for name, res := range owned {
		require.Equal(t, before, res.Strings(), name)
		res.Swap(0, last)
		require.Equal(t, before, data.Strings(), "%s result aliases data", name)
	}
}

// VerifyComparatorConsistency makes sure Less() agrees with Compare() for
// every pair, and that Compare() is antisymmetric
func VerifyComparatorConsistency(t *testing.T, data sorts.Data) {
	for i := 0; i < data.Len(); i++ {
		for j := 0; j < data.Len(); j++ {
			c := data.Compare(i, j)
			require.Equal(t, c == compare.Less, data.Less(i, j), "Less(%d, %d)", i, j)
			require.Equal(t, c, data.Compare(j, i).Reverse(), "Compare(%d, %d)", i, j)
		}
	}
}

// VerifySorted makes sure every adjacent pair of data is ordered by dir
func VerifySorted(t *testing.T, data sorts.Data, dir sorts.Direction) {
	require.True(t, sorts.IsSorted(data, dir), "not sorted %s: %v", dir, data.Strings())
}

// VerifyPermutation makes sure after holds exactly the values of before, in
// any order: sorting never drops nor invents values
func VerifyPermutation(t *testing.T, before, after sorts.Data) {
	require.Equal(t, before.Len(), after.Len())
	require.Equal(t, multiset(before), multiset(after))
}

func multiset(data sorts.Data) []string {
	res := append([]string(nil), data.Strings()...)
	sort.Strings(res)
	return res
}
