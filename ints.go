package sorts

import (
	"strconv"

	"github.com/panoplyio/sorts/compare"
)

// Ints is a Data of signed integers, rendered as decimal text
type Ints []int

func (Ints) Type() Type                             { return Integer }
func (vs Ints) Len() int                            { return len(vs) }
func (vs Ints) Less(i, j int) bool                  { return vs.Compare(i, j) == compare.Less }
func (vs Ints) Swap(i, j int)                       { vs[i], vs[j] = vs[j], vs[i] }
func (vs Ints) Compare(i, j int) compare.Comparison { return compare.Ints(vs[i], vs[j]) }

// see Data.Append. Always allocates, so the result never aliases vs
func (vs Ints) Append(o Data) Data {
	other := o.(Ints)
	res := make(Ints, 0, len(vs)+len(other))
	res = append(res, vs...)
	return append(res, other...)
}

// see Data.Strings
func (vs Ints) Strings() []string {
	res := make([]string, len(vs))
	for i, v := range vs {
		res[i] = strconv.Itoa(v)
	}
	return res
}
