package sorts

import (
	"github.com/panoplyio/sorts/compare"
)

// Chars is a Data of single-byte characters, each rendered as its literal
// byte. A NUL terminator is a regular value here: it sorts before every
// printable character and renders as the raw "\x00" byte
type Chars []byte

func (Chars) Type() Type                             { return Char }
func (vs Chars) Len() int                            { return len(vs) }
func (vs Chars) Less(i, j int) bool                  { return vs.Compare(i, j) == compare.Less }
func (vs Chars) Swap(i, j int)                       { vs[i], vs[j] = vs[j], vs[i] }
func (vs Chars) Compare(i, j int) compare.Comparison { return compare.Chars(vs[i], vs[j]) }

// see Data.Append. Always allocates, so the result never aliases vs
func (vs Chars) Append(o Data) Data {
	other := o.(Chars)
	res := make(Chars, 0, len(vs)+len(other))
	res = append(res, vs...)
	return append(res, other...)
}

// see Data.Strings
func (vs Chars) Strings() []string {
	res := make([]string, len(vs))
	for i, c := range vs {
		res[i] = string([]byte{c})
	}
	return res
}
