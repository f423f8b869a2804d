package sorts

import (
	"sort"

	"github.com/panoplyio/sorts/compare"
)

// Direction is the sort direction of a Comparator (asc/desc)
type Direction int

const (
	// Asc orders values from the smallest to the largest
	Asc Direction = iota
	// Desc orders values from the largest to the smallest
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Comparator defines a single total order, composed of the data type it
// applies to and the sort direction. The four canonical comparators below
// are the only ones the demos use
type Comparator struct {
	Type Type
	Dir  Direction
}

var (
	IntsAsc   = Comparator{Integer, Asc}
	IntsDesc  = Comparator{Integer, Desc}
	CharsAsc  = Comparator{Char, Asc}
	CharsDesc = Comparator{Char, Desc}
)

// Compare the i-th and j-th values of data under this comparator's order. It
// panics if data is not of the comparator's type
func (c Comparator) Compare(data Data, i, j int) compare.Comparison {
	c.mustAccept(data)

	res := data.Compare(i, j)
	if c.Dir == Desc {
		return res.Reverse()
	}
	return res
}

// Sort sorts data in place by this comparator's order
func (c Comparator) Sort(data Data) {
	if data != nil {
		c.mustAccept(data)
	}
	Sort(data, c.Dir)
}

func (c Comparator) String() string {
	return c.Type.Name() + " " + c.Dir.String()
}

func (c Comparator) mustAccept(data Data) {
	if data.Type() != c.Type {
		panic("comparator of type " + c.Type.Name() + " cannot order " + data.Type().Name())
	}
}

// Sort sorts given data in place by given direction. The underlying sort is
// not stable: equal values may end up in any relative order
func Sort(data Data, dir Direction) {
	// if no data - don't change anything
	if data == nil || data.Len() == 0 {
		return
	}

	var sortable sort.Interface = data
	if dir == Desc {
		sortable = sort.Reverse(sortable)
	}
	sort.Sort(sortable)
}

// IsSorted reports whether every adjacent pair of data compares as
// less-or-equal under the given direction
func IsSorted(data Data, dir Direction) bool {
	if data == nil {
		return true
	}

	c := Comparator{data.Type(), dir}
	for i := 0; i+1 < data.Len(); i++ {
		if c.Compare(data, i, i+1) == compare.Greater {
			return false
		}
	}
	return true
}
