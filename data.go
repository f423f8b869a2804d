package sorts

import (
	"sort"

	"github.com/panoplyio/sorts/compare"
)

// Data is an abstract interface representing a sequence of typed values.
// Implement it for each type of data that you need to order
type Data interface {
	// Type returns the data type of the contained values
	Type() Type

	sort.Interface // data is sortable

	// Compare the i-th and j-th values by the natural order of the type. It
	// must be a strict total order, and Less(i, j) must agree with it
	Compare(i, j int) compare.Comparison

	// Append another data object to this one. It can be assumed that the type
	// of the input data is similar to the current one, otherwise it's safe to
	// panic
	Append(Data) Data

	// Strings returns the string representation of all of the Data values
	Strings() []string
}

// Clone the contents of the provided Data. The clone never shares memory with
// the input, so sorting it leaves the original intact
func Clone(data Data) Data {
	return data.Type().Data(0).Append(data)
}
