// Package sorts orders short, fixed sequences of values by a total-order
// comparator and renders them as a single space-separated line.
//
// Data
//
// Every sequence is a Data: a typed, sortable column of values that knows how
// to compare two of its own elements and how to print them:
//
//      var data sorts.Data = sorts.Ints{5, 2, 9, 1, 5, 6}
//      sorts.Sort(data, sorts.Desc)
//      fmt.Println(data.Strings()) // [9 6 5 5 2 1]
//
// Demos
//
// The four canonical demonstrations are kept in the Demos registry and are
// exposed as standalone binaries under cmd/:
//
//      func (demosReg) Add(name string, d Demo) int
//      func (demosReg) Get(name string) (Demo, bool)
//
package sorts
