package sorts

import (
	"sort"
)

// Demos is the registry of the ordering demonstrations, keyed by name
var Demos = demosReg{}

type demosReg map[string]Demo // see Demos in the package docs.
func (reg demosReg) Get(name string) (Demo, bool) {
	d, ok := reg[name]
	return d, ok
}

func (reg demosReg) Add(name string, d Demo) int {
	d.Name = name
	reg[name] = d
	return len(reg)
}

// Names returns the registered demo names, sorted
func (reg demosReg) Names() []string {
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
