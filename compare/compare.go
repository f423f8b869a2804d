package compare

// Comparison is an enum for comparing data. We chose to use type byte, due to memory constraints. The 'a', 'b', 'c'... is arbitrary.
type Comparison byte

const (
	// Equal represents equal to other data object, e.g. 1 == 1
	Equal Comparison = 'a'
	// Greater represents greater than other data object, e.g. 2 > 1
	Greater Comparison = 'd'
	// Less represents less than other data object, e.g. 1 < 2
	Less Comparison = 'e'
)

// Reverse flips the direction of the comparison. Equal stays Equal
func (c Comparison) Reverse() Comparison {
	switch c {
	case Less:
		return Greater
	case Greater:
		return Less
	}
	return c
}

func (c Comparison) String() string {
	switch c {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "unknown"
}

// Ints compares two integers by their natural order
func Ints(a, b int) Comparison {
	if a < b {
		return Less
	}
	if a > b {
		return Greater
	}
	return Equal
}

// Chars compares two characters by their byte value, e.g. '\x00' < 'a' < 'z'
func Chars(a, b byte) Comparison {
	if a < b {
		return Less
	}
	if a > b {
		return Greater
	}
	return Equal
}
