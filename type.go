package sorts

// Type is an interface that represnts specific data types
type Type interface {
	Name() string

	// Data returns a new Data object of this type, containing `n` zero-values
	Data(n int) Data
}

// Integer is the Type of Ints
var Integer = &integerType{}

// Char is the Type of Chars
var Char = &charType{}

type integerType struct{}

func (*integerType) Name() string     { return "int" }
func (t *integerType) String() string { return t.Name() }
func (*integerType) Data(n int) Data  { return make(Ints, n) }

type charType struct{}

func (*charType) Name() string     { return "char" }
func (t *charType) String() string { return t.Name() }
func (*charType) Data(n int) Data  { return make(Chars, n) }
