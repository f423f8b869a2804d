package sorts

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Render writes all of the data values to w in their current order, each
// followed by a single space, and terminates the line with a newline. The
// line is written with a single Write call
func Render(w io.Writer, data Data) error {
	var b strings.Builder
	if data != nil {
		for _, s := range data.Strings() {
			b.WriteString(s)
			b.WriteByte(' ')
		}
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "render")
}

// OrderAndRender sorts a copy of data by the given direction and renders it
// to w. The input data is left untouched, so calling it again with the same
// input (or with its already sorted output) produces the same line
func OrderAndRender(w io.Writer, data Data, dir Direction) error {
	if data == nil {
		return Render(w, nil)
	}

	sorted := Clone(data)
	Sort(sorted, dir)
	return Render(w, sorted)
}
