package sorts

import (
	"io"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// ErrUnknownDemo is returned by Run for names missing from the Demos registry
var ErrUnknownDemo = errors.New("unknown demo")

// Demo is a fixed sequence of values paired with the comparator that orders
// it. The data is a literal: running the demo sorts a copy of it
type Demo struct {
	Name       string
	Data       Data
	Comparator Comparator
}

var _ = Demos.Add("ints_asc", Demo{
	Data:       Ints{5, 2, 9, 1, 5, 6},
	Comparator: IntsAsc,
})

var _ = Demos.Add("ints_desc", Demo{
	Data:       Ints{5, 2, 9, 1, 5, 6},
	Comparator: IntsDesc,
})

// the array is built from the literal "salam", so the terminating NUL takes
// part in the sort and is printed first
var _ = Demos.Add("chars_asc", Demo{
	Data:       Chars("salam\x00"),
	Comparator: CharsAsc,
})

var _ = Demos.Add("chars_desc", Demo{
	Data:       Chars{'z', 'a', 'q', 'm', 'b'},
	Comparator: CharsDesc,
})

// Run orders a copy of the demo data and renders it to w. Every run gets its
// own id, logged at debug level and carried by the returned error
func (d Demo) Run(w io.Writer) error {
	id := uuid.NewV4().String()
	logger := log.WithFields(log.Fields{
		"run":        id,
		"demo":       d.Name,
		"comparator": d.Comparator.String(),
	})
	logger.WithField("len", d.Data.Len()).Debug("ordering")

	sorted := Clone(d.Data)
	d.Comparator.Sort(sorted)
	if err := Render(w, sorted); err != nil {
		logger.WithError(err).Debug("render failed")
		return errors.Wrapf(err, "demo %s (run %s)", d.Name, id)
	}

	logger.Debug("done")
	return nil
}

// Run looks up the named demo in the Demos registry and runs it
func Run(w io.Writer, name string) error {
	d, ok := Demos.Get(name)
	if !ok {
		return errors.Wrapf(ErrUnknownDemo, "%q", name)
	}
	return d.Run(w)
}
