// Command chars-asc prints the characters of "salam", terminator included, in
// ascending order.
package main

import (
	"io"
	"os"

	"github.com/panoplyio/sorts"
	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Stdout))
}

func run(w io.Writer) int {
	if err := sorts.Run(w, "chars_asc"); err != nil {
		log.WithError(err).Error("chars-asc")
		return 1
	}
	return 0
}
