// Command chars-desc prints the characters z a q m b in descending order.
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
	if err := sorts.Run(w, "chars_desc"); err != nil {
		log.WithError(err).Error("chars-desc")
		return 1
	}
	return 0
}
