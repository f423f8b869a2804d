// Command ints-desc prints the integers 5 2 9 1 5 6 in descending order.
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
	if err := sorts.Run(w, "ints_desc"); err != nil {
		log.WithError(err).Error("ints-desc")
		return 1
	}
	return 0
}
