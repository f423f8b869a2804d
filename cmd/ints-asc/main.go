// Command ints-asc prints the integers 5 2 9 1 5 6 in ascending order.
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
	if err := sorts.Run(w, "ints_asc"); err != nil {
		log.WithError(err).Error("ints-asc")
		return 1
	}
	return 0
}
