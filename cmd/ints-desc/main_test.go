package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.Equal(t, 0, run(&out))
	require.Equal(t, "9 6 5 5 2 1 \n", out.String())
}

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRun_writeError(t *testing.T) {
	require.Equal(t, 1, run(closedWriter{}))
}
