package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = orig
	return string(<-done), fnErr
}

// resetFlags restores global flag state between table cases
func resetFlags() {
	verbose, quiet, jsonOut = false, false, false
	layoutHeadSize, layoutHeadAlign = 0, 1
	layoutElemSize, layoutElemAlign = 0, 1
	layoutCount = 0
	decodeFrom = "utf-8"
}

func decodeJSON[T any](t *testing.T, output string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(output), &v), "output: %s", output)
	return v
}
