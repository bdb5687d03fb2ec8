package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// ErrorResponse is the JSON shape of a failed command.
type ErrorResponse struct {
	Error string `json:"error"`
}

// outputJSON writes a value as formatted JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to w.
func outputHuman(w io.Writer, format string, args ...interface{}) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// reportError writes err to w in the requested format.
func reportError(w io.Writer, human bool, err error) {
	if human {
		fmt.Fprintf(w, "error: %s\n", err)
		return
	}
	_ = outputJSON(w, ErrorResponse{Error: err.Error()})
}
