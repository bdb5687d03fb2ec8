package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viant/vecembed/vector"
	"go.uber.org/zap"
)

// readVector resolves a vector argument: "-" reads stdin, "@path" reads a
// file, anything else is parsed as an inline JSON array. A configured width
// is enforced on the result.
func (a *app) readVector(arg string, stdin io.Reader) (*vector.Embedding, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case arg == "-":
		data, err = io.ReadAll(stdin)
	case strings.HasPrefix(arg, "@"):
		data, err = os.ReadFile(arg[1:])
	default:
		data = []byte(arg)
	}
	if err != nil {
		return nil, fmt.Errorf("reading vector %q: %w", arg, err)
	}

	e, err := vector.ParseJSON(data)
	if err != nil {
		return nil, withExitCode(ExitDataError, err)
	}
	if a.cfg != nil && a.cfg.Width > 0 {
		if e, err = vector.NewWithWidth(e.Values(), a.cfg.Width); err != nil {
			return nil, err
		}
	}
	a.logger.Debug("vector parsed", zap.String("source", sourceName(arg)), zap.Int("dimension", e.Dimension()))
	return e, nil
}

// readVectors resolves every argument; at most one may read stdin.
func (a *app) readVectors(args []string, stdin io.Reader) ([]*vector.Embedding, error) {
	out := make([]*vector.Embedding, 0, len(args))
	stdinUsed := false
	for _, arg := range args {
		if arg == "-" {
			if stdinUsed {
				return nil, fmt.Errorf("stdin (-) can only be used once")
			}
			stdinUsed = true
		}
		e, err := a.readVector(arg, stdin)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func sourceName(arg string) string {
	switch {
	case arg == "-":
		return "stdin"
	case strings.HasPrefix(arg, "@"):
		return arg[1:]
	}
	return "inline"
}
