package internal

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// NewLogger returns the progress logger. Unknown levels fall back to info.
func NewLogger(level string, out io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "probingen",
		Level:  lvl,
		Output: out,
		Color:  hclog.ColorOff,
	})
}
