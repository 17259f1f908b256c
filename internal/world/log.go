package world

import (
	"io"

	"github.com/charmbracelet/log"
)

var logger = log.New(io.Discard)

// SetLogger replaces the package logger. A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l.WithPrefix("world")
}
