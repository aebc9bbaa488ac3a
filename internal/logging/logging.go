// Package logging holds the process-wide logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It discards everything until Init is called.
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures the global logger and points it at path.
// level is a logrus level name ("debug", "info", ...); an unknown level falls
// back to info. format "json" selects the JSON formatter, anything else text.
// The returned close function releases the log file.
func Init(level, format, path string) (func() error, error) {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	closeFn := func() error { return nil }
	switch path {
	case "", "-":
		l.SetOutput(io.Discard)
	default:
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		l.SetOutput(f)
		closeFn = f.Close
	}

	Log = l
	return closeFn, nil
}
