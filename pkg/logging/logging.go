// Package logging configures the logrus logger used across fundflow. The TUI
// owns the terminal, so records go to a rotated file when one is configured
// and are discarded otherwise.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level  string
	File   string
	JSON   bool
	Output io.Writer // overrides File when set, used by tests
}

// New builds a logger from opts.
func New(opts Options) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(parseLevel(opts.Level))
	if opts.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	switch {
	case opts.Output != nil:
		l.SetOutput(opts.Output)
	case strings.TrimSpace(opts.File) != "":
		l.SetOutput(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28,
		})
	default:
		l.SetOutput(io.Discard)
	}
	return l
}

// Discard returns a logger that writes nowhere.
func Discard() *logrus.Logger {
	return New(Options{Output: io.Discard})
}

func parseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
