// Package logger configures the logrus logger used by the knapdag command.
// Library packages never log; only the command does.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Options selects verbosity and format. Quiet wins over Debug.
type Options struct {
	Level string // logrus level name; empty means info
	Debug bool
	Quiet bool
	JSON  bool
}

// New returns a logger writing to w.
// Text output carries full timestamps; colours are on only for terminals.
func New(w io.Writer, opts Options) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		lv, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		level = lv
	}
	switch {
	case opts.Quiet:
		level = logrus.ErrorLevel
	case opts.Debug:
		level = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: !isTerminal(w),
		})
	}

	return log, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
