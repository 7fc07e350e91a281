package log

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

var base = newBase()

func newBase() *log.Logger {
	b := log.New()
	b.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})
	b.SetOutput(os.Stderr)
	b.SetLevel(log.WarnLevel)
	return b
}

// NewLogger returns a logger tagged with the component name. All loggers
// share one base, so SetLevel and SetOutput apply to every component.
func NewLogger(module string) *Logger {
	return &Logger{base.WithFields(log.Fields{
		"name": module,
	})}
}

func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

func Base() *log.Logger {
	return base
}
