package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Fields = logrus.Fields

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init sets the level (debug, info, warn, error) and the output format
// ("json" or "text").
func Init(level, format string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	std.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		std.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}

func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func WithFields(fields Fields) *logrus.Entry {
	return std.WithFields(fields)
}

func Debug(msg string, v ...interface{}) {
	std.Debugf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	std.Infof(msg, v...)
}

func Warn(msg string, v ...interface{}) {
	std.Warnf(msg, v...)
}

func Error(msg string, err error, v ...interface{}) {
	if err != nil {
		std.WithError(err).Errorf(msg, v...)
	} else {
		std.Errorf(msg, v...)
	}
}
