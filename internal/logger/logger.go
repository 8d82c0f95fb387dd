package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a logger for the given level and format ("json" or "text").
// An unparsable level falls back to info and is reported once.
func New(level, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	if strings.ToLower(format) == "text" {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	if lvl, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", level).Warn("Invalid log level, using INFO")
	}

	return log
}
