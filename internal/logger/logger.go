package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Init configures the process logger. Level falls back to LOG_LEVEL and
// then to a sensible default per environment; output is JSON outside
// development so log collectors can parse it.
func Init(logLevel string, isDevelopment bool) *logrus.Logger {
	l := logrus.New()

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			if isDevelopment {
				logLevel = "debug"
			} else {
				logLevel = "info"
			}
		}
	}

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		l.SetLevel(level)
	} else {
		l.SetLevel(logrus.InfoLevel)
		l.WithField("invalid_level", logLevel).Warn("Invalid LOG_LEVEL, using INFO")
	}

	if !isDevelopment {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l.SetOutput(os.Stdout)

	log = l
	return l
}

// Get returns the process logger, initializing a default one if Init has
// not run yet (tests rely on this).
func Get() *logrus.Logger {
	if log == nil {
		return Init("info", true)
	}
	return log
}

// WithComponent returns an entry tagged with the originating component.
func WithComponent(component string) *logrus.Entry {
	return Get().WithField("component", component)
}
