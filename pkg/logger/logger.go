// Package logger configures the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup applies the level and format to the standard logrus logger. Unknown
// levels fall back to info; format is "json" or anything else for text.
func Setup(level, format string) {
	Configure(log.StandardLogger(), os.Stdout, level, format)
}

// Configure applies the settings to l, writing to out.
func Configure(l *log.Logger, out io.Writer, level, format string) {
	l.SetOutput(out)

	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		l.SetFormatter(&log.JSONFormatter{})
		return
	}
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
