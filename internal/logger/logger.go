package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures Log. format "json" selects the JSON formatter, anything else
// the text formatter. A nil out writes to stderr. An unknown level leaves Log
// at info and is reported.
func Init(level, format string, out io.Writer) error {
	if out == nil {
		out = os.Stderr
	}
	Log.SetOutput(out)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: out != os.Stderr,
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.SetLevel(logrus.InfoLevel)
		return fmt.Errorf("log level %q: %w", level, err)
	}
	Log.SetLevel(lvl)
	return nil
}

// For returns an entry tagged with the subsystem name.
func For(component string) *logrus.Entry {
	return Log.WithFields(logrus.Fields{"component": component})
}
