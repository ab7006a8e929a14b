package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process wide logger
var Log = logrus.New()

type appNameHook struct {
	appName string
}

// Levels implements logrus.Hook interface.
func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook interface.
func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Data["app"] = h.appName
	return nil
}

// Init configures Log for the application. JSON output is used when json is
// true, otherwise a human readable text format.
func Init(appName string, level string, json bool) {
	Log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to INFO", level)
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if json {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.ReplaceHooks(make(logrus.LevelHooks))
	Log.AddHook(&appNameHook{appName})
}
