package logger

import (
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// Level selects how much is logged.
type Level int8

const (
	// Info logs failures and basic information.
	Info Level = iota
	// Debug also logs every pipeline stage.
	Debug
)

func init() {
	logger.SetOutput(os.Stderr)
	if env, err := strconv.ParseBool(os.Getenv("DEBUG")); env && err == nil {
		SetLevel(Debug)
	} else {
		SetLevel(Info)
	}
}

// SetLevel sets the logging level, Info by default.
func SetLevel(level Level) {
	switch level {
	case Debug:
		logger.SetLevel(logrus.DebugLevel)
		logger.ReportCaller = true
		logger.SetFormatter(&logrus.TextFormatter{DisableLevelTruncation: true, ForceQuote: true})
	default:
		logger.SetLevel(logrus.InfoLevel)
		logger.ReportCaller = false
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableLevelTruncation: true, ForceQuote: true})
	}
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// L returns the process-wide logger.
func L() *logrus.Logger {
	return logger
}
