package logger

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

type LogLevel int

const (
	LogLevelInfo LogLevel = iota
	LogLevelWarning
	LogLevelError
)

var (
	infoLogger    *log.Logger
	warningLogger *log.Logger
	errorLogger   *log.Logger
	currentLevel  = LogLevelInfo

	warningPrefix = color.New(color.FgYellow).Sprint("WARNING: ")
	errorPrefix   = color.New(color.FgRed).Sprint("ERROR: ")
)

func init() {
	infoLogger = log.New(os.Stdout, "", 0)
	warningLogger = log.New(os.Stdout, "", 0)
	errorLogger = log.New(os.Stderr, "", 0)
}

// SetLevel sets the minimum log level to display
func SetLevel(level LogLevel) {
	currentLevel = level
}

// SetOutput sets the output destination for all loggers
func SetOutput(w io.Writer) {
	infoLogger.SetOutput(w)
	warningLogger.SetOutput(w)
	errorLogger.SetOutput(w)
}

// Info logs an informational message
func Info(format string, v ...interface{}) {
	if currentLevel <= LogLevelInfo {
		infoLogger.Printf(format, v...)
	}
}

// Warning logs a warning message
func Warning(format string, v ...interface{}) {
	if currentLevel <= LogLevelWarning {
		warningLogger.Printf(warningPrefix+format, v...)
	}
}

// Error logs an error message
func Error(format string, v ...interface{}) {
	if currentLevel <= LogLevelError {
		errorLogger.Printf(errorPrefix+format, v...)
	}
}

// DryRun logs an action that would have run without --safe
func DryRun(format string, v ...interface{}) {
	infoLogger.Printf("[DRY RUN] "+format, v...)
}
