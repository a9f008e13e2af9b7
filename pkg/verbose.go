package dupmirror

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

var globalVerboseLevel int
var debugFlags map[string]bool

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Logger returns the package logger
func Logger() *logrus.Logger {
	return logger
}

// SetLogOutput redirects log output; nil restores stderr
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger.SetOutput(w)
}

// SetVerboseLevel sets the global verbose level
// (0=warnings, 1=info, 2=debug, 3=trace)
func SetVerboseLevel(level int) {
	globalVerboseLevel = level
	switch {
	case level <= 0:
		logger.SetLevel(logrus.WarnLevel)
	case level == 1:
		logger.SetLevel(logrus.InfoLevel)
	case level == 2:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.TraceLevel)
	}
}

// GetVerboseLevel returns the current verbose level
func GetVerboseLevel() int {
	return globalVerboseLevel
}

// VerboseEnter logs function entry at level 3+ and returns a defer function for exit logging
func VerboseEnter() func() {
	if globalVerboseLevel < 3 {
		return func() {}
	}

	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return func() {}
	}

	funcName := runtime.FuncForPC(pc).Name()
	if idx := strings.LastIndex(funcName, "."); idx != -1 {
		funcName = funcName[idx+1:]
	}

	logger.WithField("func", funcName).Trace("enter")
	return func() {
		logger.WithField("func", funcName).Trace("exit")
	}
}

// VerboseLog logs a message at the specified verbose level. Level 0
// messages are warnings and are always shown.
func VerboseLog(level int, format string, args ...interface{}) {
	if level > 0 && globalVerboseLevel < level {
		return
	}
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	switch {
	case level <= 0:
		logger.Warn(msg)
	case level == 1:
		logger.Info(msg)
	case level == 2:
		logger.Debug(msg)
	default:
		logger.Trace(msg)
	}
}

// SetDebugFlags sets the debug flags from a comma-separated string
// Supports both simple flags ("scan,relocate") and key:value format ("scan:true,relocate:false")
func SetDebugFlags(flagsStr string) {
	debugFlags = make(map[string]bool)
	if flagsStr == "" {
		return
	}

	flags := strings.Split(flagsStr, ",")
	for _, flag := range flags {
		flag = strings.TrimSpace(flag)
		if flag == "" {
			continue
		}

		parts := strings.SplitN(flag, ":", 2)
		flagName := strings.ToLower(parts[0])
		flagValue := true

		if len(parts) > 1 {
			switch strings.ToLower(parts[1]) {
			case "false", "0", "no", "off":
				flagValue = false
			}
		}

		debugFlags[flagName] = flagValue
	}
}

// IsDebugEnabled returns true if the specified debug flag is enabled
func IsDebugEnabled(flag string) bool {
	if debugFlags == nil {
		return false
	}
	return debugFlags[strings.ToLower(flag)]
}
