package ros

import (
	modular "github.com/edwinhayes/logrus-modular"
	"github.com/sirupsen/logrus"
)

// rootLogger is shared by every package of the module. NewRootLogger keeps the
// logrus level as its own and opens logrus fully, so levels are controlled
// here and flow down to the module loggers.
var rootLogger = modular.NewRootLogger(logrus.StandardLogger())

var logger = ModuleLogger("ros")

// ModuleLogger returns the named child of the root logger, created at the
// root's current level.
func ModuleLogger(name string) modular.ModuleLogger {
	return rootLogger.GetOrCreateChild(name, rootLogger.GetLevel())
}

// SetLogLevel sets the level of the root and all module loggers
func SetLogLevel(level logrus.Level) {
	rootLogger.SetLevel(level)
}

// DefaultLogger returns the logrus logger all module loggers write to
func DefaultLogger() *logrus.Logger {
	return rootLogger.GetLogger()
}
