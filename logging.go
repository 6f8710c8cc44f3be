// logging.go wires up package-level structured logging. Grounded on the
// op/go-logging backend-and-formatter setup used by frankkopp-FrankyGo:
// a single process-wide backend, a module-scoped *logging.Logger per
// concern, leveled independently of the log calls themselves.

package corechess

import (
	"os"

	"github.com/op/go-logging"
)

// Package-level loggers, one per owning concern, following FrankyGo's
// convention of naming each *logging.Logger after its package rather than
// sharing one process-wide logger.
var (
	log        = logging.MustGetLogger("corechess")
	searchLog  = logging.MustGetLogger("search")
	ttLog      = logging.MustGetLogger("tt")
	movegenLog = logging.MustGetLogger("movegen")
)

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module} - %{message}`,
)

// InitLogging wires the process-wide logging backend at the given level
// ("debug", "info", "warning", "error"). Call once at process start,
// before any search runs — the search loop logs iteration summaries at
// INFO and TT hit/miss detail at DEBUG.
func InitLogging(level string) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(parseLevel(level), "")
	logging.SetBackend(leveled)
}

func parseLevel(level string) logging.Level {
	switch level {
	case "debug":
		return logging.DEBUG
	case "warning", "warn":
		return logging.WARNING
	case "error":
		return logging.ERROR
	default:
		return logging.INFO
	}
}
