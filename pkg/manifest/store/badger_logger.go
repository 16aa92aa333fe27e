package store

import (
	"fmt"
	"strings"

	"github.com/marmos91/dataview/internal/logger"
)

// badgerLogger routes BadgerDB's printf-style logging into the structured
// logger. Badger's info output is chatty, so it is demoted to debug.
type badgerLogger struct{}

func badgerMessage(format string, args ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}

func (badgerLogger) Errorf(format string, args ...any) {
	logger.Error(badgerMessage(format, args...), "component", "badger")
}

func (badgerLogger) Warningf(format string, args ...any) {
	logger.Warn(badgerMessage(format, args...), "component", "badger")
}

func (badgerLogger) Infof(format string, args ...any) {
	logger.Debug(badgerMessage(format, args...), "component", "badger")
}

func (badgerLogger) Debugf(format string, args ...any) {
	logger.Debug(badgerMessage(format, args...), "component", "badger")
}
