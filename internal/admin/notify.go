package admin

import "sushimenu/internal/logger"

// Notifier receives the transient user-facing notifications raised by
// mutations.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// logNotifier is the default Notifier, it writes notifications to the
// structured log.
type logNotifier struct{}

func (logNotifier) Success(msg string) { logger.L().Info(msg) }
func (logNotifier) Failure(msg string) { logger.L().Warn(msg) }
