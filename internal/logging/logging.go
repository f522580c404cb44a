package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// InitLogger sets up the process-wide logger. Safe to call once; later calls
// are no-ops.
func InitLogger(level logrus.Level) {
	once.Do(func() {
		logger = logrus.New()
		logger.SetLevel(level)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	})
}

// GetLogger returns the shared logger, initializing it at Info level if
// InitLogger was never called.
func GetLogger() *logrus.Logger {
	if logger == nil {
		InitLogger(logrus.InfoLevel)
	}
	return logger
}
