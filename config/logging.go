package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures the standard logrus logger.
func SetupLogger(cfg Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalidConfig, cfg.LogLevel)
	}
	logrus.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
