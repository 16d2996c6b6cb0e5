// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"KanbanWebService/config"
)

// New returns a logrus logger writing to out with the configured level and format.
func New(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)

	switch cfg.Format {
	case "json", "":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return log, nil
}
