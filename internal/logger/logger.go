package logger

import (
	"io"
	"os"
	"time"

	"github.com/chronos-tachyon/huffstream/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// New builds the process logger.  It always writes to stderr, because
// stdout carries compressed or decompressed data.
func New(conf *config.Conf) (zerolog.Logger, error) {
	return NewWithWriter(conf, os.Stderr)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(conf *config.Conf, w io.Writer) (zerolog.Logger, error) {
	zerolog.TimeFieldFormat = conf.String("logger.time-format", time.RFC3339)

	level, err := zerolog.ParseLevel(conf.String("logger.level", "info"))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "failed to parse log level")
	}

	if conf.Bool("logger.prettier", true) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: zerolog.TimeFieldFormat}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
