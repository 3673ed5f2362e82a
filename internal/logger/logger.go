// Package logger initializes the global zerolog logger from configuration.
// Output can go to the console, to size-rotated files split by level, or
// both; every write also bumps a prometheus counter per level.
package logger

import (
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelWriter splits log writes into separate info, warn and error streams.
type LevelWriter struct {
	io.Writer
	InfoWriter  io.Writer
	WarnWriter  io.Writer
	ErrorWriter io.Writer
}

// WriteLevel routes the log line to the writer matching its level.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	switch {
	case l == zerolog.Disabled:
		return 0, nil
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel: // error, fatal and panic go to error
		w = lw.ErrorWriter
	default: // trace, debug and info go to info
		w = lw.InfoWriter
	}

	return w.Write(p) //nolint:wrapcheck
}

// Init configures the global zerolog logger.
// Depending on the config it enables the console writer, the rolling file
// writer, or neither. Be sure to enable at least one for output.
func Init(cfg Log) error {
	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "loglevel %s is not supported", cfg.LogLevel)
	}

	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	var (
		writers []io.Writer
		stack   bool
	)

	// use zerolog stack marshal func if trace level is set
	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)

	ph := NewPrometheusHook(cfg.ServiceName)

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		writers = append(writers, newRollingLevelFile(cfg))
	}

	mw := zerolog.MultiLevelWriter(writers...)

	switch {
	case cfg.ReportCaller && stack:
		log.Logger = zerolog.New(mw).Hook(ph).With().Timestamp().Stack().Logger()
	case cfg.ReportCaller:
		log.Logger = zerolog.New(mw).Hook(ph).With().Timestamp().Caller().Logger()
	default:
		log.Logger = zerolog.New(mw).Hook(ph).With().Timestamp().Logger()
	}

	return nil
}

// newRollingLevelFile uses LevelWriter and lumberjack to create level-split,
// size-rotated log files.
func newRollingLevelFile(cfg Log) io.Writer {
	if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil { //nolint: mnd
		log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")

		return nil
	}

	return &LevelWriter{
		InfoWriter: &lumberjack.Logger{
			Filename:   path.Join(cfg.File.Path, cfg.File.InfoLog),
			MaxSize:    cfg.File.InfoMaxSize,
			MaxAge:     cfg.File.InfoMaxAge,
			MaxBackups: cfg.File.InfoMaxBackups,
		},
		WarnWriter: &lumberjack.Logger{
			Filename:   path.Join(cfg.File.Path, cfg.File.WarnLog),
			MaxSize:    cfg.File.WarnMaxSize,
			MaxAge:     cfg.File.WarnMaxAge,
			MaxBackups: cfg.File.WarnMaxBackups,
		},
		ErrorWriter: &lumberjack.Logger{
			Filename:   path.Join(cfg.File.Path, cfg.File.ErrorLog),
			MaxSize:    cfg.File.ErrorMaxSize,
			MaxAge:     cfg.File.ErrorMaxAge,
			MaxBackups: cfg.File.ErrorMaxBackups,
		},
	}
}

// NewConsoleWriter creates a level-split console writer, optionally wrapped
// in zerolog's human-readable ConsoleWriter.
func NewConsoleWriter(cfg Log) io.Writer {
	lw := &LevelWriter{
		InfoWriter:  os.Stdout,
		WarnWriter:  os.Stderr,
		ErrorWriter: os.Stderr,
	}

	if cfg.Console.UseConsoleWriter {
		lw.InfoWriter = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: zerolog.TimeFieldFormat}
		lw.WarnWriter = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: zerolog.TimeFieldFormat}
		lw.ErrorWriter = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: zerolog.TimeFieldFormat}
	}

	return lw
}
