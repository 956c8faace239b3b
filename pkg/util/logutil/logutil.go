// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package logutil

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Debug   bool
	LogFile string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewHandler builds the stderr handler and, if a log file is set, fans out to a
// rotating debug log as well. The returned closer releases the log file.
func NewHandler(w io.Writer, opts Options) (slog.Handler, io.Closer) {
	logLevel := slog.LevelInfo
	if opts.Debug {
		logLevel = slog.LevelDebug
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	handlers := []slog.Handler{
		tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.TimeOnly,
			NoColor:    noColor,
		}),
	}

	if opts.LogFile == "" {
		return handlers[0], nopCloser{}
	}

	logFile := &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    5, // MB
		MaxBackups: 4,
		MaxAge:     30, // days
		Compress:   true,
		FileMode:   0o644,
	}

	handlers = append(handlers, slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return slogmulti.Fanout(handlers...), logFile
}

// Setup installs the default slog logger for a command and logs its version.
func Setup(name, version string, opts Options) io.Closer {
	handler, closer := NewHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))

	slog.Debug(name, "version", version)

	return closer
}
