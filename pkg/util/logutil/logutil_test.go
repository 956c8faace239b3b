// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package logutil

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHandlerLevels(t *testing.T) {
	for _, test := range []struct {
		name      string
		debug     bool
		withDebug bool
	}{
		{name: "info", debug: false, withDebug: false},
		{name: "debug", debug: true, withDebug: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler, closer := NewHandler(buf, Options{Debug: test.debug})
			defer closer.Close()

			logger := slog.New(handler)
			logger.Info("visible message")
			logger.Debug("debug message")

			require.Contains(t, buf.String(), "visible message")
			if test.withDebug {
				require.Contains(t, buf.String(), "debug message")
			} else {
				require.NotContains(t, buf.String(), "debug message")
			}
		})
	}
}

func TestNewHandlerLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "fsops.log")
	buf := &bytes.Buffer{}

	handler, closer := NewHandler(buf, Options{LogFile: logFile})
	logger := slog.New(handler)
	logger.Debug("only in file", "path", "/tmp/x")
	logger.Info("everywhere")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "only in file")
	require.Contains(t, string(data), "everywhere")
	require.NotContains(t, buf.String(), "only in file")
	require.Contains(t, buf.String(), "everywhere")
}
