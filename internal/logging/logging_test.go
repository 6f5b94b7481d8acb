/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	logger.Debug("hidden")
	logger.Info("catalog loaded", "providers", 15)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `msg="catalog loaded" providers=15`)
}

func TestNew_JSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatJSON, Output: &buf})

	logger.Info("skipped")
	logger.Warn("metadata registry unavailable", "source", "s3://bucket/key")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "s3://bucket/key", record["source"])
}

func TestNew_VerboseEnablesDebugWithSource(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelError, Verbose: true, Output: &buf})

	logger.Debug("resolving stack template")

	assert.Contains(t, buf.String(), "resolving stack template")
	assert.Contains(t, buf.String(), "source=")
}

func TestInit_SetsDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	logger := Init(Config{Level: slog.LevelInfo, Output: &buf})
	slog.Info("through default")

	assert.Same(t, logger.Handler(), slog.Default().Handler())
	assert.Contains(t, buf.String(), "through default")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	_, err := ParseLevel("loud")
	assert.EqualError(t, err, "invalid log level 'loud': expected debug, info, warn or error")
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	format, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	_, err = ParseFormat("xml")
	assert.EqualError(t, err, "invalid log format 'xml': expected text or json")
}
