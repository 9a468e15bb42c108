package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.WarnContext(context.Background(), "team squad failed", "team_id", 57, "error", errors.New("boom"), "dangling")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "team squad failed", entries[0].Message)
	assert.EqualValues(t, 57, fields["team_id"])
	assert.Equal(t, "boom", fields["error"])
	assert.Contains(t, fields, "dangling")
	assert.Nil(t, fields["dangling"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := FromZap(zap.New(core)).Named("cache")

	logger.Info("cache hit", "key", "standings_PL")
	logger.Error("cache load failed", "key", "standings_PL")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "cache", logs.All()[0].LoggerName)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"WARNING": LevelWarn,
		" error ": LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", in, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	assert.NotNil(t, logger.With("k", "v"))
	assert.NoError(t, logger.Sync())
}
