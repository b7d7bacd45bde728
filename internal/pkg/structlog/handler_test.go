package structlog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJSONHandler_AttrsAppendedToMessage проверяет что key-value атрибуты
// дописываются в поле message, не добавляя новых ключей в JSON.
func TestJSONHandler_AttrsAppendedToMessage(t *testing.T) {
	var buf bytes.Buffer
	h := newJSONHandler(&buf, NewIdentity("test", "attrs"), slog.LevelDebug)
	logger := slog.New(h)

	logger.Info("событие", "count", 3, "stage", "parse")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Len(t, parsed, 5, "формат имеет ровно пять ключей")
	assert.Contains(t, parsed["message"], "count=3")
	assert.Contains(t, parsed["message"], "stage=parse")
}

// TestJSONHandler_WithAttrs проверяет что постоянные атрибуты включаются
// в каждую запись.
func TestJSONHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := newJSONHandler(&buf, NewIdentity("test", "withattrs"), slog.LevelDebug)
	logger := slog.New(h).With("run_id", "r-42")

	logger.Info("первая")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Contains(t, parsed["message"], "run_id=r-42")
}

// TestJSONHandler_Enabled проверяет фильтрацию по уровню на стороне handler.
func TestJSONHandler_Enabled(t *testing.T) {
	h := newJSONHandler(&bytes.Buffer{}, NewIdentity("test", "enabled"), slog.LevelWarn)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

// TestJSONHandler_TimeRenderedInUTC проверяет перевод времени записи в UTC.
func TestJSONHandler_TimeRenderedInUTC(t *testing.T) {
	var buf bytes.Buffer
	h := newJSONHandler(&buf, NewIdentity("test", "utc"), slog.LevelDebug)

	// Запись с временем в явно не-UTC зоне.
	loc := time.FixedZone("UTC+7", 7*60*60)
	local := time.Date(2026, 8, 28, 17, 30, 0, 0, loc)
	rec := slog.NewRecord(local, slog.LevelInfo, "tz check", 0)
	require.NoError(t, h.Handle(context.Background(), rec))

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "2026-08-28 10:30:00", parsed["utc_time_stamp"])
}
