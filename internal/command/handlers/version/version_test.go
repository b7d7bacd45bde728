package version

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecur-data/structlog/internal/config"
)

// TestHandler_Execute_JSON проверяет JSON-вывод информации о версии.
func TestHandler_Execute_JSON(t *testing.T) {
	h := &Handler{}
	cfg := &config.Config{OutputFormat: "json"}

	var out bytes.Buffer
	require.NoError(t, h.Execute(context.Background(), cfg, &out))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "success", result["status"])
	assert.Equal(t, "version", result["command"])

	data, ok := result["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["version"])
	assert.Equal(t, runtime.Version(), data["go_version"])
	assert.Equal(t, runtime.GOOS, data["os"])
	assert.Equal(t, runtime.GOARCH, data["arch"])
}

// TestHandler_Execute_NilConfig проверяет что handler работает без
// конфигурации (fallback на текстовый формат).
func TestHandler_Execute_NilConfig(t *testing.T) {
	h := &Handler{}

	var out bytes.Buffer
	require.NoError(t, h.Execute(context.Background(), nil, &out))
	assert.Contains(t, out.String(), "version: success")
}
