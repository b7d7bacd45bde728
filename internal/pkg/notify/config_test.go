package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecur-data/structlog/internal/pkg/logging"
)

// TestConfigFromEnv_Defaults проверяет значения по умолчанию при
// отсутствии переменных окружения: диспетчеризация отключена.
func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("SNS_FAILURE", "")
	t.Setenv("SNS_TRANSPORT", "")
	t.Setenv("SNS_URL", "")

	cfg := ConfigFromEnv()
	assert.Empty(t, cfg.Topic)
	assert.Equal(t, TransportNATS, cfg.Transport)
	assert.Equal(t, DefaultURL, cfg.URL)
	assert.True(t, cfg.TLSVerify)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

// TestConfigFromEnv_ReadsVariables проверяет чтение настроек транспорта
// из окружения, включая топик из SNS_FAILURE.
func TestConfigFromEnv_ReadsVariables(t *testing.T) {
	t.Setenv("SNS_FAILURE", "etl-failures")
	t.Setenv("SNS_TRANSPORT", "webhook")
	t.Setenv("SNS_URL", "https://alerts.example.com/hook")
	t.Setenv("SNS_TLS_VERIFY", "false")
	t.Setenv("SNS_TIMEOUT", "10s")

	cfg := ConfigFromEnv()
	assert.Equal(t, "etl-failures", cfg.Topic)
	assert.Equal(t, TransportWebhook, cfg.Transport)
	assert.Equal(t, "https://alerts.example.com/hook", cfg.URL)
	assert.False(t, cfg.TLSVerify)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

// TestConfig_Validate проверяет правила валидации конфигурации.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "конфигурация по умолчанию корректна",
			mutate: func(c *Config) {},
		},
		{
			name:    "неизвестный транспорт",
			mutate:  func(c *Config) { c.Transport = "carrier-pigeon" },
			wantErr: "CONFIG.VALIDATION_FAILED",
		},
		{
			name:    "пустой URL при активном транспорте",
			mutate:  func(c *Config) { c.URL = "" },
			wantErr: "CONFIG.VALIDATION_FAILED",
		},
		{
			name: "пустой URL допустим при транспорте none",
			mutate: func(c *Config) {
				c.Transport = TransportNone
				c.URL = ""
			},
		},
		{
			name:    "отрицательный таймаут",
			mutate:  func(c *Config) { c.Timeout = -time.Second },
			wantErr: "CONFIG.VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestNewPublisher_SelectsTransport проверяет выбор реализации Publisher
// по полю Transport.
func TestNewPublisher_SelectsTransport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transport = TransportNone

	log := logging.NewNopLogger()

	pub, err := NewPublisher(cfg, log)
	require.NoError(t, err)
	assert.IsType(t, &NopPublisher{}, pub)

	cfg.Transport = TransportWebhook
	cfg.URL = "https://alerts.example.com/hook"
	pub, err = NewPublisher(cfg, log)
	require.NoError(t, err)
	assert.IsType(t, &WebhookPublisher{}, pub)

	cfg.Transport = "carrier-pigeon"
	_, err = NewPublisher(cfg, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG.VALIDATION_FAILED")
}
