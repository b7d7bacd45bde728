package metrics

import (
	"net/url"
	"time"
)

// Config содержит настройки для сбора и отправки Prometheus метрик.
type Config struct {
	// Enabled — включены ли метрики (по умолчанию false).
	Enabled bool `yaml:"enabled" env:"SL_METRICS_ENABLED" env-default:"false"`

	// PushgatewayURL — URL Prometheus Pushgateway.
	// Пример: "http://pushgateway:9091"
	PushgatewayURL string `yaml:"pushgatewayUrl" env:"SL_METRICS_PUSHGATEWAY_URL"`

	// JobName — имя job для группировки метрик.
	JobName string `yaml:"jobName" env:"SL_METRICS_JOB" env-default:"structlog"`

	// Timeout — таймаут отправки метрик.
	Timeout time.Duration `yaml:"timeout" env:"SL_METRICS_TIMEOUT" env-default:"10s"`

	// InstanceLabel — значение label instance. Пустое — hostname.
	InstanceLabel string `yaml:"instanceLabel" env:"SL_METRICS_INSTANCE"`
}

// DefaultConfig возвращает конфигурацию по умолчанию: метрики отключены.
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		PushgatewayURL: "",
		JobName:        "structlog",
		Timeout:        10 * time.Second,
		InstanceLabel:  "",
	}
}

// Validate проверяет корректность конфигурации при включённых метриках.
func (c Config) Validate() error {
	if c.PushgatewayURL == "" {
		return ErrPushgatewayURLRequired
	}
	u, err := url.Parse(c.PushgatewayURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrPushgatewayURLInvalid
	}
	if c.JobName == "" {
		return ErrJobNameRequired
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
