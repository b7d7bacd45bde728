package notify

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ecur-data/structlog/internal/pkg/apperrors"
)

// Поддерживаемые транспорты уведомлений.
const (
	// TransportNATS — публикация в NATS топик (основной транспорт).
	TransportNATS = "nats"
	// TransportWebhook — HTTP POST на webhook endpoint.
	TransportWebhook = "webhook"
	// TransportNone — транспорт отключён, используется NopPublisher.
	TransportNone = "none"
)

// DefaultTimeout ограничивает время одной публикации.
// Транспорт без собственного таймаута блокировал бы вызов логирования
// на неопределённое время.
const DefaultTimeout = 5 * time.Second

// DefaultURL — адрес NATS сервера по умолчанию.
const DefaultURL = "nats://127.0.0.1:4222"

// Config содержит настройки диспетчера уведомлений.
//
// Topic читается из SNS_FAILURE один раз при конструировании фасада.
// Отсутствие переменной отключает диспетчеризацию полностью — это
// штатный режим, не ошибка.
type Config struct {
	// Topic — имя топика для failure-уведомлений.
	// Пустое значение отключает диспетчеризацию.
	Topic string `yaml:"topic" env:"SNS_FAILURE"`

	// Transport — транспорт доставки: "nats", "webhook" или "none".
	Transport string `yaml:"transport" env:"SNS_TRANSPORT" env-default:"nats"`

	// URL — адрес сервера транспорта (NATS URL или webhook endpoint).
	URL string `yaml:"url" env:"SNS_URL" env-default:"nats://127.0.0.1:4222"`

	// TLSVerify определяет проверять ли TLS-сертификат транспорта.
	// Явное поле конфигурации вместо определения ОС в рантайме;
	// решается один раз при старте deployment-окружением.
	TLSVerify bool `yaml:"tlsVerify" env:"SNS_TLS_VERIFY" env-default:"true"`

	// Timeout ограничивает длительность одной публикации.
	// По умолчанию: 5s.
	Timeout time.Duration `yaml:"timeout" env:"SNS_TIMEOUT" env-default:"5s"`
}

// DefaultConfig возвращает конфигурацию по умолчанию: диспетчеризация
// отключена (пустой topic), транспорт NATS, проверка TLS включена.
func DefaultConfig() Config {
	return Config{
		Transport: TransportNATS,
		URL:       DefaultURL,
		TLSVerify: true,
		Timeout:   DefaultTimeout,
	}
}

// ConfigFromEnv читает конфигурацию из переменных окружения.
// Ошибка чтения не фатальна — используются значения по умолчанию.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Validate проверяет корректность конфигурации.
// Вызывается фабрикой только когда Topic задан.
func (c Config) Validate() error {
	switch c.Transport {
	case TransportNATS, TransportWebhook, TransportNone, "":
	default:
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			"неизвестный транспорт уведомлений: "+c.Transport, nil)
	}
	if c.URL == "" && c.Transport != TransportNone {
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			"не задан URL транспорта уведомлений", nil)
	}
	if c.Timeout < 0 {
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			"таймаут публикации должен быть неотрицательным", nil)
	}
	return nil
}
