package notify

import (
	"github.com/ecur-data/structlog/internal/pkg/logging"
)

// NewPublisher создаёт Publisher на основе конфигурации.
// При transport="none" возвращает NopPublisher, иначе NATS или webhook
// транспорт. Неизвестный транспорт — ошибка конфигурации.
func NewPublisher(config Config, logger logging.Logger) (Publisher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Transport {
	case TransportNone:
		return NewNopPublisher(), nil
	case TransportWebhook:
		return NewWebhookPublisher(config, logger)
	default:
		// TransportNATS и пустое значение — основной транспорт.
		return NewNATSPublisher(config, logger)
	}
}
