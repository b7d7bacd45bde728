package notify

import (
	"context"
	"crypto/tls"

	"github.com/nats-io/nats.go"

	"github.com/ecur-data/structlog/internal/pkg/apperrors"
	"github.com/ecur-data/structlog/internal/pkg/logging"
	"github.com/ecur-data/structlog/internal/pkg/urlutil"
)

// NATSPublisher реализует Publisher поверх NATS.
// Атрибуты сообщения передаются как заголовки: для каждого атрибута
// пишется пара заголовков <key> и <key>-data-type.
type NATSPublisher struct {
	conn   *nats.Conn
	logger logging.Logger
}

// NewNATSPublisher устанавливает соединение с NATS сервером.
// При TLSVerify=false проверка сертификата отключается с предупреждением
// в лог — режим для стендов с self-signed сертификатами.
func NewNATSPublisher(config Config, logger logging.Logger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("structlog"),
		nats.Timeout(config.Timeout),
		nats.RetryOnFailedConnect(false),
	}

	if !config.TLSVerify {
		logger.Warn("проверка TLS-сертификата транспорта отключена",
			"url", urlutil.MaskURL(config.URL),
		)
		opts = append(opts, nats.Secure(&tls.Config{InsecureSkipVerify: true})) //nolint:gosec // явная настройка deployment-окружения
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotifyConnect,
			"не удалось подключиться к NATS", err)
	}

	return &NATSPublisher{conn: conn, logger: logger}, nil
}

// Publish публикует сообщение в топик. Ровно одна попытка: publish + flush,
// без retry. Flush ограничен ctx — подтверждает что сервер принял сообщение.
func (p *NATSPublisher) Publish(ctx context.Context, topic string, body []byte, attrs map[string]Attribute) error {
	msg := nats.NewMsg(topic)
	msg.Data = body
	for key, attr := range attrs {
		msg.Header.Set(key, attr.StringValue)
		msg.Header.Set(key+"-data-type", attr.DataType)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return apperrors.NewAppError(apperrors.ErrNotifyPublish,
			"не удалось опубликовать сообщение в топик "+topic, err)
	}

	if err := p.conn.FlushWithContext(ctx); err != nil {
		return apperrors.NewAppError(apperrors.ErrNotifyPublish,
			"сервер не подтвердил приём сообщения в топик "+topic, err)
	}

	// Диагностика "ответа" транспорта: у fire-and-forget publish нет тела
	// ответа, логируем состояние соединения.
	p.logger.Info("алерт опубликован",
		"topic", topic,
		"server", urlutil.MaskURL(p.conn.ConnectedUrl()),
		"bytes", len(body),
	)
	return nil
}

// Close закрывает соединение с NATS.
func (p *NATSPublisher) Close() {
	if p.conn != nil && !p.conn.IsClosed() {
		p.conn.Close()
	}
}
