package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/ecur-data/structlog/internal/pkg/apperrors"
	"github.com/ecur-data/structlog/internal/pkg/logging"
	"github.com/ecur-data/structlog/internal/pkg/urlutil"
)

// HTTPClient абстрагирует http.Client для подмены в тестах.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxResponseBodySize — максимальный размер тела HTTP ответа для диагностики (1 KB).
const maxResponseBodySize = 1024

// WebhookPublisher реализует Publisher поверх HTTP POST.
// Альтернативный транспорт для окружений без NATS: подписчик на стороне
// webhook endpoint получает тот же payload с атрибутами.
type WebhookPublisher struct {
	url        string
	httpClient HTTPClient
	logger     logging.Logger
	hostname   string
}

// webhookEnvelope — JSON-конверт webhook-запроса: топик, тело алерта
// и параллельная карта атрибутов.
type webhookEnvelope struct {
	Topic      string               `json:"topic"`
	Message    json.RawMessage      `json:"message"`
	Attributes map[string]Attribute `json:"attributes"`
	Hostname   string               `json:"hostname,omitempty"`
}

// NewWebhookPublisher создаёт WebhookPublisher с указанной конфигурацией.
// Hostname кэшируется при создании для идентификации инстанса.
func NewWebhookPublisher(config Config, logger logging.Logger) (*WebhookPublisher, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	client := &http.Client{Timeout: config.Timeout}
	if !config.TLSVerify {
		logger.Warn("проверка TLS-сертификата транспорта отключена",
			"url", urlutil.MaskURL(config.URL),
		)
		client.Transport = insecureTransport()
	}

	return &WebhookPublisher{
		url:        config.URL,
		httpClient: client,
		logger:     logger,
		hostname:   hostname,
	}, nil
}

// SetHTTPClient устанавливает кастомный HTTPClient (для тестирования).
func (w *WebhookPublisher) SetHTTPClient(client HTTPClient) {
	w.httpClient = client
}

// Publish отправляет один HTTP POST с конвертом алерта.
// Ровно одна попытка: ошибки сети и не-2xx статусы возвращаются без retry.
func (w *WebhookPublisher) Publish(ctx context.Context, topic string, body []byte, attrs map[string]Attribute) error {
	envelope := webhookEnvelope{
		Topic:      topic,
		Message:    json.RawMessage(body),
		Attributes: attrs,
		Hostname:   w.hostname,
	}

	jsonBody, err := json.Marshal(envelope)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrNotifyPublish,
			"не удалось сериализовать webhook конверт", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(jsonBody))
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrNotifyPublish,
			"не удалось создать webhook запрос", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "structlog/1.0")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrNotifyPublish,
			"ошибка отправки webhook запроса", err)
	}
	defer resp.Body.Close()

	// Читаем ограниченный фрагмент тела для диагностики ответа транспорта.
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewAppError(apperrors.ErrNotifyPublish,
			fmt.Sprintf("webhook вернул HTTP %d: %s", resp.StatusCode, string(respBody)), nil)
	}

	w.logger.Info("алерт опубликован",
		"topic", topic,
		"url", urlutil.MaskURL(w.url),
		"status", resp.StatusCode,
		"response", string(respBody),
	)
	return nil
}

// Close ничего не освобождает — http.Client не требует явного закрытия.
func (w *WebhookPublisher) Close() {}

// insecureTransport возвращает http.RoundTripper без проверки сертификата.
func insecureTransport() http.RoundTripper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	if t.TLSClientConfig == nil {
		t.TLSClientConfig = &tls.Config{} //nolint:gosec // MinVersion по умолчанию
	}
	t.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec // явная настройка deployment-окружения
	return t
}
