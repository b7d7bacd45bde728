package notify

import (
	"context"
	"sync"

	"github.com/ecur-data/structlog/internal/pkg/logging"
)

// Dispatcher публикует alert payload в настроенный failure-топик.
//
// Транспортный клиент создаётся лениво при первой публикации и
// переиспользуется до конца жизни диспетчера (sync.Once — ровно одна
// инициализация и при конкурентных первых вызовах). Если топик не задан,
// Dispatch ничего не делает: клиент не создаётся вовсе.
//
// Семантика best-effort: одна попытка публикации, без retry и без
// отслеживания подтверждений. Ошибка возвращается вызывающему; фасад
// structlog изолирует её (логирует локально), чтобы сбой доставки
// уведомления не ломал само логирование.
type Dispatcher struct {
	config Config
	logger logging.Logger

	once         sync.Once
	publisher    Publisher
	initErr      error
	newPublisher func() (Publisher, error)
}

// NewDispatcher создаёт Dispatcher с указанной конфигурацией.
// Соединение с транспортом НЕ устанавливается до первого Dispatch.
func NewDispatcher(config Config, logger logging.Logger) *Dispatcher {
	d := &Dispatcher{
		config: config,
		logger: logger,
	}
	d.newPublisher = func() (Publisher, error) {
		return NewPublisher(config, logger)
	}
	return d
}

// SetPublisherFactory подменяет фабрику транспорта (для тестирования).
// Должна вызываться до первого Dispatch.
func (d *Dispatcher) SetPublisherFactory(f func() (Publisher, error)) {
	d.newPublisher = f
}

// Enabled возвращает true если диспетчеризация включена (топик задан).
func (d *Dispatcher) Enabled() bool {
	return d.config.Topic != ""
}

// Topic возвращает настроенный failure-топик.
func (d *Dispatcher) Topic() string {
	return d.config.Topic
}

// Dispatch публикует payload в failure-топик: одна best-effort попытка.
// При отключённой диспетчеризации (пустой топик) — no-op без ошибки.
func (d *Dispatcher) Dispatch(ctx context.Context, payload Payload) error {
	if !d.Enabled() {
		return nil
	}

	d.once.Do(func() {
		d.publisher, d.initErr = d.newPublisher()
	})
	if d.initErr != nil {
		return d.initErr
	}

	body, err := payload.Body()
	if err != nil {
		return err
	}

	timeout := d.config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return d.publisher.Publish(ctx, d.config.Topic, body, payload.Attributes())
}

// Close освобождает транспортный клиент, если он был создан.
func (d *Dispatcher) Close() {
	if d.publisher != nil {
		d.publisher.Close()
	}
}
