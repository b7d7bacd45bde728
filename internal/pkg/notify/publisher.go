package notify

import "context"

// Publisher — транспортная граница диспетчера: одна публикация
// сообщения с атрибутами в именованный топик.
//
// Контракт: ровно одна попытка на вызов, без retry. Таймаут передаётся
// через ctx. Содержимое "ответа" транспорта контрактом не определено —
// реализации логируют его самостоятельно для диагностики.
type Publisher interface {
	// Publish публикует тело сообщения с атрибутами в топик.
	Publish(ctx context.Context, topic string, body []byte, attrs map[string]Attribute) error

	// Close освобождает ресурсы транспорта.
	Close()
}

// NopPublisher — реализация Publisher, которая ничего не делает.
// Используется при transport="none" и в тестах.
type NopPublisher struct{}

// NewNopPublisher создаёт Publisher, игнорирующий все публикации.
func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

// Publish ничего не делает, возвращает nil.
func (n *NopPublisher) Publish(_ context.Context, _ string, _ []byte, _ map[string]Attribute) error {
	return nil
}

// Close ничего не делает.
func (n *NopPublisher) Close() {}
