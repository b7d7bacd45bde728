package metrics

import "context"

// NopCollector — no-op реализация Collector.
// Используется когда метрики отключены (Config.Enabled = false).
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

// RecordLog — no-op, ничего не делает.
func (c *NopCollector) RecordLog(_, _, _ string) {}

// RecordAlert — no-op, ничего не делает.
func (c *NopCollector) RecordAlert(_, _ string, _ bool) {}

// Push — no-op, всегда возвращает nil.
func (c *NopCollector) Push(_ context.Context) error {
	return nil
}
