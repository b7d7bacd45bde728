// Package metrics предоставляет интерфейсы и реализации для сбора и отправки
// операционных метрик логирования в Prometheus Pushgateway.
//
// Пакет следует паттернам проекта:
//   - Interface Segregation: Collector interface для абстракции
//   - Factory pattern: NewCollector выбирает реализацию на основе конфигурации
//   - Graceful degradation: NopCollector при отключённых метриках
package metrics

import "context"

// Collector определяет интерфейс для сбора метрик логирования.
// Реализации: PrometheusCollector (активный) и NopCollector (no-op).
type Collector interface {
	// RecordLog записывает факт эмиссии одной записи лога.
	RecordLog(team, module, level string)

	// RecordAlert записывает результат публикации алерта.
	// success — принял ли транспорт сообщение.
	RecordAlert(team, module string, success bool)

	// Push отправляет метрики в Pushgateway.
	// Возвращает nil даже при ошибке — ошибки логируются внутри реализации;
	// сбой доставки метрик не должен влиять на логирование.
	Push(ctx context.Context) error
}
