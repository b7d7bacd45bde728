// Package logging предоставляет фабрику обычных (неструктурированных) логгеров
// с выводом в консоль и/или файл.
//
// Структурированный JSON-логгер с диспетчеризацией алертов находится
// в пакете structlog и использует этот пакет только как внутренний логгер
// для собственной диагностики.
package logging

// Logger определяет интерфейс для логирования.
// Реализации: SlogAdapter (использует slog из stdlib) и NopLogger.
//
// Все методы принимают сообщение и опциональные key-value пары:
//
//	logger.Info("алерт отправлен", "topic", topic, "duration_ms", 150)
//
// ВАЖНО: Logger пишет ТОЛЬКО в stderr или файл, никогда в stdout.
// stdout зарезервирован под результаты команд (пакет output).
type Logger interface {
	// Debug записывает сообщение уровня DEBUG.
	// Используется для детальной диагностики.
	Debug(msg string, args ...any)

	// Info записывает сообщение уровня INFO.
	// Используется для значимых событий (инициализация sink, успешный publish).
	Info(msg string, args ...any)

	// Warn записывает сообщение уровня WARN.
	// Используется для recoverable issues (fallback конфигурации, деградация).
	Warn(msg string, args ...any)

	// Error записывает сообщение уровня ERROR.
	// Используется для ошибок требующих внимания.
	Error(msg string, args ...any)

	// With возвращает новый Logger с добавленными атрибутами.
	// Атрибуты будут включены во все последующие записи.
	//
	//	logger.With("team", team).Info("фасад создан")
	With(args ...any) Logger
}
