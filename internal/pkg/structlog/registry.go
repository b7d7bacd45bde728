package structlog

import (
	"io"
	"log/slog"
	"sync"
)

// Sink — зарегистрированный приёмник записей одного Identity:
// slog.Logger поверх jsonHandler, привязанного к writer.
type Sink struct {
	logger *slog.Logger
}

// Registry — реестр именованных sink с ключом "{team}.{module}".
//
// Явный объект вместо скрытого process-wide состояния: композиционный
// корень приложения владеет реестром и передаёт его фасадам. Для
// библиотечного использования существует DefaultRegistry.
//
// GetOrCreate — единственная мутирующая операция, защищена мьютексом
// и безопасна при конкурентной первой регистрации одного Identity.
type Registry struct {
	mu    sync.Mutex
	sinks map[string]*Sink
}

// NewRegistry создаёт пустой реестр.
func NewRegistry() *Registry {
	return &Registry{sinks: make(map[string]*Sink)}
}

// defaultRegistry обслуживает фасады, созданные без WithRegistry.
var defaultRegistry = NewRegistry()

// DefaultRegistry возвращает процессный реестр по умолчанию.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// GetOrCreate возвращает sink для identity, создавая его при первом обращении.
//
// Идемпотентность: повторный вызов с тем же identity возвращает уже
// существующий sink, второй handler НЕ подключается — повторное
// конструирование фасада с тем же именем не дублирует строки вывода.
// Параметры level и w действуют только при первом создании.
func (r *Registry) GetOrCreate(identity Identity, level slog.Level, w io.Writer) *Sink {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := identity.Key()
	if s, ok := r.sinks[key]; ok {
		return s
	}

	s := &Sink{logger: slog.New(newJSONHandler(w, identity, level))}
	r.sinks[key] = s
	return s
}

// Len возвращает количество зарегистрированных sink.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sinks)
}
