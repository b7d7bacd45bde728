package structlog

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ecur-data/structlog/internal/pkg/apperrors"
	"github.com/ecur-data/structlog/internal/pkg/logging"
	"github.com/ecur-data/structlog/internal/pkg/metrics"
	"github.com/ecur-data/structlog/internal/pkg/notify"
)

// Dispatcher — граница диспетчера алертов для фасада.
// Production реализация: *notify.Dispatcher.
type Dispatcher interface {
	// Enabled возвращает true если failure-топик настроен.
	Enabled() bool

	// Dispatch публикует payload: одна best-effort попытка.
	Dispatch(ctx context.Context, payload notify.Payload) error
}

// Logger — фасад структурированного логирования, привязанный к одному
// Identity. Все уровневые методы пишут JSON-запись в зарегистрированный
// sink и никогда не возвращают ошибку. Exception дополнительно публикует
// alert payload через диспетчер, если failure-топик настроен.
//
// Один Logger рассчитан на последовательные вызовы; sink и диспетчер
// при этом безопасны для конкурентного использования.
type Logger struct {
	identity   Identity
	sink       *Sink
	dispatcher Dispatcher
	diag       logging.Logger
	collector  metrics.Collector
}

type options struct {
	team          string
	level         slog.Level
	registry      *Registry
	writer        io.Writer
	dispatcher    Dispatcher
	dispatcherSet bool
	diag          logging.Logger
	collector     metrics.Collector
}

// Option настраивает создаваемый фасад.
type Option func(*options)

// WithTeam задаёт команду (по умолчанию "ecur").
func WithTeam(team string) Option {
	return func(o *options) { o.team = team }
}

// WithLevel задаёт минимальный уровень sink по имени
// (debug, info, warning, error, critical). Неизвестное имя молча
// приводится к debug — политика fallback-on-unknown.
func WithLevel(name string) Option {
	return func(o *options) { o.level = logging.ParseLevel(name) }
}

// WithRegistry задаёт реестр sink вместо процессного по умолчанию.
// Композиционный корень приложения передаёт сюда собственный реестр.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithWriter задаёт writer консольного sink (по умолчанию os.Stderr).
// Действует только при первой регистрации Identity в реестре.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// WithDispatcher задаёт диспетчер алертов вместо создаваемого из окружения.
// nil отключает диспетчеризацию полностью.
func WithDispatcher(d Dispatcher) Option {
	return func(o *options) {
		o.dispatcher = d
		o.dispatcherSet = true
	}
}

// WithDiagnosticLogger задаёт логгер внутренней диагностики фасада
// (сбои доставки алертов). Диагностика не проходит через структурированный
// sink — логирование-о-логировании не рекурсивно.
func WithDiagnosticLogger(l logging.Logger) Option {
	return func(o *options) { o.diag = l }
}

// WithCollector задаёт сборщик метрик (по умолчанию NopCollector).
func WithCollector(c metrics.Collector) Option {
	return func(o *options) { o.collector = c }
}

// New создаёт фасад для модуля. Team и module приводятся к нижнему
// регистру; failure-топик читается из окружения (SNS_FAILURE) один раз,
// здесь. Повторное конструирование с той же парой (team, module)
// переиспользует существующий sink — строки вывода не дублируются.
//
// Ошибка разрешения имени или регистрации sink фатальна для
// конструирования: возвращается ошибка, деградации нет.
func New(module string, opts ...Option) (*Logger, error) {
	o := options{
		team:      DefaultTeam,
		level:     slog.LevelDebug,
		registry:  DefaultRegistry(),
		writer:    os.Stderr,
		collector: metrics.NewNopCollector(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if module == "" {
		return nil, apperrors.NewAppError(apperrors.ErrLoggingRegistry,
			"имя модуля не задано", nil)
	}

	identity := NewIdentity(o.team, module)

	if o.diag == nil {
		o.diag = logging.NewLoggerWithWriter(logging.Config{
			Name:          identity.Key(),
			ConsoleFormat: logging.FormatText,
			ConsoleLevel:  logging.LevelInfo,
		}, os.Stderr)
	}

	if !o.dispatcherSet {
		o.dispatcher = notify.NewDispatcher(notify.ConfigFromEnv(), o.diag)
	}

	sink := o.registry.GetOrCreate(identity, o.level, o.writer)

	return &Logger{
		identity:   identity,
		sink:       sink,
		dispatcher: o.dispatcher,
		diag:       o.diag,
		collector:  o.collector,
	}, nil
}

// Identity возвращает пару (team, module) фасада.
func (l *Logger) Identity() Identity {
	return l.identity
}

// Debug записывает сообщение с message_type=DEBUG.
func (l *Logger) Debug(msg string, args ...any) {
	l.emit(slog.LevelDebug, msg, args...)
}

// Info записывает сообщение с message_type=INFO.
func (l *Logger) Info(msg string, args ...any) {
	l.emit(slog.LevelInfo, msg, args...)
}

// Status записывает сообщение с message_type=INFO (алиас Info).
func (l *Logger) Status(msg string, args ...any) {
	l.emit(slog.LevelInfo, msg, args...)
}

// Warning записывает сообщение с message_type=WARNING.
func (l *Logger) Warning(msg string, args ...any) {
	l.emit(slog.LevelWarn, msg, args...)
}

// Error записывает сообщение с message_type=ERROR.
// Диспетчеризация алерта НЕ выполняется: не каждая ошибка достойна
// алерта, только явные exception-события.
func (l *Logger) Error(msg string, args ...any) {
	l.emit(slog.LevelError, msg, args...)
}

// Critical записывает сообщение с message_type=CRITICAL.
func (l *Logger) Critical(msg string, args ...any) {
	l.emit(logging.CriticalLevel, msg, args...)
}

// ExceptionOption настраивает один вызов Exception.
type ExceptionOption func(*exceptionOptions)

type exceptionOptions struct {
	destination string
	err         error
	args        []any
}

// WithDestination задаёт назначение алерта (по умолчанию "developer").
func WithDestination(destination string) ExceptionOption {
	return func(o *exceptionOptions) { o.destination = destination }
}

// WithError прикладывает ошибку: её стек попадает в traceback алерта,
// текст — в атрибут error записи лога.
func WithError(err error) ExceptionOption {
	return func(o *exceptionOptions) { o.err = err }
}

// WithArgs добавляет key-value атрибуты к записи лога.
func WithArgs(args ...any) ExceptionOption {
	return func(o *exceptionOptions) { o.args = args }
}

// Exception записывает сообщение с message_type=ERROR и, если
// failure-топик настроен, публикует обогащённый alert payload
// (ровно одна попытка) с захваченным стеком и назначением.
//
// Сбой доставки алерта изолируется: он логируется диагностическим
// логгером, запись в sink выполняется в любом случае. Метод никогда
// не паникует и не возвращает ошибку.
func (l *Logger) Exception(msg string, opts ...ExceptionOption) {
	o := exceptionOptions{destination: notify.DefaultDestination}
	for _, opt := range opts {
		opt(&o)
	}

	if l.dispatcher != nil && l.dispatcher.Enabled() {
		payload := notify.NewPayload(
			l.identity.Team(),
			l.identity.Module(),
			msg,
			o.destination,
			notify.Traceback(o.err),
		)
		if err := l.dispatcher.Dispatch(context.Background(), payload); err != nil {
			l.diag.Error("не удалось опубликовать алерт",
				"module", l.identity.Key(),
				"destination", o.destination,
				"error", err.Error(),
			)
			l.collector.RecordAlert(l.identity.Team(), l.identity.Module(), false)
		} else {
			l.collector.RecordAlert(l.identity.Team(), l.identity.Module(), true)
		}
	}

	args := o.args
	if o.err != nil {
		args = append(args, "error", o.err.Error())
	}
	l.emit(slog.LevelError, msg, args...)
}

// emit пишет запись в sink и инкрементирует счётчик записей.
// Ошибки handler поглощаются slog — уровневые методы никогда не падают.
func (l *Logger) emit(level slog.Level, msg string, args ...any) {
	l.sink.logger.Log(context.Background(), level, msg, args...)
	l.collector.RecordLog(l.identity.Team(), l.identity.Module(), logging.LevelName(level))
}
