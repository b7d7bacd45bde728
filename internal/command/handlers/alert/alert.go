// Package alert реализует команду alert: пробную диспетчеризацию
// exception-алерта для сквозной проверки транспорта уведомлений.
package alert

import (
	"context"
	"io"
	"time"

	"github.com/ecur-data/structlog/internal/command"
	"github.com/ecur-data/structlog/internal/config"
	"github.com/ecur-data/structlog/internal/constants"
	"github.com/ecur-data/structlog/internal/pkg/notify"
	"github.com/ecur-data/structlog/internal/pkg/output"
	"github.com/ecur-data/structlog/internal/pkg/structlog"
)

func init() {
	command.Register(&Handler{})
}

// DefaultModule — имя модуля пробного алерта если SL_MODULE не задан.
const DefaultModule = "probe"

// DefaultMessage — текст пробного алерта если SL_MESSAGE не задан.
const DefaultMessage = "пробный exception-алерт structlog"

// Data содержит параметры выполненной пробной диспетчеризации.
type Data struct {
	// Team — нормализованное имя команды.
	Team string `json:"team"`
	// Module — нормализованное имя модуля.
	Module string `json:"module"`
	// Destination — назначение алерта.
	Destination string `json:"destination"`
	// Topic — failure-топик, пустой если диспетчеризация отключена.
	Topic string `json:"topic,omitempty"`
	// Dispatched — true если алерт был опубликован.
	Dispatched bool `json:"dispatched"`
	// Message — текст алерта.
	Message string `json:"message"`
}

// Handler обрабатывает команду alert.
type Handler struct{}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActAlert
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Пробная диспетчеризация exception-алерта"
}

// Execute создаёт фасад structlog с диспетчером из конфигурации и
// выполняет Exception. Без настроенного топика (SNS_FAILURE) запись
// в лог выполняется, публикация — нет.
func (h *Handler) Execute(_ context.Context, cfg *config.Config, out io.Writer) error {
	start := time.Now()

	module := cfg.Module
	if module == "" {
		module = DefaultModule
	}
	message := cfg.Message
	if message == "" {
		message = DefaultMessage
	}
	destination := cfg.Destination
	if destination == "" {
		destination = notify.DefaultDestination
	}

	dispatcher := notify.NewDispatcher(cfg.AppConfig.Notify, cfg.Logger)
	defer dispatcher.Close()

	opts := []structlog.Option{
		structlog.WithDispatcher(dispatcher),
		structlog.WithDiagnosticLogger(cfg.Logger),
	}
	if cfg.Team != "" {
		opts = append(opts, structlog.WithTeam(cfg.Team))
	}

	logger, err := structlog.New(module, opts...)
	if err != nil {
		return err
	}

	logger.Exception(message, structlog.WithDestination(destination))

	result := output.NewSuccessResult(constants.ActAlert, Data{
		Team:        logger.Identity().Team(),
		Module:      logger.Identity().Module(),
		Destination: destination,
		Topic:       dispatcher.Topic(),
		Dispatched:  dispatcher.Enabled(),
		Message:     message,
	})
	result.Metadata = &output.Metadata{
		Version:    constants.Version,
		DurationMs: time.Since(start).Milliseconds(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	return output.NewWriter(cfg.OutputFormat).Write(out, result)
}
