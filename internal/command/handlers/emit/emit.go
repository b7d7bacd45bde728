// Package emit реализует команду emit: пробную запись структурированного
// лога для проверки пайплайна логирования.
package emit

import (
	"context"
	"io"
	"time"

	"github.com/ecur-data/structlog/internal/command"
	"github.com/ecur-data/structlog/internal/config"
	"github.com/ecur-data/structlog/internal/constants"
	"github.com/ecur-data/structlog/internal/pkg/logging"
	"github.com/ecur-data/structlog/internal/pkg/output"
	"github.com/ecur-data/structlog/internal/pkg/structlog"
)

func init() {
	command.Register(&Handler{})
}

// DefaultModule — имя модуля пробной записи если SL_MODULE не задан.
const DefaultModule = "probe"

// DefaultMessage — текст пробной записи если SL_MESSAGE не задан.
const DefaultMessage = "пробная запись structlog"

// Data содержит параметры выполненной пробной записи.
type Data struct {
	// Team — нормализованное имя команды.
	Team string `json:"team"`
	// Module — нормализованное имя модуля.
	Module string `json:"module"`
	// Level — уровень записи.
	Level string `json:"level"`
	// Message — текст записи.
	Message string `json:"message"`
}

// Handler обрабатывает команду emit.
type Handler struct{}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActEmit
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Пробная запись структурированного лога"
}

// Execute создаёт фасад structlog и выполняет одну запись на заданном
// уровне. Запись уходит в stderr, результат команды — в out.
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
	level := cfg.Level
	if level == "" {
		level = logging.LevelInfo
	}

	opts := []structlog.Option{
		structlog.WithDiagnosticLogger(cfg.Logger),
	}
	if cfg.Team != "" {
		opts = append(opts, structlog.WithTeam(cfg.Team))
	}

	logger, err := structlog.New(module, opts...)
	if err != nil {
		return err
	}

	switch level {
	case logging.LevelDebug:
		logger.Debug(message)
	case logging.LevelWarning:
		logger.Warning(message)
	case logging.LevelError:
		logger.Error(message)
	case logging.LevelCritical:
		logger.Critical(message)
	default:
		logger.Info(message)
	}

	result := output.NewSuccessResult(constants.ActEmit, Data{
		Team:    logger.Identity().Team(),
		Module:  logger.Identity().Module(),
		Level:   level,
		Message: message,
	})
	result.Metadata = &output.Metadata{
		Version:    constants.Version,
		DurationMs: time.Since(start).Milliseconds(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	return output.NewWriter(cfg.OutputFormat).Write(out, result)
}
