// Package app содержит композиционный корень приложения structlog:
// разрешение команды через реестр, выполнение и отправку метрик.
package app

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/ecur-data/structlog/internal/command"
	"github.com/ecur-data/structlog/internal/config"
	"github.com/ecur-data/structlog/internal/constants"
	"github.com/ecur-data/structlog/internal/pkg/metrics"
)

// App связывает конфигурацию, реестр команд и сборщик метрик.
type App struct {
	cfg       *config.Config
	collector metrics.Collector
}

// New создаёт App: инициализирует сборщик метрик по конфигурации.
// Ошибка инициализации метрик не фатальна — приложение продолжает
// работу с NopCollector.
func New(cfg *config.Config) *App {
	collector, err := metrics.NewCollector(cfg.AppConfig.Metrics, cfg.Logger)
	if err != nil {
		cfg.Logger.Warn("метрики отключены из-за ошибки конфигурации",
			"error", err.Error(),
		)
		collector = metrics.NewNopCollector()
	}

	return &App{
		cfg:       cfg,
		collector: collector,
	}
}

// Collector возвращает сборщик метрик приложения.
func (a *App) Collector() metrics.Collector {
	return a.collector
}

// Run разрешает команду через реестр и выполняет её, записывая результат
// в out. Пустая команда выполняется как help. Возвращает код завершения.
func (a *App) Run(ctx context.Context, out io.Writer) int {
	l := a.cfg.Logger
	name := strings.TrimSpace(a.cfg.Command)
	if name == "" {
		name = constants.ActHelp
	}

	handler, ok := command.Get(name)
	if !ok {
		l.Error("неизвестная команда",
			"command", name,
			"available", strings.Join(command.Names(), ", "),
			constants.MsgErrProcessing, constants.MsgAppExit,
		)
		return constants.ExitUnknownCommand
	}

	l.Debug("выполнение команды", "command", name)
	start := time.Now()
	execErr := handler.Execute(ctx, a.cfg, out)

	// Ошибки push логируются внутри, не критичны
	_ = a.collector.Push(ctx)

	if execErr != nil {
		l.Error("ошибка выполнения команды",
			"command", name,
			"duration", time.Since(start).String(),
			"error", execErr.Error(),
			constants.MsgErrProcessing, constants.MsgAppExit,
		)
		return constants.ExitCommandError
	}

	l.Debug("команда выполнена", "command", name, "duration", time.Since(start).String())
	return constants.ExitOK
}
