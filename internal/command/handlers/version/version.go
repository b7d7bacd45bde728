// Package version реализует команду version для вывода информации о сборке.
package version

import (
	"context"
	"io"
	"runtime"

	"github.com/ecur-data/structlog/internal/command"
	"github.com/ecur-data/structlog/internal/config"
	"github.com/ecur-data/structlog/internal/constants"
	"github.com/ecur-data/structlog/internal/pkg/output"
)

func init() {
	command.Register(&Handler{})
}

// Data содержит информацию о версии и окружении сборки.
type Data struct {
	// Version — версия приложения.
	Version string `json:"version"`
	// GoVersion — версия Go, которой собрано приложение.
	GoVersion string `json:"go_version"`
	// OS — операционная система.
	OS string `json:"os"`
	// Arch — архитектура процессора.
	Arch string `json:"arch"`
}

// Handler обрабатывает команду version.
type Handler struct{}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActVersion
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Вывод информации о версии"
}

// Execute выводит информацию о версии в заданном формате.
func (h *Handler) Execute(_ context.Context, cfg *config.Config, out io.Writer) error {
	result := output.NewSuccessResult(constants.ActVersion, Data{
		Version:   constants.Version,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	})

	format := ""
	if cfg != nil {
		format = cfg.OutputFormat
	}
	return output.NewWriter(format).Write(out, result)
}
