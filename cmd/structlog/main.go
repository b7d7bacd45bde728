// Package main содержит точку входа для приложения structlog.
// Приложение предназначено для пробной эмиссии структурированных логов
// и сквозной проверки диспетчеризации алертов.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ecur-data/structlog/internal/app"
	"github.com/ecur-data/structlog/internal/config"
	"github.com/ecur-data/structlog/internal/constants"

	// Команды: blank import для self-registration через init()
	_ "github.com/ecur-data/structlog/internal/command/handlers/alert"
	_ "github.com/ecur-data/structlog/internal/command/handlers/emit"
	_ "github.com/ecur-data/structlog/internal/command/handlers/help"
	_ "github.com/ecur-data/structlog/internal/command/handlers/version"
)

func main() {
	os.Exit(run())
}

// run содержит основную логику приложения и возвращает exit code.
// Вынесена из main() чтобы os.Exit() вызывался ПОСЛЕ отработки defer-ов.
func run() int {
	cfg, err := config.MustLoad()
	if err != nil || cfg == nil {
		fmt.Fprintf(os.Stderr, "Не удалось загрузить конфигурацию приложения: %v\n", err)
		return constants.ExitConfigError
	}

	cfg.Logger.Debug("Информация о сборке", "version", constants.Version)

	return app.New(cfg).Run(context.Background(), os.Stdout)
}
