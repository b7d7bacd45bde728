package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/ecur-data/structlog/internal/constants"
	"github.com/ecur-data/structlog/internal/pkg/apperrors"
	"github.com/ecur-data/structlog/internal/pkg/logging"
	"github.com/ecur-data/structlog/internal/pkg/metrics"
	"github.com/ecur-data/structlog/internal/pkg/notify"
)

// GetInputParams получает параметры запуска из переменных окружения.
// Возвращает:
//   - *InputParams: указатель на структуру с параметрами запуска
func GetInputParams() *InputParams {
	inputParams := &InputParams{}
	// Загружаем переменные среды в структуру
	if err := cleanenv.ReadEnv(inputParams); err != nil {
		return nil
	}

	return inputParams
}

// MustLoad загружает конфигурацию приложения из окружения и yaml-файла.
// Инициализирует диагностический логгер и собирает секции AppConfig.
// Возвращает:
//   - *Config: указатель на загруженную конфигурацию приложения
//   - error: ошибка загрузки конфигурации или nil при успехе
func MustLoad() (*Config, error) {
	inputParams := GetInputParams()
	if inputParams == nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
			"не удалось прочитать переменные окружения", nil)
	}

	cfg := &Config{
		Command:      inputParams.Command,
		Module:       inputParams.Module,
		Team:         inputParams.Team,
		Message:      inputParams.Message,
		Level:        inputParams.Level,
		Destination:  inputParams.Destination,
		OutputFormat: inputParams.OutputFormat,
	}

	// Загрузка конфигурации приложения из yaml-файла
	appConfig, err := loadAppConfig(inputParams.ConfigFile)
	if err != nil {
		return nil, err
	}
	cfg.AppConfig = appConfig

	// Переменные SL_LOG_* перекрывают секцию logging из файла
	if inputParams.LogLevel != "" {
		appConfig.Logging.ConsoleLevel = inputParams.LogLevel
		appConfig.Logging.FileLevel = inputParams.LogLevel
	}
	if inputParams.LogFile != "" {
		appConfig.Logging.FilePath = inputParams.LogFile
	}
	if inputParams.LogFormat != "" {
		appConfig.Logging.ConsoleFormat = inputParams.LogFormat
	}

	// Инициализируем диагностический логгер
	appConfig.Logging.Name = "structlog"
	l, err := logging.NewLogger(appConfig.Logging)
	if err != nil {
		return nil, err
	}
	cfg.Logger = l

	// Переменные SNS_* и SL_METRICS_* читаются поверх секций файла
	if err := cleanenv.ReadEnv(&appConfig.Notify); err != nil {
		l.Warn("ошибка чтения настроек транспорта из окружения", "error", err.Error())
	}
	if err := cleanenv.ReadEnv(&appConfig.Metrics); err != nil {
		l.Warn("ошибка чтения настроек метрик из окружения", "error", err.Error())
	}

	l.Debug("конфигурация загружена",
		"command", cfg.Command,
		"module", cfg.Module,
		"configFile", inputParams.ConfigFile,
		"version", constants.Version,
	)

	return cfg, nil
}

// loadAppConfig читает AppConfig из yaml-файла.
// Пустой путь — не ошибка: возвращаются значения по умолчанию.
func loadAppConfig(path string) (*AppConfig, error) {
	appConfig := &AppConfig{
		Logging: logging.DefaultConfig(),
		Notify:  notify.DefaultConfig(),
		Metrics: metrics.DefaultConfig(),
	}

	if path == "" {
		return appConfig, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
			fmt.Sprintf("не удалось прочитать файл конфигурации: %s", path), err)
	}

	if err := yaml.Unmarshal(data, appConfig); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigParse,
			fmt.Sprintf("не удалось разобрать файл конфигурации: %s", path), err)
	}

	return appConfig, nil
}
