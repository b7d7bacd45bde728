// Package config отвечает за загрузку конфигурации приложения из
// переменных окружения и yaml-файла.
package config

import (
	"github.com/ecur-data/structlog/internal/pkg/logging"
	"github.com/ecur-data/structlog/internal/pkg/metrics"
	"github.com/ecur-data/structlog/internal/pkg/notify"
)

// InputParams содержит параметры запуска, читаемые из переменных окружения.
// Каждое поле соответствует одной переменной; пустое значение означает
// что переменная не задана.
type InputParams struct {
	// Command — имя выполняемой команды (emit, alert, help, version).
	Command string `env:"SL_COMMAND"`

	// Module — имя модуля (логгера) для пробных команд.
	Module string `env:"SL_MODULE"`

	// Team — имя команды-владельца логгера.
	Team string `env:"SL_TEAM"`

	// Message — текст пробного сообщения для команд emit и alert.
	Message string `env:"SL_MESSAGE"`

	// Level — уровень пробной записи для команды emit.
	Level string `env:"SL_LEVEL"`

	// Destination — назначение алерта для команды alert.
	Destination string `env:"SL_DESTINATION"`

	// OutputFormat — формат вывода результата команды: text или json.
	OutputFormat string `env:"SL_OUTPUT_FORMAT"`

	// ConfigFile — путь к yaml-файлу конфигурации приложения.
	ConfigFile string `env:"SL_CONFIG"`

	// LogLevel — уровень диагностического логгера приложения.
	LogLevel string `env:"SL_LOG_LEVEL"`

	// LogFile — путь к файлу диагностического лога.
	LogFile string `env:"SL_LOG_FILE"`

	// LogFormat — формат диагностического лога: text, dev или json.
	LogFormat string `env:"SL_LOG_FORMAT"`
}

// AppConfig — конфигурация приложения из yaml-файла (SL_CONFIG).
// Секции перекрывают значения по умолчанию; переменные окружения
// транспорта и метрик читаются поверх файла соответствующими пакетами.
type AppConfig struct {
	// Logging — настройки диагностического логгера.
	Logging logging.Config `yaml:"logging"`

	// Notify — настройки диспетчера алертов.
	Notify notify.Config `yaml:"notify"`

	// Metrics — настройки Prometheus метрик.
	Metrics metrics.Config `yaml:"metrics"`
}

// Config — собранная конфигурация приложения: параметры запуска,
// секции AppConfig и инициализированный диагностический логгер.
type Config struct {
	// Command — имя выполняемой команды.
	Command string

	// Module — имя модуля для пробных команд.
	Module string

	// Team — имя команды-владельца.
	Team string

	// Message — текст пробного сообщения.
	Message string

	// Level — уровень пробной записи.
	Level string

	// Destination — назначение алерта.
	Destination string

	// OutputFormat — формат вывода результата команды.
	OutputFormat string

	// AppConfig — конфигурация из yaml-файла или значения по умолчанию.
	AppConfig *AppConfig

	// Logger — диагностический логгер приложения.
	Logger logging.Logger
}
