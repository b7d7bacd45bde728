package logging

// Поддерживаемые форматы вывода логов.
const (
	// FormatText — краткий формат: `время [-LEVEL-] [имя] сообщение`.
	FormatText = "text"
	// FormatDev — формат для разработки, добавляет файл и строку вызова.
	FormatDev = "dev"
	// FormatJSON — стандартный slog JSON handler.
	FormatJSON = "json"
)

// Поддерживаемые уровни логирования.
const (
	LevelDebug    = "debug"
	LevelInfo     = "info"
	LevelWarning  = "warning"
	LevelError    = "error"
	LevelCritical = "critical"
)

// Значения по умолчанию для Config.
// Единый источник истины — используется в DefaultConfig и loadLoggingConfig.
const (
	DefaultConsoleLevel  = LevelDebug
	DefaultConsoleFormat = FormatText
	DefaultFileLevel     = LevelDebug
	DefaultFileFormat    = FormatText
	DefaultMaxSize       = 100 // MB
	DefaultMaxBackups    = 3
	DefaultMaxAge        = 7 // days
	DefaultCompress      = true
)

// DefaultConfig возвращает Config со значениями по умолчанию:
// консоль включена, файл отключён.
func DefaultConfig() Config {
	return Config{
		Console:       true,
		ConsoleLevel:  DefaultConsoleLevel,
		ConsoleFormat: DefaultConsoleFormat,
		FileLevel:     DefaultFileLevel,
		FileFormat:    DefaultFileFormat,
		MaxSize:       DefaultMaxSize,
		MaxBackups:    DefaultMaxBackups,
		MaxAge:        DefaultMaxAge,
		Compress:      DefaultCompress,
	}
}

// Config содержит настройки создаваемого логгера.
//
// Неизвестное имя уровня НЕ является ошибкой: оно молча приводится
// к наименьшему уровню (debug). Это осознанная политика fallback-on-unknown.
type Config struct {
	// Name задаёт имя логгера (обычно имя модуля или файла).
	// Включается в каждую запись.
	Name string `yaml:"name"`

	// ConfigFile задаёт путь к yaml-файлу c настройками логгера.
	// Если указан — значения из файла перекрывают остальные поля Config.
	ConfigFile string `yaml:"-"`

	// Console определяет писать ли логи в stderr.
	// По умолчанию: true.
	Console bool `yaml:"console"`

	// ConsoleLevel задаёт минимальный уровень для консольного sink.
	// По умолчанию: "debug".
	ConsoleLevel string `yaml:"consoleLevel"`

	// ConsoleFormat задаёт формат консольного вывода: "text", "dev" или "json".
	// По умолчанию: "text".
	ConsoleFormat string `yaml:"consoleFormat"`

	// FilePath задаёт путь к файлу логов. Пустое значение отключает файловый sink.
	// Директория создаётся автоматически.
	FilePath string `yaml:"filePath"`

	// FileLevel задаёт минимальный уровень для файлового sink.
	// По умолчанию: "debug".
	FileLevel string `yaml:"fileLevel"`

	// FileFormat задаёт формат файлового вывода: "text", "dev" или "json".
	// По умолчанию: "text".
	FileFormat string `yaml:"fileFormat"`

	// MaxSize задаёт максимальный размер файла в мегабайтах
	// перед ротацией. По умолчанию: 100 МБ.
	MaxSize int `yaml:"maxSize"`

	// MaxBackups задаёт количество backup файлов.
	// По умолчанию: 3.
	MaxBackups int `yaml:"maxBackups"`

	// MaxAge задаёт максимальный возраст backup файлов в днях.
	// По умолчанию: 7 дней.
	MaxAge int `yaml:"maxAge"`

	// Compress определяет сжимать ли backup файлы в gzip.
	// По умолчанию: true.
	Compress bool `yaml:"compress"`
}
