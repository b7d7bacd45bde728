package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ecur-data/structlog/internal/pkg/apperrors"
)

// NewLogger создаёт Logger с заданной конфигурацией.
//
// Поддерживаемые sink:
//   - консоль (config.Console): логи пишутся в os.Stderr
//   - файл (config.FilePath): логи пишутся в файл с автоматической
//     ротацией через lumberjack, директория создаётся автоматически
//
// Каждый sink имеет собственный уровень и формат. Если не настроен
// ни один sink — включается консоль, чтобы не терять логи молча.
//
// При config.ConfigFile значения читаются из yaml-файла и перекрывают
// остальные поля (bootstrap из конфигурационного файла).
//
// Ошибка создания файлового sink фатальна для конструирования:
// возвращается apperrors.ErrLoggingSink, деградации на консоль нет.
func NewLogger(config Config) (Logger, error) {
	if config.ConfigFile != "" {
		loaded, err := loadConfigFile(config.ConfigFile)
		if err != nil {
			return nil, err
		}
		loaded.Name = firstNonEmpty(loaded.Name, config.Name)
		config = loaded
	}

	if !config.Console && config.FilePath == "" {
		config.Console = true
	}

	handlers := make([]slog.Handler, 0, 2)

	if config.Console {
		handlers = append(handlers, newHandler(os.Stderr, config.Name, config.ConsoleFormat, config.ConsoleLevel))
	}

	if config.FilePath != "" {
		w, err := newLumberjackWriter(config)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, newHandler(w, config.Name, config.FileFormat, config.FileLevel))
	}

	if len(handlers) == 1 {
		return NewSlogAdapter(slog.New(handlers[0])), nil
	}
	return NewSlogAdapter(slog.New(&multiHandler{handlers: handlers})), nil
}

// Log создаёт логгер по умолчанию: консоль, text формат, уровень debug.
// Аналог типового применения:
//
//	log, err := logging.Log("subscribe.worker")
//	log.Info("воркер запущен")
func Log(name string) (Logger, error) {
	cfg := DefaultConfig()
	cfg.Name = name
	return NewLogger(cfg)
}

// DevLog создаёт логгер для разработки: как Log, но формат dev —
// каждая запись дополняется файлом и строкой вызова.
func DevLog(name string) (Logger, error) {
	cfg := DefaultConfig()
	cfg.Name = name
	cfg.ConsoleFormat = FormatDev
	cfg.FileFormat = FormatDev
	return NewLogger(cfg)
}

// NewLoggerWithWriter создаёт Logger с заданной конфигурацией и writer.
// Используется для тестирования и гибкой настройки вывода.
// Файловые поля конфигурации игнорируются — пишет только в w.
func NewLoggerWithWriter(config Config, w io.Writer) Logger {
	return NewSlogAdapter(slog.New(newHandler(w, config.Name, config.ConsoleFormat, config.ConsoleLevel)))
}

// newHandler создаёт slog.Handler для одного sink.
func newHandler(w io.Writer, name, format, level string) slog.Handler {
	lvl := ParseLevel(level)
	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	case FormatDev:
		return newTextHandler(w, name, lvl, true)
	default:
		return newTextHandler(w, name, lvl, false)
	}
}

// newLumberjackWriter создаёт io.Writer с ротацией на основе lumberjack.
// Автоматически создаёт директорию для файла логов если не существует.
func newLumberjackWriter(config Config) (io.Writer, error) {
	dir := filepath.Dir(config.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrLoggingSink,
				fmt.Sprintf("не удалось создать директорию логов %q", dir), err)
		}
	}

	maxSize := config.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}

	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    maxSize, // MB
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge, // days
		Compress:   config.Compress,
	}, nil
}

// loadConfigFile читает Config из yaml-файла.
func loadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, apperrors.NewAppError(apperrors.ErrConfigLoad,
			fmt.Sprintf("не удалось прочитать конфигурацию логгера из %q", path), err)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
