package logging

import (
	"log/slog"
	"strings"
)

// CriticalLevel — уровень CRITICAL поверх стандартных уровней slog.
// slog не имеет встроенного critical, используется ERROR+4 по соглашению slog
// (уровни идут с шагом 4).
const CriticalLevel slog.Level = slog.LevelError + 4

// ParseLevel конвертирует имя уровня в slog.Level.
// Имя регистронезависимо ("WARNING" и "warning" эквивалентны).
//
// Неизвестное имя молча приводится к наименьшему уровню (debug) —
// логгер в этом случае пропускает все записи, ничего не теряя.
// Политика fallback-on-unknown, возврат ошибки здесь не предусмотрен.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning, "warn":
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelCritical:
		return CriticalLevel
	default:
		return slog.LevelDebug
	}
}

// LevelName возвращает каноническое имя уровня для вывода в лог:
// DEBUG, INFO, WARNING, ERROR, CRITICAL.
func LevelName(l slog.Level) string {
	switch {
	case l >= CriticalLevel:
		return "CRITICAL"
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARNING"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
