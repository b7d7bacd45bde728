package structlog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/ecur-data/structlog/internal/pkg/logging"
)

// TimeLayout — формат поля utc_time_stamp. Время всегда в UTC,
// независимо от часового пояса хоста.
const TimeLayout = "2006-01-02 15:04:05"

// recordLine — JSON-представление одной записи лога.
// Порядок и имена ключей стабильны и являются внешним контрактом.
type recordLine struct {
	Team         string `json:"team"`
	Module       string `json:"module"`
	UTCTimeStamp string `json:"utc_time_stamp"`
	MessageType  string `json:"message_type"`
	Message      string `json:"message"`
}

// jsonHandler реализует slog.Handler, рендеря каждую запись как recordLine.
// Сериализация через encoding/json гарантирует валидный JSON для любого
// текста сообщения (кавычки и управляющие символы экранируются).
//
// Дополнительные атрибуты записи не имеют собственных ключей в формате —
// они дописываются в поле message как "key=value" пары.
type jsonHandler struct {
	w        io.Writer
	mu       *sync.Mutex
	level    slog.Level
	identity Identity
	attrs    []slog.Attr
}

func newJSONHandler(w io.Writer, identity Identity, level slog.Level) *jsonHandler {
	return &jsonHandler{
		w:        w,
		mu:       &sync.Mutex{},
		level:    level,
		identity: identity,
	}
}

// Enabled проверяет проходит ли уровень записи порог sink.
func (h *jsonHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

// Handle рендерит запись в JSON-строку и пишет её в sink.
func (h *jsonHandler) Handle(_ context.Context, r slog.Record) error {
	var msg strings.Builder
	msg.WriteString(r.Message)

	for _, a := range h.attrs {
		fmt.Fprintf(&msg, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&msg, " %s=%v", a.Key, a.Value)
		return true
	})

	line := recordLine{
		Team:         h.identity.Team(),
		Module:       h.identity.Module(),
		UTCTimeStamp: r.Time.UTC().Format(TimeLayout),
		MessageType:  logging.LevelName(r.Level),
		Message:      msg.String(),
	}

	data, err := json.Marshal(line)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(data)
	return err
}

// WithAttrs возвращает handler с добавленными постоянными атрибутами.
func (h *jsonHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup возвращает handler без изменений — формат плоский,
// группы не поддерживаются.
func (h *jsonHandler) WithGroup(_ string) slog.Handler {
	return h
}
