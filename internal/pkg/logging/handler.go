package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// dateFormat — формат времени записи: месяц-день-год часы:минуты:секунды.
const dateFormat = "01-02-2006 15:04:05"

// textHandler реализует slog.Handler с текстовым форматом:
//
//	01-02-2006 15:04:05 [-INFO-] [имя] сообщение key=value
//
// В dev-режиме дополнительно выводится файл и строка вызова:
//
//	01-02-2006 15:04:05 [INFO] [имя] [factory.go:42] сообщение key=value
type textHandler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Level
	name  string
	dev   bool
	attrs []slog.Attr
}

func newTextHandler(w io.Writer, name string, level slog.Level, dev bool) *textHandler {
	return &textHandler{
		w:     w,
		mu:    &sync.Mutex{},
		level: level,
		name:  name,
		dev:   dev,
	}
}

// Enabled проверяет проходит ли уровень записи порог sink.
func (h *textHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

// Handle форматирует и записывает одну запись.
func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(dateFormat))

	if h.dev {
		fmt.Fprintf(&b, " [%s] [%s]", LevelName(r.Level), h.name)
		if r.PC != 0 {
			frames := runtime.CallersFrames([]uintptr{r.PC})
			frame, _ := frames.Next()
			fmt.Fprintf(&b, " [%s:%d]", filepath.Base(frame.File), frame.Line)
		}
	} else {
		fmt.Fprintf(&b, " [-%s-] [%s]", LevelName(r.Level), h.name)
	}

	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})

	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs возвращает handler с добавленными постоянными атрибутами.
func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup возвращает handler без изменений — группы в текстовом формате
// не поддерживаются, ключи выводятся плоско.
func (h *textHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler рассылает каждую запись во все вложенные handler.
// Используется когда настроены одновременно консольный и файловый sink.
type multiHandler struct {
	handlers []slog.Handler
}

// Enabled возвращает true если хотя бы один вложенный handler принимает уровень.
func (m *multiHandler) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

// Handle передаёт запись каждому handler-у, принимающему её уровень.
// Ошибка одного sink не мешает записи в остальные.
func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// WithAttrs применяет атрибуты ко всем вложенным handler.
func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

// WithGroup применяет группу ко всем вложенным handler.
func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}
