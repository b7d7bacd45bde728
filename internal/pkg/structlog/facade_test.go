package structlog

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecur-data/structlog/internal/pkg/notify"
)

// stubDispatcher — диспетчер для тестов: запоминает payload каждого Dispatch.
type stubDispatcher struct {
	enabled  bool
	payloads []notify.Payload
	err      error
}

func (s *stubDispatcher) Enabled() bool { return s.enabled }

func (s *stubDispatcher) Dispatch(_ context.Context, p notify.Payload) error {
	s.payloads = append(s.payloads, p)
	return s.err
}

// newTestLogger создаёт фасад с изолированным реестром, буфером вывода
// и указанным диспетчером.
func newTestLogger(t *testing.T, module string, d Dispatcher, opts ...Option) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	base := []Option{
		WithRegistry(NewRegistry()),
		WithWriter(&buf),
		WithDispatcher(d),
	}
	logger, err := New(module, append(base, opts...)...)
	require.NoError(t, err)
	return logger, &buf
}

// parseLine разбирает одну JSON-строку лога.
func parseLine(t *testing.T, line string) map[string]any {
	t.Helper()
	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &parsed), "строка лога должна быть валидным JSON")
	return parsed
}

// TestNew_EmptyModuleFatal проверяет что пустое имя модуля фатально для конструирования.
func TestNew_EmptyModuleFatal(t *testing.T) {
	_, err := New("", WithRegistry(NewRegistry()), WithDispatcher(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOGGING.REGISTRY_FAILED")
}

// TestLogger_RecordFormat проверяет пять стабильных ключей записи и их значения.
func TestLogger_RecordFormat(t *testing.T) {
	logger, buf := newTestLogger(t, "subscribe.worker", nil, WithTeam("test"))

	logger.Info("воркер запущен")

	parsed := parseLine(t, buf.String())
	assert.Equal(t, "test", parsed["team"])
	assert.Equal(t, "subscribe.worker", parsed["module"])
	assert.Equal(t, "INFO", parsed["message_type"])
	assert.Equal(t, "воркер запущен", parsed["message"])
	assert.NotEmpty(t, parsed["utc_time_stamp"])
}

// TestLogger_RecordSchema проверяет соответствие записи JSON Schema контракту.
func TestLogger_RecordSchema(t *testing.T) {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile("testdata/schema/record.schema.json")
	require.NoError(t, err, "не удалось загрузить JSON Schema")

	logger, buf := newTestLogger(t, "schema.check", nil)

	logger.Debug("debug message")
	logger.Status("status message")
	logger.Warning("warning message")
	logger.Error("error message")
	logger.Critical("critical message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)

	for _, line := range lines {
		var jsonData any
		require.NoError(t, json.Unmarshal([]byte(line), &jsonData))
		assert.NoError(t, schema.Validate(jsonData), "запись должна соответствовать schema: %s", line)
	}
}

// TestLogger_MessageTypes проверяет маппинг уровневых методов на message_type.
func TestLogger_MessageTypes(t *testing.T) {
	logger, buf := newTestLogger(t, "levels", nil)

	logger.Debug("d")
	logger.Info("i")
	logger.Status("s")
	logger.Warning("w")
	logger.Error("e")
	logger.Critical("c")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)

	expected := []string{"DEBUG", "INFO", "INFO", "WARNING", "ERROR", "CRITICAL"}
	for i, line := range lines {
		parsed := parseLine(t, line)
		assert.Equal(t, expected[i], parsed["message_type"], "строка %d", i)
	}
}

// TestLogger_TimestampIsUTC проверяет что utc_time_stamp — UTC время момента вызова,
// независимо от часового пояса хоста.
func TestLogger_TimestampIsUTC(t *testing.T) {
	logger, buf := newTestLogger(t, "clock", nil)

	before := time.Now().UTC().Truncate(time.Second)
	logger.Info("tick")
	after := time.Now().UTC()

	parsed := parseLine(t, buf.String())
	stamp, err := time.Parse(TimeLayout, parsed["utc_time_stamp"].(string))
	require.NoError(t, err)

	assert.False(t, stamp.Before(before), "timestamp раньше момента вызова")
	assert.False(t, stamp.After(after.Add(time.Second)), "timestamp позже момента вызова")
}

// TestLogger_JSONSafeMessages проверяет что кавычки и управляющие символы
// в сообщении не ломают JSON-структуру записи.
func TestLogger_JSONSafeMessages(t *testing.T) {
	logger, buf := newTestLogger(t, "escaping", nil)

	logger.Info(`сообщение с "кавычками" и` + "\nпереводом строки")

	parsed := parseLine(t, strings.Split(buf.String(), "\n")[0])
	assert.Contains(t, parsed["message"], `"кавычками"`)
}

// TestLogger_IdempotentRegistration проверяет что повторное конструирование
// фасада с тем же именем не дублирует строки вывода (один sink на identity).
func TestLogger_IdempotentRegistration(t *testing.T) {
	registry := NewRegistry()
	var buf bytes.Buffer

	first, err := New("dup.module",
		WithRegistry(registry), WithWriter(&buf), WithDispatcher(nil))
	require.NoError(t, err)

	second, err := New("dup.module",
		WithRegistry(registry), WithWriter(&buf), WithDispatcher(nil))
	require.NoError(t, err)

	_ = first
	second.Info("одна строка")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1, "повторная регистрация не должна дублировать вывод")
	assert.Equal(t, 1, registry.Len())
}

// TestLogger_LevelFiltering проверяет что записи ниже уровня sink отбрасываются.
func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(t, "filtered", nil, WithLevel("error"))

	logger.Debug("не должно появиться")
	logger.Info("тоже нет")
	logger.Error("должно появиться")
	logger.Critical("и это")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "должно появиться")
}

// TestLogger_UnknownLevelFallsBackToDebug проверяет политику fallback-on-unknown:
// неизвестное имя уровня даёт наименьший уровень, debug-записи проходят.
func TestLogger_UnknownLevelFallsBackToDebug(t *testing.T) {
	logger, buf := newTestLogger(t, "fallback", nil, WithLevel("loudest"))

	logger.Debug("проходит")
	assert.Contains(t, buf.String(), "проходит")
}

// TestLogger_ErrorDoesNotDispatch проверяет асимметрию: Error пишет в sink,
// но НЕ публикует алерт даже при настроенном топике.
func TestLogger_ErrorDoesNotDispatch(t *testing.T) {
	dispatcher := &stubDispatcher{enabled: true}
	logger, buf := newTestLogger(t, "no.dispatch", dispatcher)

	logger.Error("обычная ошибка")

	assert.Empty(t, dispatcher.payloads, "Error не должен вызывать dispatch")
	assert.Contains(t, buf.String(), `"message_type":"ERROR"`)
}

// TestLogger_ExceptionDispatchesOnce проверяет что Exception публикует ровно
// один алерт и пишет ERROR-запись в sink.
func TestLogger_ExceptionDispatchesOnce(t *testing.T) {
	dispatcher := &stubDispatcher{enabled: true}
	logger, buf := newTestLogger(t, "dispatch.once", dispatcher, WithTeam("test"))

	logger.Exception("обработка не удалась")

	require.Len(t, dispatcher.payloads, 1, "ровно одна публикация на Exception")
	payload := dispatcher.payloads[0]
	assert.Equal(t, "test", payload.Team)
	assert.Equal(t, "dispatch.once", payload.Module)
	assert.Equal(t, "exception", payload.MessageType)
	assert.Equal(t, "обработка не удалась", payload.Message)
	assert.NotEmpty(t, payload.Traceback)

	parsed := parseLine(t, buf.String())
	assert.Equal(t, "ERROR", parsed["message_type"])
}

// TestLogger_ExceptionWithoutTopic проверяет что при отключённой
// диспетчеризации Exception не трогает транспорт, но ERROR-запись пишется.
func TestLogger_ExceptionWithoutTopic(t *testing.T) {
	dispatcher := &stubDispatcher{enabled: false}
	logger, buf := newTestLogger(t, "no.topic", dispatcher)

	logger.Exception("сбой без алерта")

	assert.Empty(t, dispatcher.payloads, "без топика dispatch не вызывается")
	parsed := parseLine(t, buf.String())
	assert.Equal(t, "ERROR", parsed["message_type"])
	assert.Equal(t, "сбой без алерта", parsed["message"])
}

// TestLogger_ExceptionDestinationDefault проверяет назначение по умолчанию.
func TestLogger_ExceptionDestinationDefault(t *testing.T) {
	dispatcher := &stubDispatcher{enabled: true}
	logger, _ := newTestLogger(t, "dest.default", dispatcher)

	logger.Exception("msg")

	require.Len(t, dispatcher.payloads, 1)
	assert.Equal(t, "developer", dispatcher.payloads[0].SnowTeam)
}

// TestLogger_ExceptionDestinationOverride проверяет явное назначение алерта.
func TestLogger_ExceptionDestinationOverride(t *testing.T) {
	dispatcher := &stubDispatcher{enabled: true}
	logger, _ := newTestLogger(t, "dest.override", dispatcher)

	logger.Exception("msg", WithDestination("data_steward"))

	require.Len(t, dispatcher.payloads, 1)
	assert.Equal(t, "data_steward", dispatcher.payloads[0].SnowTeam)
}

// TestLogger_ExceptionDispatchFailureIsolated проверяет изоляцию сбоя доставки:
// ошибка диспетчера не подавляет запись в sink и не паникует.
func TestLogger_ExceptionDispatchFailureIsolated(t *testing.T) {
	dispatcher := &stubDispatcher{enabled: true, err: assert.AnError}
	logger, buf := newTestLogger(t, "isolated", dispatcher)

	assert.NotPanics(t, func() {
		logger.Exception("сбой с недоступным транспортом")
	})

	parsed := parseLine(t, buf.String())
	assert.Equal(t, "ERROR", parsed["message_type"], "запись в sink обязана выполниться")
}

// TestLogger_ExceptionWithError проверяет что ошибка попадает в атрибуты записи.
func TestLogger_ExceptionWithError(t *testing.T) {
	dispatcher := &stubDispatcher{enabled: true}
	logger, buf := newTestLogger(t, "with.error", dispatcher)

	logger.Exception("чтение не удалось", WithError(assert.AnError))

	require.Len(t, dispatcher.payloads, 1)
	assert.Contains(t, dispatcher.payloads[0].Traceback, assert.AnError.Error())
	assert.Contains(t, buf.String(), "error=")
}
