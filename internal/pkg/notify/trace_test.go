package notify

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTraceback_FromStackCarryingError проверяет что для ошибки со стеком
// (github.com/pkg/errors) используется стек из ошибки — место возникновения.
func TestTraceback_FromStackCarryingError(t *testing.T) {
	err := errors.New("импорт упал")

	trace := Traceback(err)
	require.NotEmpty(t, trace)
	assert.Contains(t, trace, "trace_test.go", "стек указывает на место создания ошибки")
}

// TestTraceback_WrappedStackError проверяет что стек находится и в обёрнутой
// ошибке через цепочку Unwrap.
func TestTraceback_WrappedStackError(t *testing.T) {
	inner := errors.New("первопричина")
	outer := errors.WithMessage(inner, "контекст")

	trace := Traceback(outer)
	require.NotEmpty(t, trace)
	assert.Contains(t, trace, "trace_test.go")
}

// TestTraceback_PlainError проверяет fallback для ошибки без стека:
// текущий стек вызовов с префиксом текста ошибки, без кадров
// логирующих пакетов.
func TestTraceback_PlainError(t *testing.T) {
	err := stderrors.New("обычная ошибка")

	trace := Traceback(err)
	require.NotEmpty(t, trace)
	assert.True(t, strings.HasPrefix(trace, "обычная ошибка"))
	for _, prefix := range ownFramePrefixes {
		assert.NotContains(t, trace, prefix+".")
	}
	assert.Contains(t, trace, "testing.tRunner", "кадры тестового рантайма сохраняются")
}

// TestTraceback_NilError проверяет захват текущего стека без ошибки.
func TestTraceback_NilError(t *testing.T) {
	trace := Traceback(nil)
	require.NotEmpty(t, trace)
	assert.Contains(t, trace, "testing.tRunner")
}
