package command

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecur-data/structlog/internal/config"
)

// mockHandler — тестовый обработчик команды.
type mockHandler struct {
	name string
}

func (m *mockHandler) Name() string        { return m.name }
func (m *mockHandler) Description() string { return "mock: " + m.name }
func (m *mockHandler) Execute(_ context.Context, _ *config.Config, _ io.Writer) error {
	return nil
}

func TestRegister_Success(t *testing.T) {
	clearRegistry()

	h := &mockHandler{name: "test-command"}
	Register(h)

	got, ok := Get("test-command")
	assert.True(t, ok, "команда должна быть найдена в реестре")
	assert.Equal(t, h, got, "должен вернуться тот же handler")
}

func TestRegister_Duplicate_Panics(t *testing.T) {
	clearRegistry()

	h1 := &mockHandler{name: "dup-command"}
	h2 := &mockHandler{name: "dup-command"}

	Register(h1)

	assert.PanicsWithValue(t, "command: duplicate handler registration for dup-command", func() {
		Register(h2)
	}, "повторная регистрация должна вызвать panic")
}

func TestRegister_NilHandler_Panics(t *testing.T) {
	clearRegistry()

	assert.PanicsWithValue(t, "command: nil handler", func() {
		Register(nil)
	}, "nil handler должен вызвать panic")
}

func TestRegister_EmptyName_Panics(t *testing.T) {
	clearRegistry()

	h := &mockHandler{name: ""}
	assert.PanicsWithValue(t, "command: empty handler name", func() {
		Register(h)
	}, "пустое имя должно вызвать panic")
}

func TestRegister_InvalidName_Panics(t *testing.T) {
	clearRegistry()

	for _, name := range []string{"Emit", "emit_probe", "-emit", "emit-", "emit--probe", "9emit"} {
		h := &mockHandler{name: name}
		assert.Panics(t, func() { Register(h) }, "имя %q должно быть отвергнуто", name)
	}
}

func TestGet_NotFound(t *testing.T) {
	clearRegistry()

	_, ok := Get("no-such-command")
	assert.False(t, ok)
}

func TestNames_Sorted(t *testing.T) {
	clearRegistry()

	for _, name := range []string{"zeta", "alpha", "probe"} {
		Register(&mockHandler{name: name})
	}

	assert.Equal(t, []string{"alpha", "probe", "zeta"}, Names())
}

func TestAll_ReturnsCopy(t *testing.T) {
	clearRegistry()

	Register(&mockHandler{name: "probe"})

	all := All()
	delete(all, "probe")

	_, ok := Get("probe")
	assert.True(t, ok, "удаление из копии не должно влиять на реестр")
}

// TestRegister_Concurrent проверяет потокобезопасность регистрации.
func TestRegister_Concurrent(t *testing.T) {
	clearRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Register(&mockHandler{name: fmt.Sprintf("cmd-%d", i)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, Names(), 16)
}
