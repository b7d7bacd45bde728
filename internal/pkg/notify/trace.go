package notify

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer реализуется ошибками github.com/pkg/errors,
// несущими захваченный стек.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Traceback возвращает строковый снимок стека для alert payload.
//
// Если err несёт стек (github.com/pkg/errors) — используется стек из ошибки:
// он указывает на место возникновения, а не на место логирования.
// Иначе захватывается текущий стек вызовов; собственные кадры логирующих
// пакетов отфильтровываются по префиксу пакета, а не по счётчику глубины.
func Traceback(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			return strings.TrimSpace(fmt.Sprintf("%+v", st.StackTrace()))
		}
	}

	trace := captureStack()
	if err != nil {
		return err.Error() + "\n" + trace
	}
	return trace
}

// ownFramePrefixes — пакеты, чьи кадры исключаются из снимка стека:
// сам диспетчер и фасад structlog.
var ownFramePrefixes = []string{
	"github.com/ecur-data/structlog/internal/pkg/notify",
	"github.com/ecur-data/structlog/internal/pkg/structlog",
}

// captureStack захватывает текущий стек вызовов, исключая кадры
// логирующих пакетов и рантайма.
func captureStack() string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !isOwnFrame(frame.Function) {
			fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return strings.TrimSpace(b.String())
}

func isOwnFrame(function string) bool {
	for _, prefix := range ownFramePrefixes {
		if strings.HasPrefix(function, prefix) {
			return true
		}
	}
	return false
}
