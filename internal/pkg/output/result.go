// Package output предоставляет структуры и интерфейсы для форматирования
// результатов команд в JSON и текстовом формате.
package output

// StatusSuccess и StatusError — возможные значения поля Status в Result.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result представляет структурированный результат выполнения команды.
// Используется для сериализации в JSON (SL_OUTPUT_FORMAT=json)
// или для формирования человекочитаемого вывода (SL_OUTPUT_FORMAT=text).
type Result struct {
	// Status содержит статус выполнения: "success" или "error".
	Status string `json:"status"`

	// Command содержит имя выполненной команды.
	Command string `json:"command"`

	// Data содержит command-specific payload.
	// Для каждой команды определяется свой типизированный struct.
	Data any `json:"data,omitempty"`

	// Error содержит информацию об ошибке (только при status="error").
	Error *ErrorInfo `json:"error,omitempty"`

	// Metadata содержит метаданные выполнения.
	Metadata *Metadata `json:"metadata,omitempty"`
}

// ErrorInfo содержит информацию об ошибке в структурированном виде.
// Code — машиночитаемый код ошибки (например, "CONFIG.LOAD_FAILED").
// Message — человекочитаемое описание ошибки.
// ВАЖНО: Message НЕ ДОЛЖЕН содержать секреты!
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata содержит метаданные выполнения команды.
type Metadata struct {
	// Version — версия приложения.
	Version string `json:"version,omitempty"`
	// DurationMs — длительность выполнения команды в миллисекундах.
	DurationMs int64 `json:"duration_ms"`
	// Timestamp — время завершения команды в формате RFC3339.
	Timestamp string `json:"timestamp,omitempty"`
}

// NewSuccessResult создаёт Result для успешного выполнения команды.
func NewSuccessResult(command string, data any) *Result {
	return &Result{
		Status:  StatusSuccess,
		Command: command,
		Data:    data,
	}
}

// NewErrorResult создаёт Result для ошибочного завершения команды.
func NewErrorResult(command, code, message string) *Result {
	return &Result{
		Status:  StatusError,
		Command: command,
		Error:   &ErrorInfo{Code: code, Message: message},
	}
}
