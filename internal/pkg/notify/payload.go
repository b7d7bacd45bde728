// Package notify предоставляет диспетчер алертов: построение обогащённого
// payload для exception-событий и его best-effort публикацию во внешний
// pub/sub топик (один вызов publish, без retry и без подтверждений).
package notify

import (
	"encoding/json"
	"time"
)

// DefaultDestination — назначение алерта по умолчанию (маршрутизация
// в ServiceNow на стороне подписчика).
const DefaultDestination = "developer"

// timeLayout — формат utc_time_stamp в payload, совпадает с форматом
// структурированной записи лога.
const timeLayout = "2006-01-02 15:04:05"

// messageTypeException — единственный message_type алертов: диспетчеризация
// выполняется только для exception-событий.
const messageTypeException = "exception"

// DataTypeString — тип данных атрибута сообщения. Все атрибуты строковые.
const DataTypeString = "string"

// Attribute — типизированный атрибут сообщения для фильтрации
// на уровне транспорта.
type Attribute struct {
	DataType    string `json:"DataType"`
	StringValue string `json:"StringValue"`
}

// Payload — обогащённый alert payload для exception-события.
// Ключи JSON-тела стабильны и являются внешним контрактом.
type Payload struct {
	Team         string `json:"team"`
	Module       string `json:"module"`
	Traceback    string `json:"traceback"`
	UTCTimeStamp string `json:"utc_time_stamp"`
	MessageType  string `json:"message_type"`
	Message      string `json:"message"`
	SnowTeam     string `json:"snow_team"`
}

// NewPayload создаёт Payload для exception-события.
// Timestamp берётся в момент построения, всегда UTC.
// Пустой destination заменяется на DefaultDestination.
func NewPayload(team, module, message, destination, traceback string) Payload {
	if destination == "" {
		destination = DefaultDestination
	}
	return Payload{
		Team:         team,
		Module:       module,
		Traceback:    traceback,
		UTCTimeStamp: time.Now().UTC().Format(timeLayout),
		MessageType:  messageTypeException,
		Message:      message,
		SnowTeam:     destination,
	}
}

// Body сериализует payload в JSON-тело сообщения.
func (p Payload) Body() ([]byte, error) {
	return json.Marshal(p)
}

// Attributes возвращает параллельную карту атрибутов: те же ключи что
// в теле, каждый обёрнут в {DataType: "string", StringValue: <значение>}.
func (p Payload) Attributes() map[string]Attribute {
	values := map[string]string{
		"team":           p.Team,
		"module":         p.Module,
		"traceback":      p.Traceback,
		"utc_time_stamp": p.UTCTimeStamp,
		"message_type":   p.MessageType,
		"message":        p.Message,
		"snow_team":      p.SnowTeam,
	}

	attrs := make(map[string]Attribute, len(values))
	for k, v := range values {
		attrs[k] = Attribute{DataType: DataTypeString, StringValue: v}
	}
	return attrs
}
