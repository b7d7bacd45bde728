// Package structlog предоставляет фасад структурированного JSON-логирования
// с диспетчеризацией алертов уровня exception во внешний pub/sub топик.
//
// Каждая запись рендерится в JSON со стабильными ключами:
//
//	{"team": "...", "module": "...", "utc_time_stamp": "...", "message_type": "...", "message": "..."}
//
// Использование:
//
//	log, err := structlog.New("subscribe.worker", structlog.WithTeam("ecur"))
//	log.Info("воркер запущен")
//	log.Exception("обработка не удалась", structlog.WithError(err))
package structlog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTeam — команда по умолчанию для фасада.
const DefaultTeam = "ecur"

// Identity — неизменяемая пара (team, module), приводимая к нижнему регистру
// при конструировании. Ключ "{team}.{module}" уникально идентифицирует sink
// в реестре: одинаковые пары всегда разрешаются в один и тот же sink.
type Identity struct {
	team   string
	module string
}

// NewIdentity создаёт Identity, приводя оба значения к нижнему регистру.
// Используется Unicode case folding, не только ASCII.
func NewIdentity(team, module string) Identity {
	lower := cases.Lower(language.Und)
	return Identity{
		team:   lower.String(team),
		module: lower.String(module),
	}
}

// Team возвращает нормализованное имя команды.
func (i Identity) Team() string { return i.team }

// Module возвращает нормализованное имя модуля.
func (i Identity) Module() string { return i.module }

// Key возвращает ключ логгера вида "team.module".
func (i Identity) Key() string { return i.team + "." + i.module }
