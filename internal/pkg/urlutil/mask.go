// Package urlutil предоставляет утилиты безопасного вывода адресов
// транспортов в лог.
package urlutil

import (
	"net/url"
	"strings"
)

// MaskURL маскирует адрес транспорта для записи в лог: скрываются
// userinfo, path и query — всё, что может содержать токены и credentials.
// Остаются только scheme и host.
//
// NATS принимает список серверов через запятую
// ("nats://a:4222,nats://b:4222") — такой список маскируется поэлементно.
func MaskURL(raw string) string {
	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		masked := make([]string, len(parts))
		for i, p := range parts {
			masked[i] = maskOne(strings.TrimSpace(p))
		}
		return strings.Join(masked, ",")
	}
	return maskOne(raw)
}

func maskOne(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "***invalid-url***"
	}
	// u.Host не содержит userinfo, credentials отбрасываются вместе с path.
	return u.Scheme + "://" + u.Host + "/***"
}
