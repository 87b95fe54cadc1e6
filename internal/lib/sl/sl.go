// Package sl содержит вспомогательные функции для работы с логгером slog.
// Основная цель — упростить формирование структурированных полей лога
// и не допустить попадания PII (адресов почты) в логи в открытом виде.
package sl

import (
	"log/slog"
	"strings"
)

// Err возвращает slog.Attr с ключом "error" и значением текста ошибки.
//
// Пример:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Email возвращает slog.Attr с ключом "email" и замаскированным адресом.
// Все записи лога, содержащие адрес пользователя, обязаны использовать его.
func Email(email string) slog.Attr {
	return slog.Attr{
		Key:   "email",
		Value: slog.StringValue(MaskEmail(email)),
	}
}

// MaskEmail маскирует локальную часть адреса: сохраняются первый и последний
// символы, середина заменяется звёздочками. Короткие (до двух символов)
// локальные части маскируются полностью, домен остаётся открытым.
//
//	"john.doe@example.com" -> "j******e@example.com"
//
// Строки, не похожие на адрес, возвращаются как есть.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return email
	}

	user, domain := email[:at], email[at+1:]
	if len(user) > 2 {
		return user[:1] + strings.Repeat("*", len(user)-2) + user[len(user)-1:] + "@" + domain
	}
	return strings.Repeat("*", len(user)) + "@" + domain
}
