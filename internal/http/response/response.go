// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков: ошибки и сообщения
// валидации в едином формате.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse — стандартная структура JSON-ответа с ошибкой.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusError — значение статуса для ответа с ошибкой.
const StatusError = "error"

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status:  StatusError,
		Message: msg,
	}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "datetime=2006-01-02":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only date in format 2006-01-02", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{
		Status:  StatusError,
		Message: strings.Join(errsMsgs, ", "),
	}
}
