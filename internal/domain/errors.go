package domain

import (
	"errors"
	"fmt"

	"scoreboard/pkg/errcodes"
)

// ErrNoState: сохранённого состояния ещё нет (первый запуск).
var ErrNoState = errors.New("no persisted state")

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Code    errcodes.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewError создаёт новую доменную ошибку.
func NewError(code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (errcodes.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// HasCode проверяет, что в цепочке есть AppError с одним из кодов.
func HasCode(err error, codes ...errcodes.ErrorCode) bool {
	code, ok := GetCode(err)
	if !ok {
		return false
	}
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// IsInvalidInput ловит ошибки ввода: имя, дельту или направление.
func IsInvalidInput(err error) bool {
	return HasCode(err,
		errcodes.ValidationError,
		errcodes.InvalidTeamName,
		errcodes.InvalidScoreDelta,
		errcodes.InvalidDirection,
	)
}

// IsDuplicateName ловит коллизию имени при добавлении.
func IsDuplicateName(err error) bool {
	return HasCode(err, errcodes.TeamNameAlreadyInUse)
}

// IsNotFound ловит операции над отсутствующей командой.
func IsNotFound(err error) bool {
	return HasCode(err, errcodes.TeamNotFound, errcodes.NotFound)
}
