// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import (
	"errors"
	"fmt"
)

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Тело пришло не с Content-Type: application/json.
	// Текст сохранён таким, каким его видят существующие клиенты.
	ErrNotJSON = errors.New("Error: Data must be sent as JSON")
	// Ресурс уже существует (username занят)
	ErrAlreadyExists = errors.New("Username Taken")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Логин или пароль не подошли. Один и тот же ответ для
	// несуществующего пользователя и неверного пароля.
	ErrNotVerified = errors.New("User NOT Verified")
	// Клиент превысил лимит запросов
	ErrTooManyRequests = errors.New("too many requests")
	// Тело запроса больше server.max_body_bytes
	ErrPayloadTooLarge = errors.New("payload too large")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// сущности
var (
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrAppointmentNotFound = fmt.Errorf("appointment %w", ErrNotFound)
	// bcrypt не принимает пароли длиннее 72 байт
	ErrPasswordTooLong = fmt.Errorf("%w: password too long", ErrInvalidInput)
)

// Internal оборачивает причину в ErrInternal, чтобы наверху работал errors.Is,
// а в логах оставался исходный текст ошибки.
func Internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
