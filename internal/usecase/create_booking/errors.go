package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrValidation возвращается, когда черновик не прошёл валидацию.
	// Конкретные сообщения несёт ValidationError.
	ErrValidation = errors.New("create_booking: draft validation failed")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот конфликтует
	// с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError несёт полный список проблем черновика. Проверки не
// останавливаются на первой ошибке - вызывающая сторона может показать
// пользователю все проблемы разом.
type ValidationError struct {
	Messages []string
}

// Error возвращает все сообщения одной строкой
func (e *ValidationError) Error() string {
	return "create_booking: invalid draft: " + strings.Join(e.Messages, "; ")
}

// Unwrap позволяет errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
