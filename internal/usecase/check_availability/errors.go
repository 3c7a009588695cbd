package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при структурно невозможном входе
	// (неположительная длительность, нулевое время начала).
	// Вход не коэрсится молча - это ошибка вызывающей стороны.
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
