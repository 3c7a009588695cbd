package check_availability

import "time"

// Request запрос проверки доступности слота
type Request struct {
	Start           time.Time // Начало кандидатного интервала
	DurationMinutes int       // Длительность, должна быть положительной
	PackageID       *string   // Пакет (опционально); nil = любой ресурс
}

// Response результат проверки доступности
type Response struct {
	Available       bool
	Start           time.Time
	End             time.Time
	DurationMinutes int
}
