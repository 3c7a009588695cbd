package bookings

import (
	"context"

	"github.com/nkmlv/photobooth-booking/internal/domain"
	"github.com/nkmlv/photobooth-booking/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ApplyStatus(ctx context.Context, id string, status domain.BookingStatus, reason *string) (*domain.Booking, error)
}

// EventProducer интерфейс публикации событий бронирований.
// nil-продюсер допустим - события опциональны и никогда не валят операцию.
type EventProducer interface {
	Publish(ctx context.Context, key string, event events.BookingEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
