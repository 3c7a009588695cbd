package create_booking

import (
	"context"

	"github.com/nkmlv/photobooth-booking/internal/domain"
	createBooking "github.com/nkmlv/photobooth-booking/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, draft *createBooking.Draft) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
