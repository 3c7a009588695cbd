package update_status

import (
	"context"

	"github.com/nkmlv/photobooth-booking/internal/service/bookings/models"
)

type BookingsService interface {
	ApplyStatus(ctx context.Context, bookingID string, req *models.ApplyStatusRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
