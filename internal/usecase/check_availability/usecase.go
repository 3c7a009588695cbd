package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/nkmlv/photobooth-booking/internal/domain"
)

// UseCase use case проверки доступности временного слота
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute проверяет, свободен ли кандидатный слот.
//
// Слот занят, если он пересекается (полуоткрыто) хотя бы с одним
// неотменённым бронированием того же ресурса. Бронирования с битыми
// датами в расчёт не попадают - нормализатор их уже выбросил, а
// вырожденные интервалы пропускаются: политика намеренно пермиссивная,
// доступность важнее ложных отказов из-за плохих данных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.DurationMinutes <= 0 {
		uc.logger.Warn("CheckAvailability: non-positive duration %d", req.DurationMinutes)
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if req.Start.IsZero() {
		uc.logger.Warn("CheckAvailability: start is required")
		return nil, fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	end := req.Start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	bookings, err := uc.bookingRepo.LoadAll(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	available := true
	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		if !b.ConstrainsPackage(req.PackageID) {
			continue
		}
		if !b.End.After(b.Start) {
			continue
		}
		if domain.Overlaps(req.Start, end, b.Start, b.End) {
			uc.logger.Info("CheckAvailability: slot %s - %s conflicts with booking id=%s",
				req.Start.Format(time.RFC3339), end.Format(time.RFC3339), b.ID)
			available = false
			break
		}
	}

	return &Response{
		Available:       available,
		Start:           req.Start,
		End:             end,
		DurationMinutes: req.DurationMinutes,
	}, nil
}
