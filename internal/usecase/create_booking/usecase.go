package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/nkmlv/photobooth-booking/internal/domain"
	"github.com/nkmlv/photobooth-booking/internal/infra/events"
)

// UseCase use case создания бронирования: валидация черновика, проверка
// доступности слота, сборка канонического бронирования и сохранение
type UseCase struct {
	bookingRepo  BookingRepository
	producer     EventProducer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// producer может быть nil - тогда события не публикуются.
func NewUseCase(bookingRepo BookingRepository, producer EventProducer, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		producer:     producer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка доступности и запись выполняются без блокировок поверх
// last-write-wins хранилища: между проверкой и записью другой писатель
// может успеть занять слот. Принятое ограничение дизайна (см. репозиторий).
func (uc *UseCase) Execute(ctx context.Context, draft *Draft) (*domain.Booking, error) {
	now := uc.timeProvider.Now()

	// 1. Валидация черновика - все проблемы собираются в один список
	resolved, validationErrs := validateDraft(draft, now)
	if len(validationErrs) > 0 {
		uc.logger.Warn("CreateBooking: draft validation failed with %d problem(s)", len(validationErrs))
		return nil, &ValidationError{Messages: validationErrs}
	}

	end := resolved.start.Add(time.Duration(resolved.duration) * time.Minute)

	// 2. Проверяем доступность слота
	bookings, err := uc.bookingRepo.LoadAll(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	if conflict := findConflict(bookings, resolved.start, end, resolved.packageID); conflict != nil {
		uc.logger.Warn("CreateBooking: slot %s - %s conflicts with booking id=%s",
			resolved.start.Format(time.RFC3339), end.Format(time.RFC3339), conflict.ID)
		return nil, ErrSlotNotAvailable
	}

	// 3. Собираем каноническое бронирование (id и история - забота репозитория)
	booking := &domain.Booking{
		Start:           resolved.start,
		End:             end,
		DurationMinutes: resolved.duration,
		PackageID:       resolved.packageID,
		Customer: domain.Customer{
			Name:  resolved.name,
			Email: resolved.email,
			Phone: resolved.phone,
		},
		Status: domain.StatusBooked,
		Price:  resolved.price,
		Notes:  resolved.notes,
		Guests: resolved.guests,
		Venue:  resolved.venue,
	}

	// 4. Сохраняем
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, start=%s, duration=%d",
		created.ID, created.Start.Format(time.RFC3339), created.DurationMinutes)

	// 5. Событие best-effort
	if uc.producer != nil {
		event := events.BookingEvent{
			Type:      events.TypeBookingCreated,
			BookingID: created.ID,
			Status:    string(created.Status),
			At:        created.CreatedAt,
		}
		if err := uc.producer.Publish(ctx, created.ID, event); err != nil {
			uc.logger.Warn("CreateBooking: failed to publish created event for booking id=%s: %v", created.ID, err)
		}
	}

	return created, nil
}

// findConflict возвращает первое бронирование, конфликтующее с кандидатом,
// или nil, если слот свободен.
//
// Отменённые бронирования слот не занимают. Если указан пакет, ограничивают
// только бронирования без пакета или того же пакета - чужой пакет отдельный
// ресурс. Пересечение полуоткрытое: стык "впритык" конфликтом не считается.
func findConflict(bookings []*domain.Booking, start, end time.Time, packageID *string) *domain.Booking {
	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		if !b.ConstrainsPackage(packageID) {
			continue
		}
		// Вырожденный интервал не блокирует - политика в пользу доступности
		if !b.End.After(b.Start) {
			continue
		}
		if domain.Overlaps(start, end, b.Start, b.End) {
			return b
		}
	}
	return nil
}
