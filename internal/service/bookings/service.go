package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/nkmlv/photobooth-booking/internal/infra/events"
	bookingRepo "github.com/nkmlv/photobooth-booking/internal/infra/storage/booking"
	"github.com/nkmlv/photobooth-booking/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований.
//
// Граф переходов статусов намеренно не ограничивается: любой переход легален,
// включая no-op (повторное присвоение того же статуса). Обязательный инвариант
// один - каждое присвоение статуса дописывает запись аудит-лога (см. репозиторий).
type Service struct {
	bookingRepo BookingRepository
	producer    EventProducer
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// producer может быть nil - тогда события не публикуются.
func NewService(bookingRepo BookingRepository, producer EventProducer, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		producer:    producer,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает список бронирований с фильтрацией по статусу и периоду
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ApplyStatus присваивает бронированию статус и дописывает запись истории.
// Вызов с текущим статусом тоже легален и тоже попадает в историю:
// аудит-лог фиксирует каждую попытку смены статуса.
func (s *Service) ApplyStatus(ctx context.Context, bookingID string, req *models.ApplyStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("ApplyStatus: booking id=%s, status=%s", bookingID, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("ApplyStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.ApplyStatus(ctx, bookingID, status, req.Reason)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ApplyStatus: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ApplyStatus: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ApplyStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ApplyStatus: booking id=%s now has status=%s, history length=%d",
		bookingID, booking.Status, len(booking.StatusHistory))

	// События best-effort: сбой публикации не откатывает смену статуса
	if s.producer != nil {
		event := events.BookingEvent{
			Type:      events.TypeBookingStatusChanged,
			BookingID: booking.ID,
			Status:    string(booking.Status),
			Reason:    req.Reason,
			At:        booking.UpdatedAt,
		}
		if err := s.producer.Publish(ctx, booking.ID, event); err != nil {
			s.logger.Warn("ApplyStatus: failed to publish status change event for booking id=%s: %v", bookingID, err)
		}
	}

	return models.FromDomainBooking(booking), nil
}
