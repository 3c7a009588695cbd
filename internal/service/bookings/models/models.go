package models

import (
	"errors"
	"strings"
	"time"

	"github.com/nkmlv/photobooth-booking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ApplyStatusRequest запрос на присвоение статуса бронированию
type ApplyStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status    *string    `json:"status,omitempty"`
	StartFrom *time.Time `json:"startFrom,omitempty"`
	StartTo   *time.Time `json:"startTo,omitempty"`
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartFrom: r.StartFrom,
		StartTo:   r.StartTo,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// StatusChangeResponse одна запись истории статусов
type StatusChangeResponse struct {
	Status string  `json:"status"`
	At     string  `json:"at"`
	Reason *string `json:"reason,omitempty"`
}

// CustomerResponse контактные данные клиента
type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID              string                 `json:"id"`
	Start           string                 `json:"start"`
	End             string                 `json:"end"`
	DurationMinutes int                    `json:"durationMinutes"`
	PackageID       *string                `json:"packageId,omitempty"`
	Customer        CustomerResponse       `json:"customer"`
	Status          string                 `json:"status"`
	StatusHistory   []StatusChangeResponse `json:"statusHistory"`
	Price           *float64               `json:"price,omitempty"`
	Notes           *string                `json:"notes,omitempty"`
	Guests          *int                   `json:"guests,omitempty"`
	Venue           *string                `json:"venue,omitempty"`
	CreatedAt       string                 `json:"createdAt"`
	UpdatedAt       string                 `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// ToDomainBookingStatus валидирует и конвертирует статус из строки
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainBooking конвертирует доменное бронирование в response модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	history := make([]StatusChangeResponse, 0, len(b.StatusHistory))
	for _, change := range b.StatusHistory {
		history = append(history, StatusChangeResponse{
			Status: string(change.Status),
			At:     change.At.Format(time.RFC3339Nano),
			Reason: change.Reason,
		})
	}

	return &BookingResponse{
		ID:              b.ID,
		Start:           b.Start.Format(time.RFC3339Nano),
		End:             b.End.Format(time.RFC3339Nano),
		DurationMinutes: b.DurationMinutes,
		PackageID:       b.PackageID,
		Customer: CustomerResponse{
			Name:  b.Customer.Name,
			Email: b.Customer.Email,
			Phone: b.Customer.Phone,
		},
		Status:        string(b.Status),
		StatusHistory: history,
		Price:         b.Price,
		Notes:         b.Notes,
		Guests:        b.Guests,
		Venue:         b.Venue,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result, Total: len(result)}
}
