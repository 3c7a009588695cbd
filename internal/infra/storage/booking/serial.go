package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nkmlv/photobooth-booking/internal/domain"
)

// Канонический сериализованный вид бронирования. Формат на диске - не строгая
// схема, а best-effort кэш: любое отсутствующее поле восстанавливается
// нормализатором при следующей загрузке.

// instantFormat формат меток времени в каноническом виде
const instantFormat = time.RFC3339Nano

type storedStatusChange struct {
	Status string  `json:"status"`
	At     string  `json:"at"`
	Reason *string `json:"reason,omitempty"`
}

type storedCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type storedBooking struct {
	ID              string               `json:"id"`
	CreatedAt       string               `json:"createdAt"`
	UpdatedAt       string               `json:"updatedAt"`
	Start           string               `json:"start"`
	End             string               `json:"end"`
	DurationMinutes int                  `json:"durationMinutes"`
	PackageID       *string              `json:"packageId"`
	Customer        storedCustomer       `json:"customer"`
	Status          string               `json:"status"`
	StatusHistory   []storedStatusChange `json:"statusHistory"`
	Price           *float64             `json:"price"`
	Notes           *string              `json:"notes"`
	Guests          *int                 `json:"guests,omitempty"`
	Venue           *string              `json:"venue,omitempty"`
}

// toStored конвертирует доменное бронирование в канонический сериализованный вид
func toStored(b *domain.Booking) storedBooking {
	history := make([]storedStatusChange, 0, len(b.StatusHistory))
	for _, change := range b.StatusHistory {
		history = append(history, storedStatusChange{
			Status: string(change.Status),
			At:     change.At.Format(instantFormat),
			Reason: change.Reason,
		})
	}

	return storedBooking{
		ID:              b.ID,
		CreatedAt:       b.CreatedAt.Format(instantFormat),
		UpdatedAt:       b.UpdatedAt.Format(instantFormat),
		Start:           b.Start.Format(instantFormat),
		End:             b.End.Format(instantFormat),
		DurationMinutes: b.DurationMinutes,
		PackageID:       b.PackageID,
		Customer: storedCustomer{
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
	}
}

// encodeCollection сериализует коллекцию в JSON-массив для записи в хранилище
func encodeCollection(bookings []*domain.Booking) (string, error) {
	stored := make([]storedBooking, 0, len(bookings))
	for _, b := range bookings {
		stored = append(stored, toStored(b))
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("%w: marshal collection: %v", ErrEncode, err)
	}
	return string(data), nil
}

// decodeCollection разбирает сырой JSON-массив на отдельные записи.
// Нечитаемый payload трактуется как пустая коллекция (см. контракт хранилища) -
// разбор отдельных записей выполняет нормализатор поэлементно.
func decodeCollection(payload string) ([]json.RawMessage, bool) {
	var rawList []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &rawList); err != nil {
		return nil, false
	}
	return rawList, true
}
