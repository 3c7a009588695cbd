package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusDraft     BookingStatus = "draft"
	StatusBooked    BookingStatus = "booked"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsValid returns true if the status belongs to the closed status set
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusBooked, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// StatusChange одна запись аудит-лога смены статуса.
// История append-only: записи никогда не редактируются и не удаляются.
type StatusChange struct {
	Status BookingStatus
	At     time.Time
	Reason *string
}

// Customer контактные данные клиента. Свободная форма, без инвариантов
// кроме того, что блок всегда присутствует у нормализованного бронирования.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Booking represents a photobooth reservation in the system
type Booking struct {
	ID              string
	Start           time.Time
	End             time.Time
	DurationMinutes int
	PackageID       *string // nil = бронирование не привязано к пакету
	Customer        Customer
	Status          BookingStatus
	StatusHistory   []StatusChange
	Price           *float64 // снапшот суммы на момент бронирования, не живой пересчёт
	Notes           *string
	Guests          *int
	Venue           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsActive returns true if the booking still occupies its time slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CurrentStatus возвращает статус из последней записи истории.
// Для нормализованного бронирования совпадает с b.Status.
func (b *Booking) CurrentStatus() BookingStatus {
	if len(b.StatusHistory) == 0 {
		return b.Status
	}
	return b.StatusHistory[len(b.StatusHistory)-1].Status
}

// ConstrainsPackage проверяет, ограничивает ли бронирование проверку
// доступности для указанного пакета. Бронирование без пакета ограничивает
// любой пакет; бронирование другого пакета - нет (модель нескольких ресурсов,
// а не эксклюзивность одного ресурса).
func (b *Booking) ConstrainsPackage(packageID *string) bool {
	if packageID == nil || b.PackageID == nil {
		return true
	}
	return *b.PackageID == *packageID
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [s1,e1) и [s2,e2).
// Стык интервалов (e1 == s2) пересечением НЕ считается - бронирования
// "впритык" допустимы.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	Status    *BookingStatus // Фильтр по статусу (опционально)
	StartFrom *time.Time     // Начало периода (опционально)
	StartTo   *time.Time     // Конец периода (опционально)
}

// Matches проверяет, попадает ли бронирование под фильтр
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.StartFrom != nil && b.Start.Before(*f.StartFrom) {
		return false
	}
	if f.StartTo != nil && b.Start.After(*f.StartTo) {
		return false
	}
	return true
}
