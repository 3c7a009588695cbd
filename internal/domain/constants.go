package domain

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 1440 // сутки

	MinGuests = 1
	MaxGuests = 1000 // sanity ceiling

	MinNameLength = 2

	MinPhoneDigits = 7
	MaxPhoneDigits = 15

	// MinLeadTimeMinutes минимальное время до начала бронирования
	MinLeadTimeMinutes = 10
	// MaxAdvanceDays максимальный горизонт бронирования (~2 года)
	MaxAdvanceDays = 730
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// FallbackStatus статус, присваиваемый при неизвестном значении в хранилище
const FallbackStatus = StatusBooked

// AllStatuses полный закрытый набор статусов.
// Используется нормализатором для приведения значений из хранилища.
var AllStatuses = []BookingStatus{
	StatusDraft,
	StatusBooked,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}
