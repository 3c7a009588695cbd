package create_booking

import "time"

// Draft черновик бронирования из формы. Loosely-typed мешок полей:
// форма-коллаборатор присылает альтернативные имена для одних и тех же
// данных (fullName/firstName+lastName/name, start/date+time и т.д.),
// все варианты принимаются здесь и разрешаются валидатором.
type Draft struct {
	FullName  *string `json:"fullName,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Name      *string `json:"name,omitempty"`

	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`

	Start *string `json:"start,omitempty"` // абсолютная метка, либо date+time
	Date  *string `json:"date,omitempty"`  // "2025-10-15"
	Time  *string `json:"time,omitempty"`  // "10:00"

	DurationMinutes *float64 `json:"durationMinutes,omitempty"`
	Duration        *float64 `json:"duration,omitempty"`

	Guests     *float64 `json:"guests,omitempty"`
	GuestCount *float64 `json:"guestCount,omitempty"`

	PackageID   *string `json:"packageId,omitempty"`
	PackageName *string `json:"packageName,omitempty"`

	Venue   *string `json:"venue,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`

	// Квота цены на момент бронирования (снапшот, не пересчёт)
	Price *float64 `json:"price,omitempty"`

	// true | "1" | "yes" | "on" | 1 - формы присылают что угодно
	TermsAccepted interface{} `json:"termsAccepted,omitempty"`
	AgreeToTerms  interface{} `json:"agreeToTerms,omitempty"`
}

// resolvedDraft черновик после валидации: строгие типы, альтернативные
// имена полей уже разрешены
type resolvedDraft struct {
	name      string
	email     string
	phone     string
	start     time.Time
	duration  int
	guests    *int
	packageID *string
	venue     *string
	notes     *string
	price     *float64
}
