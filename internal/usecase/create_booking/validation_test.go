package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkmlv/photobooth-booking/pkg/ptr"
)

var validationNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// validDraft полностью валидный черновик - база для негативных кейсов
func validDraft() *Draft {
	return &Draft{
		FullName:        ptr.Ptr("Anna Smith"),
		Email:           ptr.Ptr("anna@example.com"),
		Phone:           ptr.Ptr("+7 (900) 123-45-67"),
		Start:           ptr.Ptr("2026-06-02T10:00:00Z"),
		DurationMinutes: ptr.Ptr(120.0),
		TermsAccepted:   true,
	}
}

// ============================ Тесты для validateDraft ============================

// Тест 1: Валидный черновик - пустой список проблем
func TestValidateDraft_Valid(t *testing.T) {
	resolved, errs := validateDraft(validDraft(), validationNow)

	assert.Empty(t, errs)
	assert.Equal(t, "Anna Smith", resolved.name)
	assert.Equal(t, "anna@example.com", resolved.email)
	assert.Equal(t, 120, resolved.duration)
	assert.False(t, resolved.start.IsZero())
}

// Тест 2: Пустой черновик - все обязательные проблемы собираются разом
func TestValidateDraft_EmptyDraft(t *testing.T) {
	_, errs := validateDraft(&Draft{}, validationNow)

	assert.Contains(t, errs, "name is required")
	assert.Contains(t, errs, "email is required")
	assert.Contains(t, errs, "phone is required")
	assert.Contains(t, errs, "start time is required or invalid")
	assert.Contains(t, errs, "duration is required")
	assert.Contains(t, errs, "terms must be accepted")
	assert.Len(t, errs, 6)
}

// Тест 3: Несколько проблем не маскируют друг друга
func TestValidateDraft_NoShortCircuit(t *testing.T) {
	d := validDraft()
	d.Email = nil
	d.Phone = nil

	_, errs := validateDraft(d, validationNow)

	assert.Contains(t, errs, "email is required")
	assert.Contains(t, errs, "phone is required")
	assert.Len(t, errs, 2)
}

// Тест 4: Разрешение имени по приоритету вариантов
func TestValidateDraft_NameResolution(t *testing.T) {
	testCases := []struct {
		name     string
		draft    func() *Draft
		expected string
	}{
		{
			name: "fullName wins",
			draft: func() *Draft {
				d := validDraft()
				d.Name = ptr.Ptr("Ignored")
				return d
			},
			expected: "Anna Smith",
		},
		{
			name: "firstName plus lastName",
			draft: func() *Draft {
				d := validDraft()
				d.FullName = nil
				d.FirstName = ptr.Ptr("Anna")
				d.LastName = ptr.Ptr("Smith")
				return d
			},
			expected: "Anna Smith",
		},
		{
			name: "firstName only",
			draft: func() *Draft {
				d := validDraft()
				d.FullName = nil
				d.FirstName = ptr.Ptr("Anna")
				return d
			},
			expected: "Anna",
		},
		{
			name: "bare name as fallback",
			draft: func() *Draft {
				d := validDraft()
				d.FullName = nil
				d.Name = ptr.Ptr("  Anna  ")
				return d
			},
			expected: "Anna",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolved, errs := validateDraft(tc.draft(), validationNow)
			assert.Empty(t, errs)
			assert.Equal(t, tc.expected, resolved.name)
		})
	}
}

// Тест 5: Слишком короткое имя
func TestValidateDraft_NameTooShort(t *testing.T) {
	d := validDraft()
	d.FullName = ptr.Ptr("A")

	_, errs := validateDraft(d, validationNow)
	assert.Contains(t, errs, "name must be at least 2 characters")
}

// Тест 6: Структурная проверка email
func TestValidateDraft_Email(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{"anna@example.com", true},
		{"anna.smith+tag@mail.example.co", true},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"anna@example", false},
		{"@example.com", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			d := validDraft()
			d.Email = ptr.Ptr(tc.email)

			_, errs := validateDraft(d, validationNow)
			if tc.valid {
				assert.NotContains(t, errs, "email is invalid")
			} else {
				assert.Contains(t, errs, "email is invalid")
			}
		})
	}
}

// Тест 7: Телефон - разделители допустимы, посторонние символы нет
func TestValidateDraft_Phone(t *testing.T) {
	testCases := []struct {
		name     string
		phone    string
		expected string // пустая строка = валидный
	}{
		{"Plain digits", "79001234567", ""},
		{"Formatted", "+7 (900) 123-45-67", ""},
		{"With dots", "8.900.123.45.67", ""},
		{"Too short", "123456", "phone must contain 7 to 15 digits"},
		{"Too long", "1234567890123456", "phone must contain 7 to 15 digits"},
		{"Letters", "7900abc4567", "phone contains invalid characters"},
		{"Plus in the middle", "7900+1234567", "phone contains invalid characters"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			d.Phone = ptr.Ptr(tc.phone)

			_, errs := validateDraft(d, validationNow)
			if tc.expected == "" {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tc.expected)
			}
		})
	}
}

// Тест 8: Окно начала - минимальный lead time и горизонт
func TestValidateDraft_StartWindow(t *testing.T) {
	// Меньше 10 минут от текущего момента
	soon := validDraft()
	soon.Start = ptr.Ptr(validationNow.Add(5 * time.Minute).Format(time.RFC3339))
	_, errs := validateDraft(soon, validationNow)
	assert.Contains(t, errs, "start time must be at least 10 minutes in the future")

	// Ровно на границе горизонта - валидно
	edge := validDraft()
	edge.Start = ptr.Ptr(validationNow.AddDate(0, 0, 730).Format(time.RFC3339))
	_, errs = validateDraft(edge, validationNow)
	assert.Empty(t, errs)

	// За горизонтом
	far := validDraft()
	far.Start = ptr.Ptr(validationNow.AddDate(0, 0, 731).Format(time.RFC3339))
	_, errs = validateDraft(far, validationNow)
	assert.Contains(t, errs, "start time is too far in the future")
}

// Тест 9: Начало из пары date+time
func TestValidateDraft_StartFromDateAndTime(t *testing.T) {
	d := validDraft()
	d.Start = nil
	d.Date = ptr.Ptr("2026-06-02")
	d.Time = ptr.Ptr("10:00")

	resolved, errs := validateDraft(d, validationNow)
	assert.Empty(t, errs)

	expected, err := time.ParseInLocation("2006-01-02 15:04", "2026-06-02 10:00", time.Local)
	require.NoError(t, err)
	assert.True(t, resolved.start.Equal(expected))
}

// Тест 10: Длительность - целые минуты в допустимом диапазоне
func TestValidateDraft_Duration(t *testing.T) {
	testCases := []struct {
		name     string
		duration float64
		expected string
	}{
		{"Minimum", 5, ""},
		{"Maximum", 1440, ""},
		{"Fractional", 90.5, "duration must be a whole number of minutes"},
		{"Too short", 4, "duration must be between 5 and 1440 minutes"},
		{"Too long", 1441, "duration must be between 5 and 1440 minutes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			d.DurationMinutes = ptr.Ptr(tc.duration)

			_, errs := validateDraft(d, validationNow)
			if tc.expected == "" {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tc.expected)
			}
		})
	}
}

// Тест 11: Альтернативное имя поля длительности
func TestValidateDraft_DurationAlternativeField(t *testing.T) {
	d := validDraft()
	d.DurationMinutes = nil
	d.Duration = ptr.Ptr(60.0)

	resolved, errs := validateDraft(d, validationNow)
	assert.Empty(t, errs)
	assert.Equal(t, 60, resolved.duration)
}

// Тест 12: Гости - опциональны, но при наличии проверяются
func TestValidateDraft_Guests(t *testing.T) {
	// Не указаны - не проблема
	_, errs := validateDraft(validDraft(), validationNow)
	assert.Empty(t, errs)

	testCases := []struct {
		name     string
		guests   float64
		expected string
	}{
		{"Valid", 40, ""},
		{"Zero", 0, "guests must be a positive integer"},
		{"Fractional", 2.5, "guests must be a positive integer"},
		{"Over limit", 1001, "guests cannot exceed 1000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			d.Guests = ptr.Ptr(tc.guests)

			_, errs := validateDraft(d, validationNow)
			if tc.expected == "" {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tc.expected)
			}
		})
	}
}

// Тест 13: Толерантный набор truthy-представлений согласия
func TestValidateDraft_TermsAccepted(t *testing.T) {
	truthy := []interface{}{true, "true", "1", "yes", "on", " YES ", 1.0}
	for _, v := range truthy {
		d := validDraft()
		d.TermsAccepted = v
		_, errs := validateDraft(d, validationNow)
		assert.Empty(t, errs, "value %v must count as accepted", v)
	}

	falsy := []interface{}{false, "false", "0", "no", 0.0, nil}
	for _, v := range falsy {
		d := validDraft()
		d.TermsAccepted = v
		_, errs := validateDraft(d, validationNow)
		assert.Contains(t, errs, "terms must be accepted", "value %v must not count as accepted", v)
	}

	// Альтернативное имя поля
	d := validDraft()
	d.TermsAccepted = nil
	d.AgreeToTerms = "yes"
	_, errs := validateDraft(d, validationNow)
	assert.Empty(t, errs)
}

// Тест 14: Опциональные поля - альтернативные имена и отбрасывание мусора
func TestValidateDraft_OptionalFields(t *testing.T) {
	d := validDraft()
	d.PackageName = ptr.Ptr("gold")
	d.Address = ptr.Ptr("Main St 1")
	d.Notes = ptr.Ptr("  bring props  ")
	d.Price = ptr.Ptr(250.0)

	resolved, errs := validateDraft(d, validationNow)
	assert.Empty(t, errs)

	require.NotNil(t, resolved.packageID)
	assert.Equal(t, "gold", *resolved.packageID)
	require.NotNil(t, resolved.venue)
	assert.Equal(t, "Main St 1", *resolved.venue)
	require.NotNil(t, resolved.notes)
	assert.Equal(t, "bring props", *resolved.notes)
	require.NotNil(t, resolved.price)
	assert.Equal(t, 250.0, *resolved.price)

	// Отрицательная цена отбрасывается, но ошибкой не считается
	negative := validDraft()
	negative.Price = ptr.Ptr(-10.0)
	resolved, errs = validateDraft(negative, validationNow)
	assert.Empty(t, errs)
	assert.Nil(t, resolved.price)
}
