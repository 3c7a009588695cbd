package create_booking

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/nkmlv/photobooth-booking/internal/domain"
)

// Валидатор черновика. Все проверки выполняются независимо и складывают
// сообщения в один список - без short-circuit, чтобы форма могла показать
// пользователю сразу все проблемы.

// Структурная проверка email: один @, допустимый набор символов в локальной
// части, в домене минимум одна метка плюс TLD из 2+ букв
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}$`)

// startFormats допустимые форматы абсолютной метки начала
var startFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// validateDraft валидирует черновик и разрешает альтернативные имена полей.
// Возвращает строгие значения и полный список сообщений об ошибках;
// пустой список означает валидный черновик.
func validateDraft(d *Draft, now time.Time) (resolvedDraft, []string) {
	var resolved resolvedDraft
	var errs []string

	// Имя: fullName -> firstName+lastName -> name, первый непустой вариант
	name := resolveName(d)
	switch {
	case name == "":
		errs = append(errs, "name is required")
	case len([]rune(name)) < domain.MinNameLength:
		errs = append(errs, "name must be at least 2 characters")
	default:
		resolved.name = name
	}

	// Email
	if d.Email == nil || strings.TrimSpace(*d.Email) == "" {
		errs = append(errs, "email is required")
	} else if email := strings.TrimSpace(*d.Email); !emailPattern.MatchString(email) {
		errs = append(errs, "email is invalid")
	} else {
		resolved.email = email
	}

	// Телефон
	if d.Phone == nil || strings.TrimSpace(*d.Phone) == "" {
		errs = append(errs, "phone is required")
	} else if digits, ok := phoneDigits(*d.Phone); !ok {
		errs = append(errs, "phone contains invalid characters")
	} else if digits < domain.MinPhoneDigits || digits > domain.MaxPhoneDigits {
		errs = append(errs, "phone must contain 7 to 15 digits")
	} else {
		resolved.phone = strings.TrimSpace(*d.Phone)
	}

	// Начало: абсолютная метка start либо пара date+time
	start, ok := resolveStart(d)
	switch {
	case !ok:
		errs = append(errs, "start time is required or invalid")
	case start.Before(now.Add(domain.MinLeadTimeMinutes * time.Minute)):
		errs = append(errs, "start time must be at least 10 minutes in the future")
	case start.After(now.AddDate(0, 0, domain.MaxAdvanceDays)):
		errs = append(errs, "start time is too far in the future")
	default:
		resolved.start = start
	}

	// Длительность: целые минуты в [5, 1440]
	duration := firstNumber(d.DurationMinutes, d.Duration)
	switch {
	case duration == nil:
		errs = append(errs, "duration is required")
	case *duration != math.Trunc(*duration):
		errs = append(errs, "duration must be a whole number of minutes")
	case *duration < domain.MinDurationMinutes || *duration > domain.MaxDurationMinutes:
		errs = append(errs, "duration must be between 5 and 1440 minutes")
	default:
		resolved.duration = int(*duration)
	}

	// Гости: опционально, но если указаны - положительное целое с потолком
	if guests := firstNumber(d.Guests, d.GuestCount); guests != nil {
		switch {
		case *guests != math.Trunc(*guests) || *guests < domain.MinGuests:
			errs = append(errs, "guests must be a positive integer")
		case *guests > domain.MaxGuests:
			errs = append(errs, "guests cannot exceed 1000")
		default:
			n := int(*guests)
			resolved.guests = &n
		}
	}

	// Согласие с условиями: толерантный набор truthy-представлений
	if !isTruthy(d.TermsAccepted) && !isTruthy(d.AgreeToTerms) {
		errs = append(errs, "terms must be accepted")
	}

	resolved.packageID = firstString(d.PackageID, d.PackageName)
	resolved.venue = firstString(d.Venue, d.Address)
	resolved.notes = firstString(d.Notes)
	if d.Price != nil && *d.Price >= 0 {
		resolved.price = d.Price
	}

	return resolved, errs
}

// resolveName разрешает имя по приоритету: fullName, firstName+lastName, name
func resolveName(d *Draft) string {
	if d.FullName != nil && strings.TrimSpace(*d.FullName) != "" {
		return strings.TrimSpace(*d.FullName)
	}

	first := ""
	last := ""
	if d.FirstName != nil {
		first = strings.TrimSpace(*d.FirstName)
	}
	if d.LastName != nil {
		last = strings.TrimSpace(*d.LastName)
	}
	if first != "" || last != "" {
		return strings.TrimSpace(first + " " + last)
	}

	if d.Name != nil {
		return strings.TrimSpace(*d.Name)
	}
	return ""
}

// resolveStart разрешает начало бронирования из start либо date+time
func resolveStart(d *Draft) (time.Time, bool) {
	if d.Start != nil && strings.TrimSpace(*d.Start) != "" {
		s := strings.TrimSpace(*d.Start)
		for _, format := range startFormats {
			if parsed, err := time.Parse(format, s); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	}

	if d.Date != nil && d.Time != nil {
		combined := strings.TrimSpace(*d.Date) + " " + strings.TrimSpace(*d.Time)
		parsed, err := time.ParseInLocation(domain.DateFormat+" "+domain.TimeFormat, combined, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}

	return time.Time{}, false
}

// phoneDigits считает цифры после отбрасывания разделителей и одного
// ведущего плюса. Посторонние символы делают номер невалидным.
func phoneDigits(phone string) (int, bool) {
	s := strings.TrimSpace(phone)
	s = strings.TrimPrefix(s, "+")

	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// разделители допустимы
		default:
			return 0, false
		}
	}
	return digits, true
}

// isTruthy проверяет согласие в толерантном наборе представлений
func isTruthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "1" || s == "yes" || s == "on"
	case float64:
		return t == 1
	}
	return false
}

// firstNumber возвращает первый непустой из вариантов
func firstNumber(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// firstString возвращает первый непустой (после trim) из вариантов
func firstString(values ...*string) *string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			trimmed := strings.TrimSpace(*v)
			return &trimmed
		}
	}
	return nil
}
