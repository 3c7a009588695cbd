package booking

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nkmlv/photobooth-booking/internal/domain"
)

// Нормализатор: ремонт сырых записей из мутабельного клиентского хранилища.
// Каждая запись обрабатывается независимо - битая запись выбрасывается из
// результата (с логированием), но никогда не валит весь батч.

// normalizeAll восстанавливает канонические бронирования из сырых записей.
// Порядок записей сохраняется, невосстановимые записи пропускаются.
func normalizeAll(rawList []json.RawMessage, now time.Time, log Logger) []*domain.Booking {
	bookings := make([]*domain.Booking, 0, len(rawList))

	for i, raw := range rawList {
		b, err := normalizeRecord(raw, now)
		if err != nil {
			log.Warn("normalize: dropping record #%d: %v", i, err)
			continue
		}
		bookings = append(bookings, b)
	}

	return bookings
}

// normalizeRecord восстанавливает одно бронирование из сырой записи.
// Запись невосстановима, только если не разбирается JSON или не удаётся
// получить валидный интервал start/end - всё остальное ремонтируется.
func normalizeRecord(data json.RawMessage, now time.Time) (*domain.Booking, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("not an object: %v", err)
	}

	start, ok := asInstant(raw["start"])
	if !ok {
		return nil, fmt.Errorf("invalid or missing start")
	}

	end, ok := asInstant(raw["end"])
	if !ok {
		return nil, fmt.Errorf("invalid or missing end")
	}

	// Вырожденный интервал ремонтируем по сохранённой длительности
	if !end.After(start) {
		dur, ok := asNumber(raw["durationMinutes"])
		if !ok || dur <= 0 {
			return nil, fmt.Errorf("end is not after start and duration is unusable")
		}
		end = start.Add(time.Duration(dur) * time.Minute)
	}

	// durationMinutes производное поле - всегда синхронизируется с end-start.
	// Интервалы короче минуты округляются вверх до одной минуты.
	duration := int(math.Round(end.Sub(start).Minutes()))
	if duration < 1 {
		duration = 1
	}

	status := coerceStatus(raw["status"])

	createdAt, okCreated := asInstant(raw["createdAt"])
	updatedAt, okUpdated := asInstant(raw["updatedAt"])

	history := parseHistory(raw["statusHistory"])
	if !okCreated {
		if len(history) > 0 {
			createdAt = history[0].At
		} else {
			createdAt = now
		}
	}

	history = repairHistory(history, status, createdAt)

	if !okUpdated {
		updatedAt = history[len(history)-1].At
	}
	if updatedAt.Before(createdAt) {
		updatedAt = createdAt
	}

	id, _ := asString(raw["id"])
	if strings.TrimSpace(id) == "" {
		id = newBookingID(now)
	}

	b := &domain.Booking{
		ID:              id,
		Start:           start,
		End:             end,
		DurationMinutes: duration,
		PackageID:       asOptString(raw["packageId"]),
		Customer:        parseCustomer(raw["customer"]),
		Status:          status,
		StatusHistory:   history,
		Price:           asOptNumber(raw["price"]),
		Notes:           asOptString(raw["notes"]),
		Guests:          asOptPositiveInt(raw["guests"]),
		Venue:           asOptString(raw["venue"]),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}

	return b, nil
}

// newBookingID генерирует идентификатор бронирования: временная метка плюс
// случайный суффикс. Коллизионная стойкость best-effort, не криптографическая.
func newBookingID(now time.Time) string {
	return fmt.Sprintf("bk-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// coerceStatus приводит произвольное значение к закрытому набору статусов.
// Неизвестное значение трактуется как booked.
func coerceStatus(v interface{}) domain.BookingStatus {
	s, _ := asString(v)
	status := domain.BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return domain.FallbackStatus
	}
	return status
}

// parseHistory разбирает сырую историю статусов, отбрасывая нечитаемые записи
func parseHistory(v interface{}) []domain.StatusChange {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}

	history := make([]domain.StatusChange, 0, len(list))
	for _, item := range list {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		s, _ := asString(entry["status"])
		status := domain.BookingStatus(strings.ToLower(strings.TrimSpace(s)))
		if !status.IsValid() {
			continue
		}

		at, ok := asInstant(entry["at"])
		if !ok {
			continue
		}

		history = append(history, domain.StatusChange{
			Status: status,
			At:     at,
			Reason: asOptString(entry["reason"]),
		})
	}

	return history
}

// repairHistory приводит историю к инвариантам: непустая, метки времени
// неубывающие, последняя запись совпадает с текущим статусом
func repairHistory(history []domain.StatusChange, status domain.BookingStatus, createdAt time.Time) []domain.StatusChange {
	if len(history) == 0 {
		return []domain.StatusChange{{Status: status, At: createdAt}}
	}

	for i := 1; i < len(history); i++ {
		if history[i].At.Before(history[i-1].At) {
			history[i].At = history[i-1].At
		}
	}

	if history[len(history)-1].Status != status {
		history = append(history, domain.StatusChange{
			Status: status,
			At:     history[len(history)-1].At,
		})
	}

	return history
}

// parseCustomer разбирает контактный блок клиента
func parseCustomer(v interface{}) domain.Customer {
	m, ok := v.(map[string]interface{})
	if !ok {
		return domain.Customer{}
	}

	name, _ := asString(m["name"])
	email, _ := asString(m["email"])
	phone, _ := asString(m["phone"])

	return domain.Customer{Name: name, Email: email, Phone: phone}
}

// Коэрции для значений из loosely-typed хранилища

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asOptString(v interface{}) *string {
	s, ok := asString(v)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// asNumber принимает и JSON-число, и числовую строку
func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func asOptNumber(v interface{}) *float64 {
	f, ok := asNumber(v)
	if !ok {
		return nil
	}
	return &f
}

func asOptPositiveInt(v interface{}) *int {
	f, ok := asNumber(v)
	if !ok || f < 1 {
		return nil
	}
	n := int(f)
	return &n
}

// instantFormats форматы меток времени, встречающиеся в сыром хранилище
var instantFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	domain.DateFormat,
}

// asInstant разбирает метку времени: строковые форматы или epoch-миллисекунды
// (клиентское хранилище пишет Date.getTime()). Значения, похожие на секунды,
// тоже принимаются.
func asInstant(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, format := range instantFormats {
			if parsed, err := time.Parse(format, s); err == nil {
				return parsed, true
			}
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return epochToTime(f)
		}
		return time.Time{}, false
	case float64:
		return epochToTime(t)
	}
	return time.Time{}, false
}

// epochToTime различает секунды и миллисекунды по порядку величины
func epochToTime(f float64) (time.Time, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return time.Time{}, false
	}
	if f >= 1e11 { // миллисекунды
		return time.UnixMilli(int64(f)), true
	}
	return time.Unix(int64(f), 0), true
}
