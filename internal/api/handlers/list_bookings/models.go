package list_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/nkmlv/photobooth-booking/internal/domain"
	"github.com/nkmlv/photobooth-booking/internal/service/bookings/models"
)

// parseQuery разбирает query-параметры списка: status, from, to.
// from/to принимают и дату (YYYY-MM-DD), и полную метку RFC3339.
func parseQuery(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if from := query.Get("from"); from != "" {
		parsed, err := parseBoundary(from)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		req.StartFrom = &parsed
	}

	if to := query.Get("to"); to != "" {
		parsed, err := parseBoundary(to)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
		req.StartTo = &parsed
	}

	return req, nil
}

func parseBoundary(s string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		return parsed, nil
	}
	return time.ParseInLocation(domain.DateFormat, s, time.Local)
}
