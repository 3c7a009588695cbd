package check_availability

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	checkAvailability "github.com/nkmlv/photobooth-booking/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available       bool   `json:"available"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

// parseQuery разбирает query-параметры: start (RFC3339), durationMinutes,
// packageId (опционально)
func parseQuery(query url.Values) (*checkAvailability.Request, error) {
	rawStart := query.Get("start")
	if rawStart == "" {
		return nil, fmt.Errorf("start is required")
	}
	start, err := time.Parse(time.RFC3339, rawStart)
	if err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}

	rawDuration := query.Get("durationMinutes")
	if rawDuration == "" {
		return nil, fmt.Errorf("durationMinutes is required")
	}
	duration, err := strconv.Atoi(rawDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid durationMinutes: %w", err)
	}

	req := &checkAvailability.Request{
		Start:           start,
		DurationMinutes: duration,
	}

	if packageID := query.Get("packageId"); packageID != "" {
		req.PackageID = &packageID
	}

	return req, nil
}

// fromUseCaseResponse конвертирует ответ use case в HTTP response
func fromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:       resp.Available,
		Start:           resp.Start.Format(time.RFC3339),
		End:             resp.End.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
	}
}
