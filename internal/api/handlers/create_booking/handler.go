package create_booking

import (
	"errors"
	"net/http"

	"github.com/nkmlv/photobooth-booking/internal/api/handlers"
	"github.com/nkmlv/photobooth-booking/internal/service/bookings/models"
	createBooking "github.com/nkmlv/photobooth-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDraftInvalid       = "черновик бронирования не прошёл валидацию"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var draft createBooking.Draft
	if err := handlers.DecodeJSON(r, &draft); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &draft)
	if err != nil {
		var validationErr *createBooking.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Draft validation failed: %d problem(s)", len(validationErr.Messages))
			handlers.RespondValidationErrors(w, msgDraftInvalid, validationErr.Messages)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available")
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result))
}
