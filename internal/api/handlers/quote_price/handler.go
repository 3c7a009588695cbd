package quote_price

import (
	"errors"
	"net/http"

	"github.com/nkmlv/photobooth-booking/internal/api/handlers"
	quotePrice "github.com/nkmlv/photobooth-booking/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPackageRequired    = "не передан пакет для расчёта цены"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quote
// Тело запроса - сырой пакет как есть: {basePrice, travelFee, addOns, discount, tax, deposit}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var rawPackage map[string]interface{}
	if err := handlers.DecodeJSON(r, &rawPackage); err != nil {
		h.logger.Warn("POST /quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quotePrice.Request{Package: rawPackage})
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /quote - Missing package: %v", err)
			handlers.RespondBadRequest(w, msgPackageRequired)
		default:
			h.logger.Error("POST /quote - Failed to compute quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
