package quote_price

import (
	"context"
	"fmt"

	"github.com/nkmlv/photobooth-booking/internal/service/pricing"
)

// UseCase use case расчёта цены пакета. Вызывается независимо от создания
// бронирования: и на этапе квоты, и при подтверждении.
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute разбирает сырой пакет и вычисляет раскладку цены
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if req == nil || req.Package == nil {
		uc.logger.Warn("QuotePrice: package payload is missing")
		return nil, fmt.Errorf("%w: package is required", ErrInvalidInput)
	}

	pkg := pricing.ParsePackage(req.Package)
	breakdown := pricing.ComputeBreakdown(pkg)

	uc.logger.Info("QuotePrice: package=%q subtotal=%.2f total=%.2f", pkg.Name, breakdown.Subtotal, breakdown.Total)

	return FromDomainBreakdown(breakdown), nil
}
