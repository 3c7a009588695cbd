package pricing

import (
	"math"

	"github.com/nkmlv/photobooth-booking/internal/domain"
)

// Движок расчёта цены. Чистые детерминированные функции без I/O: для
// корректно типизированного пакета ошибок не бывает - отрицательные и
// бессмысленные компоненты цены прижимаются к нулю, а не отклоняются,
// потому что данные пакета приходят из loosely-typed хранилища.

// ComputeBreakdown вычисляет поэтапную раскладку цены пакета.
//
// Этапы: addons -> subtotal -> скидка -> налог -> итог. Скидка никогда не
// превышает subtotal, поэтому отрицательный итог невозможен. Налог считается
// от базы ПОСЛЕ скидки. Депозит (если задан) считается от базы после скидки,
// но ДО налога - осознанное решение, чтобы депозит не менялся при смене
// налоговой ставки.
//
// Округление до 2 знаков выполняется один раз на выходе, а не между этапами,
// чтобы ошибка округления не накапливалась по конвейеру.
func ComputeBreakdown(pkg domain.Package) domain.PriceBreakdown {
	base := floor0(pkg.BasePrice)
	travel := floor0(pkg.TravelFee)

	addonsTotal := 0.0
	for _, addon := range pkg.AddOns {
		quantity := addon.Quantity
		if quantity < 1 {
			quantity = 1
		}
		addonsTotal += floor0(addon.Price) * float64(quantity)
	}

	subtotal := base + addonsTotal + travel

	discountAmount := 0.0
	if pkg.Discount != nil {
		if pkg.Discount.IsPercent() {
			discountAmount = subtotal * clamp(pkg.Discount.Value, 0, 100) / 100
		} else {
			discountAmount = clamp(pkg.Discount.Value, 0, subtotal)
		}
	}

	taxedBase := subtotal - discountAmount

	taxAmount := 0.0
	if pkg.Tax != nil {
		if pkg.Tax.IsPercent() {
			taxAmount = taxedBase * clamp(pkg.Tax.Value, 0, 100) / 100
		} else {
			taxAmount = floor0(pkg.Tax.Value)
		}
	}

	total := floor0(taxedBase + taxAmount)

	breakdown := domain.PriceBreakdown{
		Base:           round2(base),
		Travel:         round2(travel),
		AddonsTotal:    round2(addonsTotal),
		Subtotal:       round2(subtotal),
		DiscountAmount: round2(discountAmount),
		TaxAmount:      round2(taxAmount),
		Total:          round2(total),
	}

	if pkg.Deposit != nil {
		deposit := computeDeposit(*pkg.Deposit, taxedBase, total)
		breakdown.Deposit = &deposit
	}

	return breakdown
}

// computeDeposit вычисляет депозит: процент от базы после скидки до налога,
// фиксированная сумма прижимается к [0, total]
func computeDeposit(deposit domain.Adjustment, taxedBase, total float64) float64 {
	if deposit.IsPercent() {
		return round2(taxedBase * clamp(deposit.Value, 0, 100) / 100)
	}
	return round2(clamp(deposit.Value, 0, total))
}

// floor0 прижимает значение снизу к нулю; NaN трактуется как ноль
func floor0(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// clamp прижимает значение к диапазону [lo, hi]; NaN трактуется как lo
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 округляет до 2 знаков (до цента)
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
