package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/nkmlv/photobooth-booking/internal/domain"
)

// Граница "parse, then operate on strict types": сырой пакет из каталога
// разбирается в строгий domain.Package один раз, дальше движок работает
// только со строгими типами.

// ParsePackage разбирает сырой пакет из loosely-typed источника.
// Никогда не возвращает ошибку: нечитаемые компоненты цены приводятся к нулю,
// нечитаемые корректировки отбрасываются.
func ParsePackage(raw map[string]interface{}) domain.Package {
	pkg := domain.Package{
		BasePrice: numberOrZero(raw["basePrice"]),
		TravelFee: numberOrZero(raw["travelFee"]),
		Discount:  parseAdjustment(raw["discount"]),
		Tax:       parseAdjustment(raw["tax"]),
		Deposit:   parseAdjustment(raw["deposit"]),
	}

	if id, ok := raw["id"].(string); ok {
		pkg.ID = id
	}
	if name, ok := raw["name"].(string); ok {
		pkg.Name = name
	}

	if rawAddOns, ok := raw["addOns"].([]interface{}); ok {
		pkg.AddOns = make([]domain.AddOn, 0, len(rawAddOns))
		for _, item := range rawAddOns {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}

			addon := domain.AddOn{
				Price:    numberOrZero(entry["price"]),
				Quantity: int(math.Floor(numberOr(entry["quantity"], 1))),
			}
			if name, ok := entry["name"].(string); ok {
				addon.Name = name
			}
			pkg.AddOns = append(pkg.AddOns, addon)
		}
	}

	return pkg
}

// parseAdjustment разбирает union-типизированную корректировку:
// голое число = фиксированная сумма, объект {type, value} = явный вид.
// Неизвестный type трактуется как fixed.
func parseAdjustment(v interface{}) *domain.Adjustment {
	switch a := v.(type) {
	case float64, string:
		n, ok := toNumber(a)
		if !ok {
			return nil
		}
		return &domain.Adjustment{Kind: domain.AdjustmentFixed, Value: n}
	case map[string]interface{}:
		value, ok := toNumber(a["value"])
		if !ok {
			return nil
		}

		kind := domain.AdjustmentFixed
		if t, ok := a["type"].(string); ok && strings.EqualFold(strings.TrimSpace(t), "percent") {
			kind = domain.AdjustmentPercent
		}

		return &domain.Adjustment{Kind: kind, Value: value}
	}
	return nil
}

func toNumber(v interface{}) (float64, bool) {
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

func numberOrZero(v interface{}) float64 {
	return numberOr(v, 0)
}

func numberOr(v interface{}, fallback float64) float64 {
	n, ok := toNumber(v)
	if !ok {
		return fallback
	}
	return n
}
