package domain

// AdjustmentKind вид корректировки цены: фиксированная сумма или процент
type AdjustmentKind string

const (
	AdjustmentFixed   AdjustmentKind = "fixed"
	AdjustmentPercent AdjustmentKind = "percent"
)

// Adjustment нормализованная корректировка цены (скидка, налог, депозит).
// Источник данных допускает и голое число (= fixed), и объект {type, value};
// обе формы приводятся к этому виду один раз на границе (см. pricing.ParsePackage).
type Adjustment struct {
	Kind  AdjustmentKind
	Value float64
}

// IsPercent returns true if the adjustment is percent-based
func (a Adjustment) IsPercent() bool {
	return a.Kind == AdjustmentPercent
}

// AddOn дополнительная услуга пакета
type AddOn struct {
	Name     string
	Price    float64
	Quantity int
}

// Package represents an immutable pricing snapshot passed into the pricing engine.
// Не персистится ядром - приходит от каталога пакетов как входной параметр.
type Package struct {
	ID        string
	Name      string
	BasePrice float64
	TravelFee float64
	AddOns    []AddOn
	Discount  *Adjustment
	Tax       *Adjustment
	Deposit   *Adjustment
}

// PriceBreakdown represents the staged price computation for a package.
// Все поля неотрицательны и округлены до 2 знаков на выходе.
type PriceBreakdown struct {
	Base           float64
	Travel         float64
	AddonsTotal    float64
	Subtotal       float64 // base + addons + travel, до скидки и налога
	DiscountAmount float64
	TaxAmount      float64
	Total          float64
	Deposit        *float64 // заполняется только если депозит запрошен
}
