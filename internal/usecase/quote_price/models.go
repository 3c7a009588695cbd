package quote_price

import "github.com/nkmlv/photobooth-booking/internal/domain"

// Request сырой пакет из каталога: loosely-typed мешок полей
type Request struct {
	Package map[string]interface{}
}

// Response раскладка цены пакета
type Response struct {
	Base           float64  `json:"base"`
	Travel         float64  `json:"travel"`
	AddonsTotal    float64  `json:"addonsTotal"`
	Subtotal       float64  `json:"subtotal"`
	DiscountAmount float64  `json:"discountAmount"`
	TaxAmount      float64  `json:"taxAmount"`
	Total          float64  `json:"total"`
	Deposit        *float64 `json:"deposit,omitempty"`
}

// FromDomainBreakdown конвертирует доменную раскладку в response модель
func FromDomainBreakdown(b domain.PriceBreakdown) *Response {
	return &Response{
		Base:           b.Base,
		Travel:         b.Travel,
		AddonsTotal:    b.AddonsTotal,
		Subtotal:       b.Subtotal,
		DiscountAmount: b.DiscountAmount,
		TaxAmount:      b.TaxAmount,
		Total:          b.Total,
		Deposit:        b.Deposit,
	}
}
