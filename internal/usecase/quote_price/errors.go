package quote_price

import "errors"

var (
	// ErrInvalidInput возвращается, когда пакет отсутствует целиком.
	// "Некрасивые" данные внутри пакета ошибкой не считаются - движок
	// цен прижимает их к нулю.
	ErrInvalidInput = errors.New("quote_price: invalid input data")
)
