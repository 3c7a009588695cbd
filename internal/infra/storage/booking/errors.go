package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в коллекции
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrStoreRead возвращается при ошибке чтения коллекции из хранилища
	ErrStoreRead = errors.New("booking.repository: failed to read collection")

	// ErrStoreWrite возвращается при ошибке записи коллекции в хранилище
	ErrStoreWrite = errors.New("booking.repository: failed to write collection")

	// ErrEncode возвращается при ошибке сериализации коллекции
	ErrEncode = errors.New("booking.repository: failed to encode collection")
)
