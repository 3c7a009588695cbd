package records

import "errors"

var (
	// ErrRead возвращается при ошибке чтения из хранилища
	ErrRead = errors.New("records: failed to read value")

	// ErrWrite возвращается при ошибке записи в хранилище
	ErrWrite = errors.New("records: failed to write value")
)
