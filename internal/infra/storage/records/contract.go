package records

import "context"

// Store контракт плоского key-value хранилища записей.
// Get возвращает ok=false, если ключ отсутствует - это не ошибка:
// вызывающий код трактует отсутствие ключа как пустую коллекцию.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
}
