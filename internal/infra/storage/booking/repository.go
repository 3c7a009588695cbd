package booking

import (
	"context"
	"fmt"

	"github.com/nkmlv/photobooth-booking/internal/domain"
)

// Repository репозиторий бронирований поверх плоского key-value хранилища.
//
// Коллекция хранится целиком как JSON-массив под одним ключом. Каждая мутация
// перечитывает всю коллекцию, меняет одну запись и пишет коллекцию обратно.
// Хранилище не даёт ни транзакций, ни блокировок, поэтому политика
// конкурентности - last-write-wins на уровне всей коллекции: два одновременных
// писателя могут молча затереть несвязанные изменения друг друга. Это
// известное, принятое ограничение дизайна, не решённая задача.
type Repository struct {
	store        RecordStore
	key          string
	timeProvider TimeProvider
	logger       Logger
}

// NewRepository создает новый экземпляр репозитория бронирований.
// key - ключ хранилища, под которым лежит вся коллекция.
func NewRepository(store RecordStore, key string, logger Logger) *Repository {
	return &Repository{
		store:        store,
		key:          key,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// LoadAll читает и нормализует всю коллекцию бронирований.
// Отсутствие ключа и нечитаемый payload трактуются как пустая коллекция.
func (r *Repository) LoadAll(ctx context.Context) ([]*domain.Booking, error) {
	payload, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - store get: %v", ErrStoreRead, err)
	}
	if !ok || payload == "" {
		return []*domain.Booking{}, nil
	}

	rawList, ok := decodeCollection(payload)
	if !ok {
		r.logger.Warn("LoadAll: collection payload is not a JSON array, treating as empty")
		return []*domain.Booking{}, nil
	}

	return normalizeAll(rawList, r.timeProvider.Now(), r.logger), nil
}

// List возвращает бронирования, попадающие под фильтр
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	bookings, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Matches(b) {
			result = append(result, b)
		}
	}

	return result, nil
}

// GetByID возвращает бронирование по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	bookings, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}

	return nil, ErrBookingNotFound
}

// Create добавляет новое бронирование в коллекцию.
// Идентификатор генерируется, если не задан; история инициализируется
// одной записью с текущим статусом.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	now := r.timeProvider.Now()

	bookings, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	if b.ID == "" {
		b.ID = newBookingID(now)
	}
	if !b.Status.IsValid() {
		b.Status = domain.FallbackStatus
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	if len(b.StatusHistory) == 0 {
		b.StatusHistory = []domain.StatusChange{{Status: b.Status, At: now}}
	}

	bookings = append(bookings, b)

	if err := r.save(ctx, bookings); err != nil {
		return nil, err
	}

	return b, nil
}

// ApplyStatus присваивает бронированию статус и дописывает запись аудит-лога.
// Каждый вызов дописывает ровно одну запись истории - включая присвоение
// того же самого статуса. История фиксирует каждую попытку смены, а не
// только чистые переходы: при отсутствии блокировок diff старого и нового
// статуса терял бы информацию, когда два писателя хотят один и тот же переход.
func (r *Repository) ApplyStatus(ctx context.Context, id string, status domain.BookingStatus, reason *string) (*domain.Booking, error) {
	now := r.timeProvider.Now()

	bookings, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var target *domain.Booking
	for _, b := range bookings {
		if b.ID == id {
			target = b
			break
		}
	}
	if target == nil {
		return nil, ErrBookingNotFound
	}

	target.Status = status
	target.StatusHistory = append(target.StatusHistory, domain.StatusChange{
		Status: status,
		At:     now,
		Reason: reason,
	})
	target.UpdatedAt = now

	if err := r.save(ctx, bookings); err != nil {
		return nil, err
	}

	return target, nil
}

// save пишет коллекцию целиком обратно в хранилище
func (r *Repository) save(ctx context.Context, bookings []*domain.Booking) error {
	payload, err := encodeCollection(bookings)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, r.key, payload); err != nil {
		return fmt.Errorf("%w: save - store set: %v", ErrStoreWrite, err)
	}

	return nil
}
