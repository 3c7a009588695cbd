package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nkmlv/photobooth-booking/internal/domain"
	"github.com/nkmlv/photobooth-booking/pkg/ptr"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) LoadAll(ctx context.Context) ([]*domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad time literal %q: %v", value, err)
	}
	return parsed
}

func booked(id, start, end string, packageID *string) *domain.Booking {
	s, _ := time.Parse(time.RFC3339, start)
	e, _ := time.Parse(time.RFC3339, end)
	return &domain.Booking{
		ID:        id,
		Start:     s,
		End:       e,
		PackageID: packageID,
		Status:    domain.StatusBooked,
	}
}

// ============================ Тесты для UseCase ============================

// Тест 1: Пересекающийся слот занят
func TestCheckAvailability_Conflict(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, noopLogger{})

	ctx := context.Background()
	existing := booked("bk-1", "2026-06-02T09:00:00Z", "2026-06-02T10:00:00Z", nil)
	mockRepo.On("LoadAll", ctx).Return([]*domain.Booking{existing}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{
		Start:           mustTime(t, "2026-06-02T09:30:00Z"),
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, mustTime(t, "2026-06-02T10:30:00Z"), resp.End)
}

// Тест 2: Слот "впритык" свободен
func TestCheckAvailability_TouchingSlotFree(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, noopLogger{})

	ctx := context.Background()
	existing := booked("bk-1", "2026-06-02T09:00:00Z", "2026-06-02T10:00:00Z", nil)
	mockRepo.On("LoadAll", ctx).Return([]*domain.Booking{existing}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{
		Start:           mustTime(t, "2026-06-02T10:00:00Z"),
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

// Тест 3: Отменённое бронирование слот не занимает
func TestCheckAvailability_CancelledIgnored(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, noopLogger{})

	ctx := context.Background()
	cancelled := booked("bk-1", "2026-06-02T09:00:00Z", "2026-06-02T10:00:00Z", nil)
	cancelled.Status = domain.StatusCancelled
	mockRepo.On("LoadAll", ctx).Return([]*domain.Booking{cancelled}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{
		Start:           mustTime(t, "2026-06-02T09:30:00Z"),
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

// Тест 4: Фильтрация по пакету - чужой пакет не конфликтует
func TestCheckAvailability_PackageFiltering(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, noopLogger{})

	ctx := context.Background()
	silver := booked("bk-1", "2026-06-02T09:00:00Z", "2026-06-02T10:00:00Z", ptr.Ptr("silver"))
	packageless := booked("bk-2", "2026-06-02T14:00:00Z", "2026-06-02T15:00:00Z", nil)
	mockRepo.On("LoadAll", ctx).Return([]*domain.Booking{silver, packageless}, nil).Twice()

	// Чужой пакет - отдельный ресурс
	resp, err := uc.Execute(ctx, &Request{
		Start:           mustTime(t, "2026-06-02T09:30:00Z"),
		DurationMinutes: 60,
		PackageID:       ptr.Ptr("gold"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)

	// Бронирование без пакета ограничивает любой пакет
	resp, err = uc.Execute(ctx, &Request{
		Start:           mustTime(t, "2026-06-02T14:30:00Z"),
		DurationMinutes: 60,
		PackageID:       ptr.Ptr("gold"),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

// Тест 5: Вырожденный интервал не блокирует слот
func TestCheckAvailability_DegenerateIntervalIgnored(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, noopLogger{})

	ctx := context.Background()
	degenerate := booked("bk-1", "2026-06-02T09:00:00Z", "2026-06-02T09:00:00Z", nil)
	mockRepo.On("LoadAll", ctx).Return([]*domain.Booking{degenerate}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{
		Start:           mustTime(t, "2026-06-02T09:00:00Z"),
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

// Тест 6: Структурно невозможный вход отклоняется
func TestCheckAvailability_InvalidInput(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, noopLogger{})

	ctx := context.Background()

	// Неположительная длительность
	_, err := uc.Execute(ctx, &Request{
		Start:           mustTime(t, "2026-06-02T09:00:00Z"),
		DurationMinutes: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Нулевое время начала
	_, err = uc.Execute(ctx, &Request{DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrInvalidInput)

	mockRepo.AssertNotCalled(t, "LoadAll", mock.Anything)
}

// Тест 7: Ошибка хранилища оборачивается в ErrInternal
func TestCheckAvailability_StoreError(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, noopLogger{})

	ctx := context.Background()
	mockRepo.On("LoadAll", ctx).Return(nil, errors.New("store is down")).Once()

	_, err := uc.Execute(ctx, &Request{
		Start:           mustTime(t, "2026-06-02T09:00:00Z"),
		DurationMinutes: 60,
	})

	assert.ErrorIs(t, err, ErrInternal)
}
