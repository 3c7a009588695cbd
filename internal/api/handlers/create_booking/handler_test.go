package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nkmlv/photobooth-booking/internal/api/handlers"
	"github.com/nkmlv/photobooth-booking/internal/domain"
	"github.com/nkmlv/photobooth-booking/internal/service/bookings/models"
	createBooking "github.com/nkmlv/photobooth-booking/internal/usecase/create_booking"
)

// MockCreateBookingUseCase мок use case создания бронирования
type MockCreateBookingUseCase struct {
	mock.Mock
}

func (m *MockCreateBookingUseCase) Execute(ctx context.Context, draft *createBooking.Draft) (*domain.Booking, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Тест 1: Успешное создание - 201 с телом бронирования
func TestHandler_Create_Success(t *testing.T) {
	mockUseCase := &MockCreateBookingUseCase{}
	handler := NewHandler(mockUseCase, noopLogger{})

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	created := &domain.Booking{
		ID:              "bk-1",
		Start:           now.Add(24 * time.Hour),
		End:             now.Add(26 * time.Hour),
		DurationMinutes: 120,
		Customer:        domain.Customer{Name: "Anna Smith", Email: "anna@example.com", Phone: "+79001234567"},
		Status:          domain.StatusBooked,
		StatusHistory:   []domain.StatusChange{{Status: domain.StatusBooked, At: now}},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	mockUseCase.On("Execute", mock.Anything, mock.AnythingOfType("*create_booking.Draft")).Return(created, nil).Once()

	body := `{"fullName": "Anna Smith", "email": "anna@example.com", "phone": "+79001234567",
		"start": "2026-06-02T12:00:00Z", "durationMinutes": 120, "termsAccepted": true}`

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	handler.Handle(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bk-1", resp.ID)
	assert.Equal(t, "booked", resp.Status)

	mockUseCase.AssertExpectations(t)
}

// Тест 2: Невалидный черновик - 400 с полным списком проблем
func TestHandler_Create_ValidationErrors(t *testing.T) {
	mockUseCase := &MockCreateBookingUseCase{}
	handler := NewHandler(mockUseCase, noopLogger{})

	validationErr := &createBooking.ValidationError{
		Messages: []string{"name is required", "email is required"},
	}
	mockUseCase.On("Execute", mock.Anything, mock.Anything).Return(nil, validationErr).Once()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{}`))
	handler.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handlers.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"name is required", "email is required"}, resp.Errors)
}

// Тест 3: Занятый слот - 409
func TestHandler_Create_SlotConflict(t *testing.T) {
	mockUseCase := &MockCreateBookingUseCase{}
	handler := NewHandler(mockUseCase, noopLogger{})

	mockUseCase.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrSlotNotAvailable).Once()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{}`))
	handler.Handle(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// Тест 4: Некорректный JSON - 400 без обращения к use case
func TestHandler_Create_InvalidBody(t *testing.T) {
	mockUseCase := &MockCreateBookingUseCase{}
	handler := NewHandler(mockUseCase, noopLogger{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{not json`))
	handler.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

// Тест 5: Внутренняя ошибка - 500
func TestHandler_Create_InternalError(t *testing.T) {
	mockUseCase := &MockCreateBookingUseCase{}
	handler := NewHandler(mockUseCase, noopLogger{})

	mockUseCase.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrInternal).Once()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{}`))
	handler.Handle(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
