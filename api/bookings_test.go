package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vkarpenko/flightgate/internal/domain"
	"github.com/vkarpenko/flightgate/internal/service/booking"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Create(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := []byte(`{
		"passenger_name": "Jane Smith",
		"passport_number": "X1234567",
		"airline_code": "QF",
		"departure_airport": "SYD",
		"arrival_airport": "SIN",
		"departure_time": "2025-06-01T09:00:00",
		"arrival_time": "2025-06-01T15:20:00",
		"price": 450.50
	}`)
	c.Request = httptest.NewRequest("POST", "/bookings/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	created := &domain.Booking{
		ID:               7,
		PassengerName:    "Jane Smith",
		PassportNumber:   "X1234567",
		AirlineCode:      "QF",
		DepartureAirport: "SYD",
		ArrivalAirport:   "SIN",
		DepartureTime:    "2025-06-01T09:00:00",
		ArrivalTime:      "2025-06-01T15:20:00",
		Price:            decimal.RequireFromString("450.50"),
		Currency:         "USD",
		TripType:         "one-way",
		CreatedAt:        time.Now(),
	}

	mockService.On("Create", c.Request.Context(), mock.MatchedBy(func(input booking.CreateBookingInput) bool {
		return input.PassengerName != nil && *input.PassengerName == "Jane Smith" &&
			input.Price != nil && input.Price.Equal(decimal.RequireFromString("450.50"))
	})).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Success   bool           `json:"success"`
		Message   string         `json:"message"`
		BookingID int64          `json:"booking_id"`
		Booking   map[string]any `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Booking created successfully", response.Message)
	assert.Equal(t, int64(7), response.BookingID)
	assert.Equal(t, "450.50", response.Booking["price"])
	assert.Equal(t, "USD", response.Booking["currency"])

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_missingFields(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := []byte(`{"passenger_name": "Jane Smith"}`)
	c.Request = httptest.NewRequest("POST", "/bookings/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	missing := &booking.MissingFieldsError{Fields: []string{"passport_number", "price"}}
	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("booking.CreateBookingInput")).
		Return(nil, missing)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Missing required fields: passport_number, price", response["error"])
}

func TestBookingHandler_create_persistenceError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/bookings/", bytes.NewReader([]byte(`{}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("booking.CreateBookingInput")).
		Return(nil, assert.AnError)

	handler.create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Failed to create booking", response["error"])
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/bookings/list/", nil)

	now := time.Now()
	bookings := []domain.Booking{
		{ID: 2, PassengerName: "Second", Price: decimal.RequireFromString("120.00"), Currency: "USD", CreatedAt: now},
		{ID: 1, PassengerName: "First", Price: decimal.RequireFromString("99.9"), Currency: "USD", CreatedAt: now.Add(-time.Hour)},
	}
	mockService.On("List", c.Request.Context()).Return(bookings, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success  bool             `json:"success"`
		Bookings []map[string]any `json:"bookings"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Bookings, 2)
	assert.Equal(t, float64(2), response.Bookings[0]["id"])
	assert.Equal(t, "120.00", response.Bookings[0]["price"])
	assert.Equal(t, "99.90", response.Bookings[1]["price"])
	assert.NotEmpty(t, response.Bookings[0]["created_at"])

	mockService.AssertExpectations(t)
}

func TestBookingHandler_list_error(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/bookings/list/", nil)

	mockService.On("List", c.Request.Context()).Return(nil, assert.AnError)

	handler.list(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Failed to fetch bookings", response["error"])
}
