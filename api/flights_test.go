package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vkarpenko/flightgate/internal/amadeus"
	"github.com/vkarpenko/flightgate/internal/domain"
	"github.com/vkarpenko/flightgate/internal/service/search"
)

// MockSearchUseCase is a mock implementation of search.SearchUseCase
type MockSearchUseCase struct {
	mock.Mock
}

func (m *MockSearchUseCase) Search(ctx context.Context, input search.SearchInput) ([]domain.FlightOffer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightOffer), args.Error(1)
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/search/?origin=JFK&destination=LHR&departure_date=2025-06-01&adults=2", nil)

	flights := []domain.FlightOffer{
		{ID: "1", AirlineCode: "BA", AirlineName: "British Airways", Stops: 0, IsDirect: true, Price: "9000000.00", Currency: "IDR", BookableSeats: 4},
	}

	mockService.On("Search", c.Request.Context(), search.SearchInput{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2025-06-01",
		Adults:        2,
	}).Return(flights, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool                 `json:"success"`
		Flights []domain.FlightOffer `json:"flights"`
		Count   int                  `json:"count"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "British Airways", response.Flights[0].AirlineName)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_missingParams(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/search/?origin=JFK&departure_date=2025-06-01", nil)

	vErr := &search.ValidationError{Origin: "JFK", DepartureDate: "2025-06-01"}
	mockService.On("Search", c.Request.Context(), mock.AnythingOfType("search.SearchInput")).Return(nil, vErr)

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Missing required parameters: origin, destination, departure_date", response["error"])
	assert.Equal(t, "Received - origin: JFK, destination: , departure_date: 2025-06-01", response["details"])
}

func TestFlightHandler_search_upstreamError(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/search/?origin=JFK&destination=LHR&departure_date=2020-01-01", nil)

	apiErr := &amadeus.APIError{StatusCode: 400, Code: 425, Title: "INVALID DATE", Detail: "Date/Time is in the past"}
	mockService.On("Search", c.Request.Context(), mock.AnythingOfType("search.SearchInput")).Return(nil, apiErr)

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Date/Time is in the past", response["details"])
}

func TestFlightHandler_search_unexpectedError(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/search/?origin=JFK&destination=LHR&departure_date=2025-06-01", nil)

	mockService.On("Search", c.Request.Context(), mock.AnythingOfType("search.SearchInput")).
		Return(nil, assert.AnError)

	handler.search(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "An error occurred", response["error"])
}
