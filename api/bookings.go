package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vkarpenko/flightgate/internal/domain"
	"github.com/vkarpenko/flightgate/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

// bookingPayload serializes a booking with the price rendered at the two
// decimal places the bookings column stores, so "450.50" never collapses to
// "450.5". created_at is set only on list responses.
type bookingPayload struct {
	ID               int64  `json:"id"`
	PassengerName    string `json:"passenger_name"`
	PassportNumber   string `json:"passport_number"`
	AirlineCode      string `json:"airline_code"`
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	Price            string `json:"price"`
	Currency         string `json:"currency"`
	CreatedAt        string `json:"created_at,omitempty"`
}

func toBookingPayload(b domain.Booking, withCreatedAt bool) bookingPayload {
	p := bookingPayload{
		ID:               b.ID,
		PassengerName:    b.PassengerName,
		PassportNumber:   b.PassportNumber,
		AirlineCode:      b.AirlineCode,
		DepartureAirport: b.DepartureAirport,
		ArrivalAirport:   b.ArrivalAirport,
		DepartureTime:    b.DepartureTime,
		ArrivalTime:      b.ArrivalTime,
		Price:            b.Price.StringFixed(2),
		Currency:         b.Currency,
	}
	if withCreatedAt {
		p.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	return p
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings/", h.create)
	router.GET("/bookings/list/", h.list)
}

func (h *BookingHandler) create(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		var missing *booking.MissingFieldsError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create booking",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Booking created successfully",
		"booking_id": created.ID,
		"booking":    toBookingPayload(*created, false),
	})
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch bookings",
			"details": err.Error(),
		})
		return
	}

	payload := make([]bookingPayload, 0, len(bookings))
	for _, b := range bookings {
		payload = append(payload, toBookingPayload(b, true))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": payload,
		"count":    len(payload),
	})
}
