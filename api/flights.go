package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vkarpenko/flightgate/internal/amadeus"
	"github.com/vkarpenko/flightgate/internal/service/search"
)

type FlightHandler struct {
	service search.SearchUseCase
}

func NewFlightHandler(service search.SearchUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/search/", h.search)
}

func (h *FlightHandler) search(c *gin.Context) {
	adults := 1
	if raw := c.Query("adults"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			adults = n
		}
	}

	flights, err := h.service.Search(c.Request.Context(), search.SearchInput{
		Origin:        c.Query("origin"),
		Destination:   c.Query("destination"),
		DepartureDate: c.Query("departure_date"),
		ReturnDate:    c.Query("return_date"),
		Adults:        adults,
	})
	if err != nil {
		var vErr *search.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   vErr.Error(),
				"details": vErr.Details(),
			})
			return
		}

		var apiErr *amadeus.APIError
		if errors.As(err, &apiErr) {
			details := apiErr.Detail
			if details == "" {
				details = "Amadeus API error"
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   apiErr.Error(),
				"details": details,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"flights": flights,
		"count":   len(flights),
	})
}
