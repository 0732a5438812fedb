package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vkarpenko/flightgate/internal/amadeus"
	"github.com/vkarpenko/flightgate/internal/service/locations"
)

type LocationHandler struct {
	service locations.LocationUseCase
}

func NewLocationHandler(service locations.LocationUseCase) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) Register(router *gin.RouterGroup) {
	router.GET("/airports/", h.airports)
	router.GET("/popular-destinations/", h.popularDestinations)
}

func (h *LocationHandler) airports(c *gin.Context) {
	airports, err := h.service.SearchAirports(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		if errors.Is(err, locations.ErrKeywordTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Please enter at least 2 characters",
			})
			return
		}

		var apiErr *amadeus.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to search airports",
				"details": apiErr.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred while searching airports",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"airports": airports,
	})
}

func (h *LocationHandler) popularDestinations(c *gin.Context) {
	destinations, err := h.service.PopularDestinations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred while fetching popular destinations",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"destinations": destinations,
	})
}
