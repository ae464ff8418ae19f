// README: City autocomplete for the search box.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sawari/internal/maps"
)

type PlacesHandler struct {
	places *maps.PlacesService // nil when no API key is configured
}

func NewPlacesHandler(places *maps.PlacesService) *PlacesHandler {
	return &PlacesHandler{places: places}
}

// Autocomplete handles GET /api/places/autocomplete?input=.
func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	input := c.Query("input")
	if len(input) < 2 {
		c.JSON(http.StatusOK, gin.H{"suggestions": []maps.Suggestion{}})
		return
	}
	if h.places == nil {
		writeError(c, http.StatusServiceUnavailable, "autocomplete unavailable")
		return
	}
	suggestions, err := h.places.Autocomplete(c.Request.Context(), input)
	if err != nil {
		// The search box degrades to free-text input; no hard failure.
		c.JSON(http.StatusOK, gin.H{"suggestions": []maps.Suggestion{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
