// README: Priced vehicle list for a searched route.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sawari/internal/modules/pricing"
)

type PricingHandler struct {
	pricing *pricing.Service
}

func NewPricingHandler(svc *pricing.Service) *PricingHandler {
	return &PricingHandler{pricing: svc}
}

// Cars handles GET /api/cars?from=&to=&trip_type=&hours=.
func (h *PricingHandler) Cars(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		writeError(c, http.StatusBadRequest, "from is required")
		return
	}
	to := c.Query("to")
	if to == "" {
		// Local rentals search with a single city.
		to = from
	}
	tripType := c.DefaultQuery("trip_type", pricing.TripOneWay)

	hours := pricing.DefaultHours
	if v := c.Query("hours"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(c, http.StatusBadRequest, "hours must be a positive integer")
			return
		}
		hours = n
	}

	quote := h.pricing.PriceAllVehicles(c.Request.Context(), from, to, tripType, hours)
	c.JSON(http.StatusOK, quote)
}
