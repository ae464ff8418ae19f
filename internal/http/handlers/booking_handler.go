// README: Booking wizard endpoints; one handler per step action.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sawari/internal/modules/booking"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

// draftView is the wire shape of a wizard draft.
type draftView struct {
	ID             string                 `json:"id"`
	Step           booking.Step           `json:"step"`
	Trip           booking.Trip           `json:"trip"`
	Base           any                    `json:"base_fare"`
	Contact        booking.Contact        `json:"contact"`
	Services       []booking.AddOnService `json:"services"`
	Selected       []string               `json:"selected_services"`
	ServicesTotal  int64                  `json:"services_total"`
	SplitPercent   int                    `json:"split_percent"`
	GST            booking.GST            `json:"gst"`
	Total          int64                  `json:"total"`
	AmountDueNow   int64                  `json:"amount_due_now"`
	AmountDueLater int64                  `json:"amount_due_later"`
	BookingID      string                 `json:"booking_id,omitempty"`
}

func toView(d *booking.Draft) draftView {
	selected := make([]string, 0, len(d.Selected))
	for _, s := range booking.AddOns() {
		if d.Selected[s.ID] {
			selected = append(selected, s.ID)
		}
	}
	return draftView{
		ID:             d.ID,
		Step:           d.Step,
		Trip:           d.Trip,
		Base:           d.Base,
		Contact:        d.Contact,
		Services:       booking.AddOns(),
		Selected:       selected,
		ServicesTotal:  d.ServicesTotal(),
		SplitPercent:   d.SplitPercent,
		GST:            d.GST,
		Total:          d.Total,
		AmountDueNow:   d.AmountDueNow(),
		AmountDueLater: d.AmountDueLater(),
		BookingID:      d.BookingID,
	}
}

type startReq struct {
	TripType   string `json:"trip_type"`
	FromCity   string `json:"from_city"`
	ToCity     string `json:"to_city"`
	PickupDate string `json:"pickup_date"`
	PickupTime string `json:"pickup_time"`
	CarID      string `json:"car_id"`
	DistanceKm int    `json:"distance_km"`
	Hours      int    `json:"hours"`
}

// Start handles POST /api/bookings/wizard.
func (h *BookingHandler) Start(c *gin.Context) {
	var req startReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	d, err := h.booking.Start(booking.StartCommand{
		TripType:   req.TripType,
		FromCity:   req.FromCity,
		ToCity:     req.ToCity,
		PickupDate: req.PickupDate,
		PickupTime: req.PickupTime,
		CarID:      req.CarID,
		DistanceKm: req.DistanceKm,
		Hours:      req.Hours,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toView(d))
}

// Get handles GET /api/bookings/wizard/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	d, err := h.booking.Get(c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(d))
}

// SetContact handles POST /api/bookings/wizard/:id/contact.
func (h *BookingHandler) SetContact(c *gin.Context) {
	var req booking.Contact
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	d, err := h.booking.SetContact(c.Param("id"), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(d))
}

// Back handles POST /api/bookings/wizard/:id/back.
func (h *BookingHandler) Back(c *gin.Context) {
	d, err := h.booking.Back(c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(d))
}

type toggleReq struct {
	ServiceID string `json:"service_id"`
}

// ToggleService handles POST /api/bookings/wizard/:id/services/toggle.
// The response carries the toggle direction and price so the UI can show
// its transient "+price"/"-price" acknowledgment.
func (h *BookingHandler) ToggleService(c *gin.Context) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.booking.ToggleAddOn(c.Param("id"), req.ServiceID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"draft":   toView(res.Draft),
		"toggled": res.Service.ID,
		"added":   res.Added,
		"price":   res.Service.Price,
	})
}

// Next handles POST /api/bookings/wizard/:id/services/next.
func (h *BookingHandler) Next(c *gin.Context) {
	d, err := h.booking.Next(c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(d))
}

type paymentReq struct {
	SplitPercent int         `json:"split_percent"`
	GST          booking.GST `json:"gst"`
}

// SetPayment handles POST /api/bookings/wizard/:id/payment.
func (h *BookingHandler) SetPayment(c *gin.Context) {
	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	d, err := h.booking.SetPayment(c.Param("id"), req.SplitPercent, req.GST)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(d))
}

// Confirm handles POST /api/bookings/wizard/:id/confirm.
func (h *BookingHandler) Confirm(c *gin.Context) {
	rec, err := h.booking.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}
