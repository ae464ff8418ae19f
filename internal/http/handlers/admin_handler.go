// README: Back-office endpoints; login, booking inbox, query inbox.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"sawari/internal/modules/admin"
	"sawari/internal/modules/booking"
	"sawari/internal/modules/query"
)

// BookingInbox is the slice of the booking store the admin panel uses.
type BookingInbox interface {
	List(ctx context.Context) ([]booking.Record, error)
	UpdateStatus(ctx context.Context, bookingID, status string) (bool, error)
}

type AdminHandler struct {
	admin    *admin.Service
	bookings BookingInbox
	queries  *query.Service
}

func NewAdminHandler(adminSvc *admin.Service, bookings BookingInbox, queries *query.Service) *AdminHandler {
	return &AdminHandler{admin: adminSvc, bookings: bookings, queries: queries}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	token, err := h.admin.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout handles POST /api/admin/logout.
func (h *AdminHandler) Logout(c *gin.Context) {
	token := c.GetString("admin_token")
	if err := h.admin.Logout(c.Request.Context(), token); err != nil {
		writeAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListBookings handles GET /api/admin/bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	records, err := h.bookings.List(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if records == nil {
		records = []booking.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

type statusReq struct {
	Status string `json:"status"`
}

var allowedStatuses = map[string]bool{
	booking.StatusPending:   true,
	booking.StatusConfirmed: true,
	booking.StatusCompleted: true,
	booking.StatusCancelled: true,
}

// UpdateBookingStatus handles POST /api/admin/bookings/:id/status.
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !allowedStatuses[req.Status] {
		writeError(c, http.StatusBadRequest, "unknown status")
		return
	}
	ok, err := h.bookings.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		writeError(c, http.StatusNotFound, "booking not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListQueries handles GET /api/admin/queries.
func (h *AdminHandler) ListQueries(c *gin.Context) {
	queries, err := h.queries.List(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if queries == nil {
		queries = []query.Query{}
	}
	c.JSON(http.StatusOK, gin.H{"queries": queries})
}

type readReq struct {
	Read bool `json:"read"`
}

// MarkQueryRead handles POST /api/admin/queries/:id/read.
func (h *AdminHandler) MarkQueryRead(c *gin.Context) {
	req := readReq{Read: true}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, "invalid json")
			return
		}
	}
	if err := h.queries.SetRead(c.Request.Context(), c.Param("id"), req.Read); err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteQuery handles DELETE /api/admin/queries/:id.
func (h *AdminHandler) DeleteQuery(c *gin.Context) {
	if err := h.queries.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
