// README: Contact form intake endpoint.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sawari/internal/modules/query"
)

type QueryHandler struct {
	queries *query.Service
}

func NewQueryHandler(svc *query.Service) *QueryHandler {
	return &QueryHandler{queries: svc}
}

type submitQueryReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Submit handles POST /api/queries.
func (h *QueryHandler) Submit(c *gin.Context) {
	var req submitQueryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	q, err := h.queries.Submit(c.Request.Context(), req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": q.ID})
}
