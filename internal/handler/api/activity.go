package api

import (
	"net/http"

	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	q queries.ActivityQueries
}

func NewActivityHandler(q queries.ActivityQueries) *ActivityHandler {
	return &ActivityHandler{q: q}
}

// @Summary My recent activity
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ActivityResponse
// @Router /api/activity/me [get]
func (h *ActivityHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.q.Recent(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivityList(items))
}
