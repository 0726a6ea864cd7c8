package api

import (
	"net/http"

	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Dashboard metrics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MetricsResponse
// @Router /api/dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c *gin.Context) {
	m, err := h.q.Metrics(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromMetrics(m)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Daily cashflow
// @Description Income and expense per day for the last 7 days
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CashflowDayResponse
// @Router /api/dashboard/cashflow [get]
func (h *DashboardHandler) Cashflow(c *gin.Context) {
	days, err := h.q.Cashflow(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromCashflow(days)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Monthly summary
// @Description Revenue, expense and profit for the last 12 months
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MonthlySummaryResponse
// @Router /api/dashboard/monthly [get]
func (h *DashboardHandler) Monthly(c *gin.Context) {
	months, err := h.q.Monthly(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromMonthly(months)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
