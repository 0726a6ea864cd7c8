//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-frontdesk/internal/handler/api"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/httptest"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDashboardQueries
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	h := api.NewDashboardHandler(s.mockQueries)

	s.router.GET("/dashboard/metrics", h.Metrics)
	s.router.GET("/dashboard/cashflow", h.Cashflow)
	s.router.GET("/dashboard/monthly", h.Monthly)
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) TestMetrics() {
	s.Run("success: money and percentages as decimal strings", func() {
		s.mockQueries.EXPECT().Metrics(gomock.Any()).Return(&queries.DashboardMetrics{
			ActiveGuests: 2, AvailableRooms: 1, OccupiedRooms: 2, TotalRooms: 3,
			TodayRevenueCents: 60000000, OccupancyPercent: decimal.RequireFromString("66.67"),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/metrics", nil, "")

		var response resdto.MetricsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		want := resdto.MetricsResponse{
			ActiveGuests: 2, AvailableRooms: 1, OccupiedRooms: 2, TotalRooms: 3,
			TodayRevenue: "600000.00", OccupancyPercent: "66.67",
		}
		s.Empty(cmp.Diff(want, response))
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().Metrics(gomock.Any()).Return(nil, errors.New("database error"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/metrics", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *DashboardHandlerTestSuite) TestCashflowAndMonthly() {
	s.Run("success: cashflow days", func() {
		s.mockQueries.EXPECT().Cashflow(gomock.Any()).Return([]queries.CashflowDay{
			{Date: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), IncomeCents: 60000000, ExpenseCents: 1250050},
			{Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/cashflow", nil, "")

		var response []resdto.CashflowDayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		want := []resdto.CashflowDayResponse{
			{Date: "2024-01-08", Income: "600000.00", Expense: "12500.50"},
			{Date: "2024-01-09", Income: "0.00", Expense: "0.00"},
		}
		s.Empty(cmp.Diff(want, response))
	})

	s.Run("success: months as YYYY-MM", func() {
		s.mockQueries.EXPECT().Monthly(gomock.Any()).Return([]queries.MonthlySummary{
			{Month: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), RevenueCents: 60000000, ExpenseCents: 1250050, ProfitCents: 58749950},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/monthly", nil, "")

		var response []resdto.MonthlySummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("2024-01", response[0].Month)
		s.Equal("587499.50", response[0].Profit)
	})
}
