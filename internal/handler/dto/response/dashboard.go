package response

import (
	"hotel-frontdesk/internal/usecase/queries"
)

type MetricsResponse struct {
	ActiveGuests     int    `json:"activeGuests"`
	AvailableRooms   int    `json:"availableRooms"`
	OccupiedRooms    int    `json:"occupiedRooms"`
	TotalRooms       int    `json:"totalRooms"`
	TodayRevenue     string `json:"todayRevenue" copier:"TodayRevenueCents"`
	OccupancyPercent string `json:"occupancyPercent"`
}

func FromMetrics(m *queries.DashboardMetrics) (*MetricsResponse, error) {
	var out MetricsResponse
	if err := copyInto(&out, m); err != nil {
		return nil, err
	}
	return &out, nil
}

type CashflowDayResponse struct {
	Date    string `json:"date"`
	Income  string `json:"income" copier:"IncomeCents"`
	Expense string `json:"expense" copier:"ExpenseCents"`
}

func FromCashflow(days []queries.CashflowDay) ([]CashflowDayResponse, error) {
	out := make([]CashflowDayResponse, 0, len(days))
	if err := copyInto(&out, days); err != nil {
		return nil, err
	}
	return out, nil
}

type MonthlySummaryResponse struct {
	Month   string `json:"month"`
	Revenue string `json:"revenue" copier:"RevenueCents"`
	Expense string `json:"expense" copier:"ExpenseCents"`
	Profit  string `json:"profit" copier:"ProfitCents"`
}

// FromMonthly renders months as YYYY-MM.
func FromMonthly(months []queries.MonthlySummary) ([]MonthlySummaryResponse, error) {
	out := make([]MonthlySummaryResponse, 0, len(months))
	if err := copyInto(&out, months); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Month = months[i].Month.Format("2006-01")
	}
	return out, nil
}
