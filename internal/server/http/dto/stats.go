package dto

// StatsResponse is the admin dashboard summary.
type StatsResponse struct {
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	ReadyOrders   int64   `json:"readyOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// DetailedStatsResponse extends the summary with revenue since start of day.
type DetailedStatsResponse struct {
	StatsResponse
	TodayRevenue float64 `json:"todayRevenue"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status string `json:"status"`
}
