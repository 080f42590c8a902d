package model

// OrderStats aggregates orders for the admin dashboard.
type OrderStats struct {
	TotalOrders   int64
	PendingOrders int64
	ReadyOrders   int64
	TotalRevenue  float64
	TodayRevenue  float64
}
