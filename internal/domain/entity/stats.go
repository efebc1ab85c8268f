package entity

import "time"

// DateRange bounds a query by creation time. Zero values leave that side open.
type DateRange struct {
	From time.Time `json:"from,omitzero"`
	To   time.Time `json:"to,omitzero"`
}

// Contains reports whether t falls inside the range; To is exclusive.
func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !t.Before(r.To) {
		return false
	}

	return true
}

// StatusCounts breaks orders down by status.
type StatusCounts struct {
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
	Cancelled  int64 `json:"cancelled"`
}

// Add increments the counter for status by n. Unknown statuses are ignored.
func (c *StatusCounts) Add(status OrderStatus, n int64) {
	switch status {
	case OrderStatusPending:
		c.Pending += n
	case OrderStatusProcessing:
		c.Processing += n
	case OrderStatusShipped:
		c.Shipped += n
	case OrderStatusDelivered:
		c.Delivered += n
	case OrderStatusCancelled:
		c.Cancelled += n
	}
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalOrders       int64        `json:"totalOrders"`
	TotalRevenue      float64      `json:"totalRevenue"`
	AverageOrderValue float64      `json:"averageOrderValue"`
	StatusCounts      StatusCounts `json:"statusCounts"`
	Range             DateRange    `json:"range"`
}

// FinalizeAverage recomputes AverageOrderValue from the totals.
func (s *DashboardStats) FinalizeAverage() {
	if s.TotalOrders == 0 {
		s.AverageOrderValue = 0

		return
	}
	s.AverageOrderValue = s.TotalRevenue / float64(s.TotalOrders)
}
