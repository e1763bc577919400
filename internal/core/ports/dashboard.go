package ports

import "context"

// DashboardSummary is the aggregate snapshot shown on the admin landing page.
type DashboardSummary struct {
	TodayBookings    map[string]int64 `json:"todayBookings"` // status -> count
	UpcomingBookings int64            `json:"upcomingBookings"`
	ActiveGuests     int64            `json:"activeGuests"`
	ActiveTherapists int64            `json:"activeTherapists"`
	ActiveRooms      int64            `json:"activeRooms"`
	ActiveServices   int64            `json:"activeServices"`
}

// DashboardRepository runs the aggregate count queries.
type DashboardRepository interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

// DashboardService returns the summary, read-through cached.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
