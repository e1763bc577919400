package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// DashboardRepository runs the aggregate count queries behind the admin
// landing page.
type DashboardRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db, now: time.Now}
}

func (r *DashboardRepository) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	now := r.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var rows []struct {
		Status string
		N      int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("status, COUNT(*) AS n").
		Where("starts_at >= ? AND starts_at < ?", dayStart, dayEnd).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	s := &ports.DashboardSummary{TodayBookings: make(map[string]int64, len(rows))}
	for _, row := range rows {
		s.TodayBookings[row.Status] = row.N
	}

	// Upcoming covers the next seven days only.
	err = r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("status NOT IN ?", []domain.BookingStatus{domain.StatusCancelled, domain.StatusNoShow}).
		Where("starts_at > ? AND starts_at < ?", now, now.Add(7*24*time.Hour)).
		Count(&s.UpcomingBookings).Error
	if err != nil {
		return nil, err
	}

	active := []struct {
		model any
		cond  string
		dst   *int64
	}{
		{&domain.Guest{}, "active = ?", &s.ActiveGuests},
		{&domain.Therapist{}, "active = ?", &s.ActiveTherapists},
		{&domain.Room{}, "status = ?", &s.ActiveRooms},
		{&domain.Service{}, "status = ?", &s.ActiveServices},
	}
	for _, a := range active {
		if err := r.db.WithContext(ctx).Model(a.model).Where(a.cond, true).Count(a.dst).Error; err != nil {
			return nil, err
		}
	}
	return s, nil
}
