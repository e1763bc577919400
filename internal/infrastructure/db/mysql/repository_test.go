package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	driver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(driver.New(driver.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func normalized(t *testing.T, q ports.ListQuery, d ports.ListDefaults) ports.ListQuery {
	t.Helper()
	if err := q.Normalize(d); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return q
}

func TestCountryRepositoryList(t *testing.T) {
	db, mock := newMockDB(t)
	// Count and page fetch run concurrently, so arrival order is not fixed.
	mock.MatchExpectationsInOrder(false)

	q := normalized(t, ports.ListQuery{Search: "Aus"}, ports.ListDefaults{
		Limit:      20,
		SortBy:     "name",
		SortFields: map[string]string{"name": "name"},
	})

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `countries`").
		WithArgs("%aus%", "%aus%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `countries` WHERE LOWER\\(name\\) LIKE \\? OR LOWER\\(code\\) LIKE \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "is_default"}).
			AddRow(1, "Austria", "AT", true))

	repo := NewCountryRepository(db)
	items, total, err := repo.List(context.Background(), ports.CountryFilter{ListQuery: q})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("got total=%d len=%d, want 1/1", total, len(items))
	}
	if items[0].Code != "AT" {
		t.Errorf("got code %q, want AT", items[0].Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCityRepositoryCreateClearsSiblingDefaults(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `cities` SET `is_default`=\\?").
		WithArgs(false, uint(7), true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `cities`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	repo := NewCityRepository(db)
	err := repo.Create(context.Background(), &domain.City{Name: "Graz", CountryID: 7, IsDefault: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCityRepositoryCreateNonDefaultSkipsClear(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `cities`").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	repo := NewCityRepository(db)
	err := repo.Create(context.Background(), &domain.City{Name: "Linz", CountryID: 7})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBookingRepositoryUpdateStatusMissingRowRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `bookings` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := NewBookingRepository(db)
	err := repo.UpdateStatus(context.Background(), 99, domain.StatusConfirmed, &domain.BookingEvent{
		BookingID: 99,
		Status:    domain.StatusConfirmed,
		Timestamp: time.Now(),
	})
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("got %v, want ErrBookingNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBookingRepositoryCountUpcoming(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings` WHERE room_id = \\? AND status NOT IN \\(\\?,\\?\\) AND starts_at > \\?").
		WithArgs(uint(5), "cancelled", "no_show", now).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	repo := NewBookingRepository(db)
	n, err := repo.CountUpcoming(context.Background(), ports.OwnerRoom, 5, now)
	if err != nil {
		t.Fatalf("CountUpcoming: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d, want 2", n)
	}

	if _, err := repo.CountUpcoming(context.Background(), ports.BookingOwner("invoice"), 5, now); err == nil {
		t.Error("expected error for unknown owner")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDashboardSummaryUpcomingWindow(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	dayStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) AS n FROM `bookings` WHERE starts_at >= \\? AND starts_at < \\? GROUP BY `status`").
		WithArgs(dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"status", "n"}).AddRow("reserved", 3))

	// Upcoming count is bounded to seven days out.
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings` WHERE status NOT IN \\(\\?,\\?\\).*starts_at > \\? AND starts_at < \\?").
		WithArgs("cancelled", "no_show", now, now.Add(7*24*time.Hour)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	for _, table := range []string{"guests", "therapists", "rooms", "services"} {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `" + table + "`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	}

	repo := NewDashboardRepository(db)
	repo.now = func() time.Time { return now }

	s, err := repo.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if s.UpcomingBookings != 4 {
		t.Errorf("upcoming: got %d, want 4", s.UpcomingBookings)
	}
	if s.TodayBookings["reserved"] != 3 {
		t.Errorf("today reserved: got %d, want 3", s.TodayBookings["reserved"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUserRepositoryCreateDuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysqlDuplicateErr{})
	mock.ExpectRollback()

	repo := NewUserRepository(db)
	err := repo.Create(context.Background(), &domain.User{Username: "ana", Email: "ana@spa.test"})
	// TranslateError only recognizes the real driver error type, so a stub
	// error passes through untranslated; either way Create must fail.
	if err == nil {
		t.Fatal("expected error on duplicate insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

type mysqlDuplicateErr struct{}

func (*mysqlDuplicateErr) Error() string { return "Error 1062: Duplicate entry" }
