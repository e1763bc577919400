package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog"

	"github.com/serenispa/reservation-system/internal/api/metrics"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// scheduleLimit bounds one day's printable schedule.
const scheduleLimit = 100

// ScheduleService renders the printable daily schedule handed to the
// front desk each morning.
type ScheduleService struct {
	bookings   ports.BookingRepository
	guests     ports.GuestRepository
	therapists ports.TherapistRepository
	rooms      ports.RoomRepository
	services   ports.ServiceRepository
	logger     zerolog.Logger
}

func NewScheduleService(
	bookings ports.BookingRepository,
	guests ports.GuestRepository,
	therapists ports.TherapistRepository,
	rooms ports.RoomRepository,
	services ports.ServiceRepository,
	logger zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{
		bookings:   bookings,
		guests:     guests,
		therapists: therapists,
		rooms:      rooms,
		services:   services,
		logger:     logger,
	}
}

// scheduleRow is one printable line of the schedule.
type scheduleRow struct {
	Time      string
	Reference string
	Guest     string
	Service   string
	Therapist string
	Room      string
	Status    string
}

// DailySchedule renders the bookings of the given calendar day (UTC) as a
// PDF, ordered by start time.
func (s *ScheduleService) DailySchedule(ctx context.Context, date time.Time) ([]byte, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	bookings, _, err := s.bookings.List(ctx, ports.BookingFilter{
		ListQuery: ports.ListQuery{
			Page:      1,
			Limit:     scheduleLimit,
			SortBy:    "starts_at",
			SortOrder: ports.SortAsc,
		},
		DateFrom: dayStart,
		DateTo:   dayEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("schedule bookings: %w", err)
	}

	rows := make([]scheduleRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, scheduleRow{
			Time:      b.StartsAt.Format("15:04") + " - " + b.EndsAt.Format("15:04"),
			Reference: b.Reference,
			Guest:     s.guestName(ctx, b.GuestID),
			Service:   s.serviceName(ctx, b.ServiceID),
			Therapist: s.therapistName(ctx, b.TherapistID),
			Room:      s.roomName(ctx, b.RoomID),
			Status:    string(b.Status),
		})
	}

	pdf, err := render(dayStart, rows)
	if err != nil {
		return nil, err
	}
	metrics.ReportsRenderedTotal.Inc()
	s.logger.Info().
		Str("date", dayStart.Format("2006-01-02")).
		Int("bookings", len(rows)).
		Msg("daily schedule rendered")
	return pdf, nil
}

func (s *ScheduleService) guestName(ctx context.Context, id uint) string {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return unknownName(id, err)
	}
	return g.FullName()
}

func (s *ScheduleService) therapistName(ctx context.Context, id uint) string {
	t, err := s.therapists.GetByID(ctx, id)
	if err != nil {
		return unknownName(id, err)
	}
	return t.FullName()
}

func (s *ScheduleService) roomName(ctx context.Context, id uint) string {
	r, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return unknownName(id, err)
	}
	return r.Name
}

func (s *ScheduleService) serviceName(ctx context.Context, id uint) string {
	sv, err := s.services.GetByID(ctx, id)
	if err != nil {
		return unknownName(id, err)
	}
	return sv.Name
}

// unknownName keeps the report printable when a referenced record was
// removed out-of-band.
func unknownName(id uint, err error) string {
	return fmt.Sprintf("#%d", id)
}

var columns = []struct {
	title string
	width float64
}{
	{"Time", 28},
	{"Ref", 30},
	{"Guest", 38},
	{"Service", 38},
	{"Therapist", 32},
	{"Room", 26},
	{"Status", 24},
}

func render(day time.Time, rows []scheduleRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Daily Schedule "+day.Format("2006-01-02"), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Daily Schedule "+day.Format("Monday, 2 January 2006"))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	if len(rows) == 0 {
		pdf.CellFormat(totalWidth(), 8, "No bookings scheduled.", "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	for _, row := range rows {
		cells := []string{row.Time, row.Reference, row.Guest, row.Service, row.Therapist, row.Room, row.Status}
		for i, col := range columns {
			pdf.CellFormat(col.width, 8, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render schedule: %w", err)
	}
	return buf.Bytes(), nil
}

func totalWidth() float64 {
	var w float64
	for _, col := range columns {
		w += col.width
	}
	return w
}
