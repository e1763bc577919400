package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// ownerColumns maps a delete-guard owner to the booking column holding its
// foreign key.
var ownerColumns = map[ports.BookingOwner]string{
	ports.OwnerRoom:      "room_id",
	ports.OwnerService:   "service_id",
	ports.OwnerTherapist: "therapist_id",
	ports.OwnerGuest:     "guest_id",
}

// BookingRepository persists bookings and their audit trail.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts the booking and its initial audit row in one transaction.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		return tx.Create(&domain.BookingEvent{
			BookingID: b.ID,
			Status:    b.Status,
			Timestamp: b.CreatedAt,
		}).Error
	})
	return translate(err, domain.ErrBookingNotFound)
}

func (r *BookingRepository) FindByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&b).Error
	if err != nil {
		return nil, translate(err, domain.ErrBookingNotFound)
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, f ports.BookingFilter) ([]domain.Booking, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"reference", "notes"},
	}
	if f.Status != "" {
		spec.Where = append(spec.Where, where("status = ?", f.Status))
	}
	if f.GuestID != nil {
		spec.Where = append(spec.Where, where("guest_id = ?", *f.GuestID))
	}
	if f.RoomID != nil {
		spec.Where = append(spec.Where, where("room_id = ?", *f.RoomID))
	}
	if f.TherapistID != nil {
		spec.Where = append(spec.Where, where("therapist_id = ?", *f.TherapistID))
	}
	if !f.DateFrom.IsZero() {
		spec.Where = append(spec.Where, where("starts_at >= ?", f.DateFrom))
	}
	if !f.DateTo.IsZero() {
		spec.Where = append(spec.Where, where("starts_at <= ?", f.DateTo))
	}
	return runList[domain.Booking](ctx, r.db, "bookings", spec)
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return translate(r.db.WithContext(ctx).Save(b).Error, domain.ErrBookingNotFound)
}

// UpdateStatus persists the new status and the audit row in one transaction
// so the trail can never miss a transition.
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID uint, status domain.BookingStatus, event *domain.BookingEvent) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Booking{}).Where("id = ?", bookingID).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrBookingNotFound
		}
		return tx.Create(event).Error
	})
	return translate(err, domain.ErrBookingNotFound)
}

func (r *BookingRepository) ListEvents(ctx context.Context, bookingID uint) ([]domain.BookingEvent, error) {
	var events []domain.BookingEvent
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("timestamp ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *BookingRepository) CountUpcoming(ctx context.Context, owner ports.BookingOwner, id uint, now time.Time) (int64, error) {
	col, ok := ownerColumns[owner]
	if !ok {
		return 0, fmt.Errorf("unknown booking owner %q", owner)
	}
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where(col+" = ?", id).
		Where("status NOT IN ?", []domain.BookingStatus{domain.StatusCancelled, domain.StatusNoShow}).
		Where("starts_at > ?", now).
		Count(&n).Error
	return n, err
}
