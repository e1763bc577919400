package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/serenispa/reservation-system/internal/core/domain"
)

// OpeningHourRepository persists the weekly business schedule, one row per
// weekday.
type OpeningHourRepository struct {
	db *gorm.DB
}

func NewOpeningHourRepository(db *gorm.DB) *OpeningHourRepository {
	return &OpeningHourRepository{db: db}
}

func (r *OpeningHourRepository) ListAll(ctx context.Context) ([]domain.OpeningHour, error) {
	var hours []domain.OpeningHour
	err := r.db.WithContext(ctx).Order("weekday ASC").Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *OpeningHourRepository) GetByWeekday(ctx context.Context, weekday int) (*domain.OpeningHour, error) {
	var h domain.OpeningHour
	err := r.db.WithContext(ctx).Where("weekday = ?", weekday).First(&h).Error
	if err != nil {
		return nil, translate(err, domain.ErrSettingNotFound)
	}
	return &h, nil
}

func (r *OpeningHourRepository) Upsert(ctx context.Context, h *domain.OpeningHour) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "weekday"}},
		DoUpdates: clause.AssignmentColumns([]string{"opens_at", "closes_at", "closed"}),
	}).Create(h).Error
}

// SettingRepository persists free-form configuration items keyed by name.
type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) ListAll(ctx context.Context) ([]domain.Setting, error) {
	var items []domain.Setting
	err := r.db.WithContext(ctx).Order("`key` ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SettingRepository) GetByKey(ctx context.Context, key string) (*domain.Setting, error) {
	var s domain.Setting
	err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&s).Error
	if err != nil {
		return nil, translate(err, domain.ErrSettingNotFound)
	}
	return &s, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, s *domain.Setting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(s).Error
}

func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	res := r.db.WithContext(ctx).Where("`key` = ?", key).Delete(&domain.Setting{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSettingNotFound
	}
	return nil
}
