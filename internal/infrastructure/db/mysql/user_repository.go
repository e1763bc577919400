package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// UserRepository persists staff accounts.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context, f ports.UserFilter) ([]domain.User, int64, error) {
	spec := listSpec{
		Query:  f.ListQuery,
		Search: []string{"username", "email"},
	}
	if f.Role != "" {
		spec.Where = append(spec.Where, where("role = ?", f.Role))
	}
	if f.Active != nil {
		spec.Where = append(spec.Where, where("active = ?", *f.Active))
	}
	return runList[domain.User](ctx, r.db, "users", spec)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, translate(err, domain.ErrUserNotFound)
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, translate(err, domain.ErrUserNotFound)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if err := translate(err, domain.ErrUserNotFound); err != nil {
		if err == domain.ErrDuplicateRecord {
			return domain.ErrUserExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Save(u).Error
	return translate(err, domain.ErrUserNotFound)
}
