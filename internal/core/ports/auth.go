package ports

import (
	"context"

	"github.com/serenispa/reservation-system/internal/core/domain"
)

type UserFilter struct {
	ListQuery
	Role   string
	Active *bool
}

// UserRepository persists staff accounts.
type UserRepository interface {
	List(ctx context.Context, f UserFilter) ([]domain.User, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
}

// RegisterInput carries the fields for creating a staff account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

// UpdateUserInput mutates a staff account; nil pointers leave the field
// untouched, an empty Password keeps the current hash.
type UpdateUserInput struct {
	Email    *string
	Role     *string
	Active   *bool
	Password string
}

// AuthService implements login, registration and staff-account management.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, user *domain.User, err error)
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	GetUser(ctx context.Context, id uint) (*domain.User, error)
	ListUsers(ctx context.Context, f UserFilter) (*Page[domain.User], error)
	UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*domain.User, error)
	// DeactivateUser flips Active off; locked accounts fail login with
	// ErrAccountLocked.
	DeactivateUser(ctx context.Context, id uint) error
}
