package domain

import "time"

// Therapist is a staff member who performs treatments. Active false means
// the therapist left (soft delete); archived therapists are excluded from
// new bookings.
type Therapist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"size:64;not null"`
	LastName  string    `json:"lastName" gorm:"size:64;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:128;not null"`
	Phone     string    `json:"phone" gorm:"size:32"`
	Title     string    `json:"title" gorm:"size:64"`
	Bio       string    `json:"bio" gorm:"size:1024"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName returns "First Last" for display and report rendering.
func (t Therapist) FullName() string {
	return t.FirstName + " " + t.LastName
}
