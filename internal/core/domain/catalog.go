package domain

import "time"

// Room is a treatment room. Status false means the room is retired
// (soft delete); retired rooms are excluded from new bookings.
type Room struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:128;not null"`
	Description string    `json:"description" gorm:"size:512"`
	Capacity    int       `json:"capacity" gorm:"not null;default:1"`
	Status      bool      `json:"status" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Service is a bookable treatment from the catalog.
type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:128;not null"`
	Description string    `json:"description" gorm:"size:512"`
	DurationMin int       `json:"durationMin" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	CategoryID  uint      `json:"categoryId" gorm:"not null;index"`
	TaxID       uint      `json:"taxId" gorm:"index"`
	CurrencyID  uint      `json:"currencyId" gorm:"index"`
	Status      bool      `json:"status" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
