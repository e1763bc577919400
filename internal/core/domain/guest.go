package domain

import "time"

// Guest is a spa customer. Active false means the guest is archived
// (soft delete).
type Guest struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FirstName  string    `json:"firstName" gorm:"size:64;not null"`
	LastName   string    `json:"lastName" gorm:"size:64;not null"`
	Email      string    `json:"email" gorm:"size:128;index"`
	Phone      string    `json:"phone" gorm:"size:32"`
	CountryID  uint      `json:"countryId" gorm:"index"`
	CityID     uint      `json:"cityId" gorm:"index"`
	LanguageID uint      `json:"languageId" gorm:"index"`
	Notes      string    `json:"notes" gorm:"size:1024"`
	Active     bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FullName returns "First Last" for display and report rendering.
func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
