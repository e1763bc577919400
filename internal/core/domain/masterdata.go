package domain

import "time"

// Category groups services in the treatment catalog. ParentID 0 means a
// root category; ColorID selects the calendar color in the admin UI.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:128;not null"`
	ParentID  uint      `json:"parentId" gorm:"not null;default:0;index"`
	ColorID   uint      `json:"colorId" gorm:"not null;default:0"`
	Status    bool      `json:"status" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Currency is a billing currency. At most one currency carries IsDefault.
type Currency struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Code      string `json:"code" gorm:"uniqueIndex;size:3;not null"`
	Name      string `json:"name" gorm:"size:64;not null"`
	Symbol    string `json:"symbol" gorm:"size:8"`
	IsDefault bool   `json:"isDefault" gorm:"not null;default:false"`
}

// Country is a guest-address country. At most one country carries IsDefault.
type Country struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:128;not null"`
	Code      string `json:"code" gorm:"uniqueIndex;size:2;not null"`
	IsDefault bool   `json:"isDefault" gorm:"not null;default:false"`
}

// City belongs to a country. The default flag is scoped per country: at most
// one city per country carries IsDefault.
type City struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:128;not null"`
	CountryID uint   `json:"countryId" gorm:"not null;index"`
	IsDefault bool   `json:"isDefault" gorm:"not null;default:false"`
}

// Language is a guest correspondence language. At most one language carries
// IsDefault.
type Language struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:64;not null"`
	Code      string `json:"code" gorm:"uniqueIndex;size:5;not null"`
	IsDefault bool   `json:"isDefault" gorm:"not null;default:false"`
}

// Tax is a percentage applied to service prices.
type Tax struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	Name   string  `json:"name" gorm:"size:64;not null"`
	Rate   float64 `json:"rate" gorm:"not null"`
	Status bool    `json:"status" gorm:"not null;default:true"`
}

// OpeningHour is the business schedule for one weekday (0 = Sunday).
// Times are stored as "HH:MM" wall-clock strings.
type OpeningHour struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Weekday  int    `json:"weekday" gorm:"uniqueIndex;not null"`
	OpensAt  string `json:"opensAt" gorm:"size:5;not null"`
	ClosesAt string `json:"closesAt" gorm:"size:5;not null"`
	Closed   bool   `json:"closed" gorm:"not null;default:false"`
}

// Setting is a free-form configuration item keyed by name.
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;size:64;not null"`
	Value     string    `json:"value" gorm:"size:1024"`
	UpdatedAt time.Time `json:"updatedAt"`
}
