package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/infrastructure/config"
	"github.com/serenispa/reservation-system/internal/infrastructure/db/mysql"
	"github.com/serenispa/reservation-system/pkg/logger"
)

// Runs schema migration and seeds the minimum records a fresh install
// needs: an admin account, the weekly schedule and the default currency,
// country and language.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("configuration error")
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	db, err := mysql.Connect(mysql.Config{
		User:     cfg.MySQL.User,
		Password: cfg.MySQL.Password,
		Host:     cfg.MySQL.Host,
		Port:     cfg.MySQL.Port,
		Database: cfg.MySQL.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connection failed")
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Currency{},
		&domain.Country{},
		&domain.City{},
		&domain.Language{},
		&domain.Tax{},
		&domain.OpeningHour{},
		&domain.Setting{},
		&domain.Room{},
		&domain.Service{},
		&domain.Guest{},
		&domain.Therapist{},
		&domain.Booking{},
		&domain.BookingEvent{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("schema migrated")

	if err := seed(db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seed data in place")
}

func seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedOpeningHours(db); err != nil {
		return err
	}
	return seedDefaults(db)
}

func seedAdmin(db *gorm.DB) error {
	var existing domain.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&domain.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
	}).Error
}

func seedOpeningHours(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.OpeningHour{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for weekday := 0; weekday <= 6; weekday++ {
		hour := domain.OpeningHour{
			Weekday:  weekday,
			OpensAt:  "09:00",
			ClosesAt: "20:00",
			Closed:   weekday == 0, // closed on Sundays until configured
		}
		if err := db.Create(&hour).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedDefaults(db *gorm.DB) error {
	seeds := []struct {
		model any
		row   any
	}{
		{&domain.Currency{}, &domain.Currency{Code: "EUR", Name: "Euro", Symbol: "€", IsDefault: true}},
		{&domain.Country{}, &domain.Country{Name: "Austria", Code: "AT", IsDefault: true}},
		{&domain.Language{}, &domain.Language{Name: "German", Code: "de", IsDefault: true}},
	}
	for _, s := range seeds {
		var count int64
		if err := db.Model(s.model).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(s.row).Error; err != nil {
			return err
		}
	}
	return nil
}
