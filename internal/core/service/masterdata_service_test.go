package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

type masterFixture struct {
	svc        *MasterDataService
	categories *stubCategoryRepo
	currencies *stubCurrencyRepo
	countries  *stubCountryRepo
	cities     *stubCityRepo
	languages  *stubLanguageRepo
	taxes      *stubTaxRepo
	hours      *stubOpeningHourRepo
	settings   *stubSettingRepo
	services   *stubServiceRepo
	guests     *stubGuestRepo
}

func newMasterFixture() *masterFixture {
	f := &masterFixture{
		categories: newStubCategoryRepo(),
		currencies: newStubCurrencyRepo(),
		countries:  newStubCountryRepo(),
		cities:     newStubCityRepo(),
		languages:  newStubLanguageRepo(),
		taxes:      newStubTaxRepo(),
		hours:      newStubOpeningHourRepo(),
		settings:   newStubSettingRepo(),
		services:   newStubServiceRepo(),
		guests:     newStubGuestRepo(),
	}
	f.svc = NewMasterDataService(MasterDataDeps{
		Categories: f.categories,
		Currencies: f.currencies,
		Countries:  f.countries,
		Cities:     f.cities,
		Languages:  f.languages,
		Taxes:      f.taxes,
		Hours:      f.hours,
		Settings:   f.settings,
		Services:   f.services,
		Guests:     f.guests,
	}, zerolog.Nop())
	return f
}

func TestDefaultCountryExclusivity(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	a := &domain.Country{Name: "Austria", Code: "AT", IsDefault: true}
	b := &domain.Country{Name: "Germany", Code: "DE", IsDefault: true}
	c := &domain.Country{Name: "Switzerland", Code: "CH"}
	for _, country := range []*domain.Country{a, b, c} {
		if err := f.svc.CreateCountry(ctx, country); err != nil {
			t.Fatal(err)
		}
	}

	c.IsDefault = true
	if err := f.svc.UpdateCountry(ctx, c); err != nil {
		t.Fatal(err)
	}

	defaults := 0
	countries, _, _ := f.countries.List(ctx, ports.CountryFilter{})
	for _, country := range countries {
		if country.IsDefault {
			defaults++
			if country.ID != c.ID {
				t.Fatalf("wrong default: %s", country.Name)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("defaults = %d, want exactly 1", defaults)
	}
}

func TestDefaultCityScopedPerCountry(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	at := &domain.Country{Name: "Austria", Code: "AT"}
	de := &domain.Country{Name: "Germany", Code: "DE"}
	for _, country := range []*domain.Country{at, de} {
		if err := f.svc.CreateCountry(ctx, country); err != nil {
			t.Fatal(err)
		}
	}

	vienna := &domain.City{Name: "Vienna", CountryID: at.ID, IsDefault: true}
	graz := &domain.City{Name: "Graz", CountryID: at.ID}
	berlin := &domain.City{Name: "Berlin", CountryID: de.ID, IsDefault: true}
	for _, city := range []*domain.City{vienna, graz, berlin} {
		if err := f.svc.CreateCity(ctx, city); err != nil {
			t.Fatal(err)
		}
	}

	// Promoting Graz must demote Vienna but leave Berlin untouched.
	graz.IsDefault = true
	if err := f.svc.UpdateCity(ctx, graz); err != nil {
		t.Fatal(err)
	}

	got, _ := f.cities.GetByID(ctx, vienna.ID)
	if got.IsDefault {
		t.Fatalf("Vienna should have lost the default flag")
	}
	got, _ = f.cities.GetByID(ctx, berlin.ID)
	if !got.IsDefault {
		t.Fatalf("Berlin's default flag must not be affected by Austrian changes")
	}
}

func TestDeleteCountryWithCitiesBlocked(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	country := &domain.Country{Name: "Austria", Code: "AT"}
	if err := f.svc.CreateCountry(ctx, country); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.CreateCity(ctx, &domain.City{Name: "Vienna", CountryID: country.ID}); err != nil {
		t.Fatal(err)
	}

	err := f.svc.DeleteCountry(ctx, country.ID)
	if !errors.Is(err, domain.ErrHasDependents) {
		t.Fatalf("got %v, want ErrHasDependents", err)
	}
	if _, err := f.countries.GetByID(ctx, country.ID); err != nil {
		t.Fatalf("country should still exist: %v", err)
	}
}

func TestDeleteCategoryGuards(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	parent := &domain.Category{Name: "Massage", Status: true}
	if err := f.svc.CreateCategory(ctx, parent); err != nil {
		t.Fatal(err)
	}
	child := &domain.Category{Name: "Deep Tissue", ParentID: parent.ID, Status: true}
	if err := f.svc.CreateCategory(ctx, child); err != nil {
		t.Fatal(err)
	}

	if err := f.svc.DeleteCategory(ctx, parent.ID); !errors.Is(err, domain.ErrHasDependents) {
		t.Fatalf("parent with child: got %v, want ErrHasDependents", err)
	}

	// A category referenced by a service is also protected.
	_ = f.services.Create(ctx, &domain.Service{Name: "Swedish", CategoryID: child.ID, DurationMin: 30})
	if err := f.svc.DeleteCategory(ctx, child.ID); !errors.Is(err, domain.ErrHasDependents) {
		t.Fatalf("category in use: got %v, want ErrHasDependents", err)
	}
}

func TestDeleteDefaultRecordBlocked(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	lang := &domain.Language{Name: "German", Code: "de", IsDefault: true}
	if err := f.svc.CreateLanguage(ctx, lang); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.DeleteLanguage(ctx, lang.ID); !errors.Is(err, domain.ErrDefaultRecord) {
		t.Fatalf("got %v, want ErrDefaultRecord", err)
	}

	cur := &domain.Currency{Code: "EUR", Name: "Euro", IsDefault: true}
	if err := f.svc.CreateCurrency(ctx, cur); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.DeleteCurrency(ctx, cur.ID); !errors.Is(err, domain.ErrDefaultRecord) {
		t.Fatalf("got %v, want ErrDefaultRecord", err)
	}
}

func TestDeleteTaxInUseBlocked(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	tax := &domain.Tax{Name: "VAT", Rate: 20, Status: true}
	if err := f.svc.CreateTax(ctx, tax); err != nil {
		t.Fatal(err)
	}
	_ = f.services.Create(ctx, &domain.Service{Name: "Facial", CategoryID: 1, TaxID: tax.ID, DurationMin: 45})

	if err := f.svc.DeleteTax(ctx, tax.ID); !errors.Is(err, domain.ErrHasDependents) {
		t.Fatalf("got %v, want ErrHasDependents", err)
	}
}

func TestDeleteLanguageWithGuestsBlocked(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	lang := &domain.Language{Name: "German", Code: "de"}
	if err := f.svc.CreateLanguage(ctx, lang); err != nil {
		t.Fatal(err)
	}
	_ = f.guests.Create(ctx, &domain.Guest{FirstName: "Greta", LastName: "Huber", LanguageID: lang.ID, Active: true})

	if err := f.svc.DeleteLanguage(ctx, lang.ID); !errors.Is(err, domain.ErrHasDependents) {
		t.Fatalf("got %v, want ErrHasDependents", err)
	}
	if _, err := f.svc.GetLanguage(ctx, lang.ID); err != nil {
		t.Fatalf("language should survive a blocked delete: %v", err)
	}

	unused := &domain.Language{Name: "French", Code: "fr"}
	if err := f.svc.CreateLanguage(ctx, unused); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.DeleteLanguage(ctx, unused.ID); err != nil {
		t.Fatalf("unreferenced language should delete: %v", err)
	}
}

func TestTaxRateValidation(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	for _, rate := range []float64{-1, 101} {
		err := f.svc.CreateTax(ctx, &domain.Tax{Name: "bad", Rate: rate})
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("rate %v: got %v, want ErrInvalidArgument", rate, err)
		}
	}
}

func TestOpeningHourValidation(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	cases := []struct {
		name string
		hour domain.OpeningHour
		ok   bool
	}{
		{"valid", domain.OpeningHour{Weekday: 1, OpensAt: "09:00", ClosesAt: "20:00"}, true},
		{"closed day needs no times", domain.OpeningHour{Weekday: 0, Closed: true}, true},
		{"weekday out of range", domain.OpeningHour{Weekday: 7, OpensAt: "09:00", ClosesAt: "20:00"}, false},
		{"opens after close", domain.OpeningHour{Weekday: 2, OpensAt: "21:00", ClosesAt: "09:00"}, false},
		{"missing times", domain.OpeningHour{Weekday: 3}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := f.svc.UpsertOpeningHour(ctx, &c.hour)
			if c.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.ok && !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("got %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestGetOpeningHour(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	if err := f.svc.UpsertOpeningHour(ctx, &domain.OpeningHour{Weekday: 1, OpensAt: "09:00", ClosesAt: "20:00"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	h, err := f.svc.GetOpeningHour(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if h.OpensAt != "09:00" || h.ClosesAt != "20:00" {
		t.Fatalf("unexpected hours: %+v", h)
	}

	if _, err := f.svc.GetOpeningHour(ctx, 9); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
	if _, err := f.svc.GetOpeningHour(ctx, 2); !errors.Is(err, domain.ErrSettingNotFound) {
		t.Fatalf("got %v, want ErrSettingNotFound", err)
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	in := &domain.Category{Name: "Massage", ParentID: 0, Status: true, ColorID: 1}
	if err := f.svc.CreateCategory(ctx, in); err != nil {
		t.Fatal(err)
	}
	if in.ID == 0 {
		t.Fatalf("expected an assigned id")
	}

	got, err := f.svc.GetCategory(ctx, in.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Massage" || !got.Status || got.ColorID != 1 || got.ParentID != 0 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSettingsLifecycle(t *testing.T) {
	f := newMasterFixture()
	ctx := context.Background()

	if err := f.svc.UpsertSetting(ctx, &domain.Setting{Key: "", Value: "x"}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("empty key: got %v, want ErrInvalidArgument", err)
	}

	if err := f.svc.UpsertSetting(ctx, &domain.Setting{Key: "spa.name", Value: "Serenispa"}); err != nil {
		t.Fatal(err)
	}
	got, err := f.svc.GetSetting(ctx, "spa.name")
	if err != nil || got.Value != "Serenispa" {
		t.Fatalf("get: %v %+v", err, got)
	}

	// Deleting an absent key must report not-found, not silently no-op.
	if err := f.svc.DeleteSetting(ctx, "spa.ghost"); !errors.Is(err, domain.ErrSettingNotFound) {
		t.Fatalf("got %v, want ErrSettingNotFound", err)
	}
	if err := f.svc.DeleteSetting(ctx, "spa.name"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
