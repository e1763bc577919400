package service

import (
	"context"
	"time"

	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests. Each stub stores
// records in a map and mirrors the filters the real MySQL repos apply.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (r *stubUserRepo) List(_ context.Context, f ports.UserFilter) ([]domain.User, int64, error) {
	var out []domain.User
	for _, u := range r.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Active != nil && u.Active != *f.Active {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrUserExists
		}
	}
	u.ID = r.nextID
	r.nextID++
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

type stubGuestRepo struct {
	guests map[uint]*domain.Guest
	nextID uint
}

func newStubGuestRepo() *stubGuestRepo {
	return &stubGuestRepo{guests: make(map[uint]*domain.Guest), nextID: 1}
}

func (r *stubGuestRepo) List(_ context.Context, f ports.GuestFilter) ([]domain.Guest, int64, error) {
	var out []domain.Guest
	for _, g := range r.guests {
		if f.Active != nil && g.Active != *f.Active {
			continue
		}
		out = append(out, *g)
	}
	return out, int64(len(out)), nil
}

func (r *stubGuestRepo) GetByID(_ context.Context, id uint) (*domain.Guest, error) {
	g, ok := r.guests[id]
	if !ok {
		return nil, domain.ErrGuestNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *stubGuestRepo) Create(_ context.Context, g *domain.Guest) error {
	g.ID = r.nextID
	r.nextID++
	clone := *g
	r.guests[g.ID] = &clone
	return nil
}

func (r *stubGuestRepo) Update(_ context.Context, g *domain.Guest) error {
	if _, ok := r.guests[g.ID]; !ok {
		return domain.ErrGuestNotFound
	}
	clone := *g
	r.guests[g.ID] = &clone
	return nil
}

func (r *stubGuestRepo) CountByLanguage(_ context.Context, languageID uint) (int64, error) {
	var n int64
	for _, g := range r.guests {
		if g.LanguageID == languageID {
			n++
		}
	}
	return n, nil
}

type stubTherapistRepo struct {
	therapists map[uint]*domain.Therapist
	nextID     uint
}

func newStubTherapistRepo() *stubTherapistRepo {
	return &stubTherapistRepo{therapists: make(map[uint]*domain.Therapist), nextID: 1}
}

func (r *stubTherapistRepo) List(_ context.Context, f ports.TherapistFilter) ([]domain.Therapist, int64, error) {
	var out []domain.Therapist
	for _, t := range r.therapists {
		if f.Active != nil && t.Active != *f.Active {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *stubTherapistRepo) GetByID(_ context.Context, id uint) (*domain.Therapist, error) {
	t, ok := r.therapists[id]
	if !ok {
		return nil, domain.ErrTherapistNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTherapistRepo) Create(_ context.Context, t *domain.Therapist) error {
	t.ID = r.nextID
	r.nextID++
	clone := *t
	r.therapists[t.ID] = &clone
	return nil
}

func (r *stubTherapistRepo) Update(_ context.Context, t *domain.Therapist) error {
	if _, ok := r.therapists[t.ID]; !ok {
		return domain.ErrTherapistNotFound
	}
	clone := *t
	r.therapists[t.ID] = &clone
	return nil
}

type stubRoomRepo struct {
	rooms  map[uint]*domain.Room
	nextID uint
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{rooms: make(map[uint]*domain.Room), nextID: 1}
}

func (r *stubRoomRepo) List(_ context.Context, f ports.RoomFilter) ([]domain.Room, int64, error) {
	var out []domain.Room
	for _, rm := range r.rooms {
		if f.Status != nil && rm.Status != *f.Status {
			continue
		}
		out = append(out, *rm)
	}
	return out, int64(len(out)), nil
}

func (r *stubRoomRepo) GetByID(_ context.Context, id uint) (*domain.Room, error) {
	rm, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	clone := *rm
	return &clone, nil
}

func (r *stubRoomRepo) Create(_ context.Context, rm *domain.Room) error {
	rm.ID = r.nextID
	r.nextID++
	clone := *rm
	r.rooms[rm.ID] = &clone
	return nil
}

func (r *stubRoomRepo) Update(_ context.Context, rm *domain.Room) error {
	if _, ok := r.rooms[rm.ID]; !ok {
		return domain.ErrRoomNotFound
	}
	clone := *rm
	r.rooms[rm.ID] = &clone
	return nil
}

type stubServiceRepo struct {
	services map[uint]*domain.Service
	nextID   uint
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{services: make(map[uint]*domain.Service), nextID: 1}
}

func (r *stubServiceRepo) List(_ context.Context, f ports.ServiceFilter) ([]domain.Service, int64, error) {
	var out []domain.Service
	for _, s := range r.services {
		if f.CategoryID != nil && s.CategoryID != *f.CategoryID {
			continue
		}
		if f.Status != nil && s.Status != *f.Status {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubServiceRepo) GetByID(_ context.Context, id uint) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.Service) error {
	s.ID = r.nextID
	r.nextID++
	clone := *s
	r.services[s.ID] = &clone
	return nil
}

func (r *stubServiceRepo) Update(_ context.Context, s *domain.Service) error {
	if _, ok := r.services[s.ID]; !ok {
		return domain.ErrServiceNotFound
	}
	clone := *s
	r.services[s.ID] = &clone
	return nil
}

func (r *stubServiceRepo) CountByCategory(_ context.Context, categoryID uint) (int64, error) {
	var n int64
	for _, s := range r.services {
		if s.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *stubServiceRepo) CountByTax(_ context.Context, taxID uint) (int64, error) {
	var n int64
	for _, s := range r.services {
		if s.TaxID == taxID {
			n++
		}
	}
	return n, nil
}

func (r *stubServiceRepo) CountByCurrency(_ context.Context, currencyID uint) (int64, error) {
	var n int64
	for _, s := range r.services {
		if s.CurrencyID == currencyID {
			n++
		}
	}
	return n, nil
}

type stubBookingRepo struct {
	bookings map[uint]*domain.Booking
	events   map[uint][]domain.BookingEvent
	nextID   uint
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{
		bookings: make(map[uint]*domain.Booking),
		events:   make(map[uint][]domain.BookingEvent),
		nextID:   1,
	}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	b.ID = r.nextID
	r.nextID++
	clone := *b
	r.bookings[b.ID] = &clone
	r.events[b.ID] = append(r.events[b.ID], domain.BookingEvent{
		BookingID: b.ID, Status: b.Status, Timestamp: time.Now().UTC(),
	})
	return nil
}

func (r *stubBookingRepo) FindByReference(_ context.Context, reference string) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.Reference == reference {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *stubBookingRepo) List(_ context.Context, f ports.BookingFilter) ([]domain.Booking, int64, error) {
	var out []domain.Booking
	for _, b := range r.bookings {
		if f.Status != "" && string(b.Status) != f.Status {
			continue
		}
		if f.GuestID != nil && b.GuestID != *f.GuestID {
			continue
		}
		if f.RoomID != nil && b.RoomID != *f.RoomID {
			continue
		}
		if f.TherapistID != nil && b.TherapistID != *f.TherapistID {
			continue
		}
		if !f.DateFrom.IsZero() && b.StartsAt.Before(f.DateFrom) {
			continue
		}
		if !f.DateTo.IsZero() && b.StartsAt.After(f.DateTo) {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *stubBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return domain.ErrBookingNotFound
	}
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, bookingID uint, status domain.BookingStatus, event *domain.BookingEvent) error {
	b, ok := r.bookings[bookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status = status
	r.events[bookingID] = append(r.events[bookingID], *event)
	return nil
}

func (r *stubBookingRepo) ListEvents(_ context.Context, bookingID uint) ([]domain.BookingEvent, error) {
	return r.events[bookingID], nil
}

func (r *stubBookingRepo) CountUpcoming(_ context.Context, owner ports.BookingOwner, id uint, now time.Time) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if !b.Blocking(now) {
			continue
		}
		switch owner {
		case ports.OwnerRoom:
			if b.RoomID == id {
				n++
			}
		case ports.OwnerService:
			if b.ServiceID == id {
				n++
			}
		case ports.OwnerTherapist:
			if b.TherapistID == id {
				n++
			}
		case ports.OwnerGuest:
			if b.GuestID == id {
				n++
			}
		}
	}
	return n, nil
}

// --- Master-data stubs ---

type stubCategoryRepo struct {
	categories map[uint]*domain.Category
	nextID     uint
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uint]*domain.Category), nextID: 1}
}

func (r *stubCategoryRepo) List(_ context.Context, f ports.CategoryFilter) ([]domain.Category, int64, error) {
	var out []domain.Category
	for _, c := range r.categories {
		if f.ParentID != nil && c.ParentID != *f.ParentID {
			continue
		}
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCategoryRepo) GetByID(_ context.Context, id uint) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) CountChildren(_ context.Context, parentID uint) (int64, error) {
	var n int64
	for _, c := range r.categories {
		if c.ParentID == parentID {
			n++
		}
	}
	return n, nil
}

type stubCountryRepo struct {
	countries map[uint]*domain.Country
	nextID    uint
}

func newStubCountryRepo() *stubCountryRepo {
	return &stubCountryRepo{countries: make(map[uint]*domain.Country), nextID: 1}
}

func (r *stubCountryRepo) List(_ context.Context, _ ports.CountryFilter) ([]domain.Country, int64, error) {
	var out []domain.Country
	for _, c := range r.countries {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCountryRepo) GetByID(_ context.Context, id uint) (*domain.Country, error) {
	c, ok := r.countries[id]
	if !ok {
		return nil, domain.ErrCountryNotFound
	}
	clone := *c
	return &clone, nil
}

// Create mirrors the real repo: setting a new default clears the others.
func (r *stubCountryRepo) Create(_ context.Context, c *domain.Country) error {
	if c.IsDefault {
		for _, other := range r.countries {
			other.IsDefault = false
		}
	}
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.countries[c.ID] = &clone
	return nil
}

func (r *stubCountryRepo) Update(_ context.Context, c *domain.Country) error {
	if _, ok := r.countries[c.ID]; !ok {
		return domain.ErrCountryNotFound
	}
	if c.IsDefault {
		for id, other := range r.countries {
			if id != c.ID {
				other.IsDefault = false
			}
		}
	}
	clone := *c
	r.countries[c.ID] = &clone
	return nil
}

func (r *stubCountryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.countries[id]; !ok {
		return domain.ErrCountryNotFound
	}
	delete(r.countries, id)
	return nil
}

type stubCityRepo struct {
	cities map[uint]*domain.City
	nextID uint
}

func newStubCityRepo() *stubCityRepo {
	return &stubCityRepo{cities: make(map[uint]*domain.City), nextID: 1}
}

func (r *stubCityRepo) List(_ context.Context, f ports.CityFilter) ([]domain.City, int64, error) {
	var out []domain.City
	for _, c := range r.cities {
		if f.CountryID != nil && c.CountryID != *f.CountryID {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCityRepo) GetByID(_ context.Context, id uint) (*domain.City, error) {
	c, ok := r.cities[id]
	if !ok {
		return nil, domain.ErrCityNotFound
	}
	clone := *c
	return &clone, nil
}

// Create mirrors the real repo: the default flag is exclusive per country.
func (r *stubCityRepo) Create(_ context.Context, c *domain.City) error {
	if c.IsDefault {
		for _, other := range r.cities {
			if other.CountryID == c.CountryID {
				other.IsDefault = false
			}
		}
	}
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.cities[c.ID] = &clone
	return nil
}

func (r *stubCityRepo) Update(_ context.Context, c *domain.City) error {
	if _, ok := r.cities[c.ID]; !ok {
		return domain.ErrCityNotFound
	}
	if c.IsDefault {
		for id, other := range r.cities {
			if id != c.ID && other.CountryID == c.CountryID {
				other.IsDefault = false
			}
		}
	}
	clone := *c
	r.cities[c.ID] = &clone
	return nil
}

func (r *stubCityRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.cities[id]; !ok {
		return domain.ErrCityNotFound
	}
	delete(r.cities, id)
	return nil
}

func (r *stubCityRepo) CountByCountry(_ context.Context, countryID uint) (int64, error) {
	var n int64
	for _, c := range r.cities {
		if c.CountryID == countryID {
			n++
		}
	}
	return n, nil
}

type stubCurrencyRepo struct {
	currencies map[uint]*domain.Currency
	nextID     uint
}

func newStubCurrencyRepo() *stubCurrencyRepo {
	return &stubCurrencyRepo{currencies: make(map[uint]*domain.Currency), nextID: 1}
}

func (r *stubCurrencyRepo) List(_ context.Context, _ ports.CurrencyFilter) ([]domain.Currency, int64, error) {
	var out []domain.Currency
	for _, c := range r.currencies {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCurrencyRepo) GetByID(_ context.Context, id uint) (*domain.Currency, error) {
	c, ok := r.currencies[id]
	if !ok {
		return nil, domain.ErrCurrencyNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCurrencyRepo) Create(_ context.Context, c *domain.Currency) error {
	if c.IsDefault {
		for _, other := range r.currencies {
			other.IsDefault = false
		}
	}
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.currencies[c.ID] = &clone
	return nil
}

func (r *stubCurrencyRepo) Update(_ context.Context, c *domain.Currency) error {
	if _, ok := r.currencies[c.ID]; !ok {
		return domain.ErrCurrencyNotFound
	}
	if c.IsDefault {
		for id, other := range r.currencies {
			if id != c.ID {
				other.IsDefault = false
			}
		}
	}
	clone := *c
	r.currencies[c.ID] = &clone
	return nil
}

func (r *stubCurrencyRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.currencies[id]; !ok {
		return domain.ErrCurrencyNotFound
	}
	delete(r.currencies, id)
	return nil
}

type stubLanguageRepo struct {
	languages map[uint]*domain.Language
	nextID    uint
}

func newStubLanguageRepo() *stubLanguageRepo {
	return &stubLanguageRepo{languages: make(map[uint]*domain.Language), nextID: 1}
}

func (r *stubLanguageRepo) List(_ context.Context, _ ports.LanguageFilter) ([]domain.Language, int64, error) {
	var out []domain.Language
	for _, l := range r.languages {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (r *stubLanguageRepo) GetByID(_ context.Context, id uint) (*domain.Language, error) {
	l, ok := r.languages[id]
	if !ok {
		return nil, domain.ErrLanguageNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLanguageRepo) Create(_ context.Context, l *domain.Language) error {
	if l.IsDefault {
		for _, other := range r.languages {
			other.IsDefault = false
		}
	}
	l.ID = r.nextID
	r.nextID++
	clone := *l
	r.languages[l.ID] = &clone
	return nil
}

func (r *stubLanguageRepo) Update(_ context.Context, l *domain.Language) error {
	if _, ok := r.languages[l.ID]; !ok {
		return domain.ErrLanguageNotFound
	}
	if l.IsDefault {
		for id, other := range r.languages {
			if id != l.ID {
				other.IsDefault = false
			}
		}
	}
	clone := *l
	r.languages[l.ID] = &clone
	return nil
}

func (r *stubLanguageRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.languages[id]; !ok {
		return domain.ErrLanguageNotFound
	}
	delete(r.languages, id)
	return nil
}

type stubTaxRepo struct {
	taxes  map[uint]*domain.Tax
	nextID uint
}

func newStubTaxRepo() *stubTaxRepo {
	return &stubTaxRepo{taxes: make(map[uint]*domain.Tax), nextID: 1}
}

func (r *stubTaxRepo) List(_ context.Context, f ports.TaxFilter) ([]domain.Tax, int64, error) {
	var out []domain.Tax
	for _, t := range r.taxes {
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *stubTaxRepo) GetByID(_ context.Context, id uint) (*domain.Tax, error) {
	t, ok := r.taxes[id]
	if !ok {
		return nil, domain.ErrTaxNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaxRepo) Create(_ context.Context, t *domain.Tax) error {
	t.ID = r.nextID
	r.nextID++
	clone := *t
	r.taxes[t.ID] = &clone
	return nil
}

func (r *stubTaxRepo) Update(_ context.Context, t *domain.Tax) error {
	if _, ok := r.taxes[t.ID]; !ok {
		return domain.ErrTaxNotFound
	}
	clone := *t
	r.taxes[t.ID] = &clone
	return nil
}

func (r *stubTaxRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.taxes[id]; !ok {
		return domain.ErrTaxNotFound
	}
	delete(r.taxes, id)
	return nil
}

type stubOpeningHourRepo struct {
	hours map[int]*domain.OpeningHour
}

func newStubOpeningHourRepo() *stubOpeningHourRepo {
	return &stubOpeningHourRepo{hours: make(map[int]*domain.OpeningHour)}
}

func (r *stubOpeningHourRepo) ListAll(_ context.Context) ([]domain.OpeningHour, error) {
	var out []domain.OpeningHour
	for _, h := range r.hours {
		out = append(out, *h)
	}
	return out, nil
}

func (r *stubOpeningHourRepo) GetByWeekday(_ context.Context, weekday int) (*domain.OpeningHour, error) {
	h, ok := r.hours[weekday]
	if !ok {
		return nil, domain.ErrSettingNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *stubOpeningHourRepo) Upsert(_ context.Context, h *domain.OpeningHour) error {
	clone := *h
	r.hours[h.Weekday] = &clone
	return nil
}

type stubSettingRepo struct {
	settings map[string]*domain.Setting
}

func newStubSettingRepo() *stubSettingRepo {
	return &stubSettingRepo{settings: make(map[string]*domain.Setting)}
}

func (r *stubSettingRepo) ListAll(_ context.Context) ([]domain.Setting, error) {
	var out []domain.Setting
	for _, s := range r.settings {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSettingRepo) GetByKey(_ context.Context, key string) (*domain.Setting, error) {
	s, ok := r.settings[key]
	if !ok {
		return nil, domain.ErrSettingNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSettingRepo) Upsert(_ context.Context, s *domain.Setting) error {
	clone := *s
	r.settings[s.Key] = &clone
	return nil
}

func (r *stubSettingRepo) Delete(_ context.Context, key string) error {
	if _, ok := r.settings[key]; !ok {
		return domain.ErrSettingNotFound
	}
	delete(r.settings, key)
	return nil
}
