package domain

import "errors"

// Sentinel errors shared across services. The HTTP layer maps these to
// status codes in one place (internal/api/error_handler.go).
var (
	ErrInvalidArgument = errors.New("invalid argument")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account is locked")
	ErrForbidden          = errors.New("access forbidden")

	ErrCategoryNotFound  = errors.New("category not found")
	ErrCurrencyNotFound  = errors.New("currency not found")
	ErrCountryNotFound   = errors.New("country not found")
	ErrCityNotFound      = errors.New("city not found")
	ErrLanguageNotFound  = errors.New("language not found")
	ErrTaxNotFound       = errors.New("tax not found")
	ErrRoomNotFound      = errors.New("room not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrGuestNotFound     = errors.New("guest not found")
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSettingNotFound   = errors.New("setting not found")

	// ErrDuplicateRecord signals a unique-constraint violation re-surfaced
	// with a domain message instead of a storage-engine error code.
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrHasDependents blocks deletes of records that are still referenced
	// (future bookings, child cities, services using a tax, ...).
	ErrHasDependents = errors.New("record has dependent records")

	// ErrDefaultRecord blocks deleting the record currently flagged as the
	// default of its scope.
	ErrDefaultRecord = errors.New("cannot delete the default record")

	ErrInvalidTransition = errors.New("invalid status transition")
)
