package reservations

import "errors"

var (
	// ErrMissingFields is returned when name, email or service type is absent.
	ErrMissingFields = errors.New("name, email and service type are required")

	// ErrInvalidEmail is returned when the email does not look like an address.
	ErrInvalidEmail = errors.New("email address is not valid")

	// ErrInvalidDate is returned when preferred_date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("preferred date must be YYYY-MM-DD")

	// ErrInvalidTime is returned when preferred_time is not HH:MM.
	ErrInvalidTime = errors.New("preferred time must be HH:MM")

	// ErrIncompleteSchedule is returned when only one of date/time is given.
	ErrIncompleteSchedule = errors.New("preferred date and time must be provided together")

	// ErrSlotUnavailable is returned when the requested slot does not exist
	// or is already flagged unavailable.
	ErrSlotUnavailable = errors.New("this time slot is not available")

	// ErrSlotConflict is returned when a non-cancelled reservation already
	// occupies the requested date and time.
	ErrSlotConflict = errors.New("this time slot is already booked")

	// ErrNotFound is returned when a reservation id does not exist.
	ErrNotFound = errors.New("reservation not found")

	// ErrInvalidStatus is returned for an unknown status value.
	ErrInvalidStatus = errors.New("unknown reservation status")

	// ErrInvalidTransition is returned when a status change breaks the
	// pending -> confirmed -> completed lifecycle.
	ErrInvalidTransition = errors.New("status transition not allowed")
)
