package slots

import "errors"

var (
	// ErrDateRequired is returned when an availability lookup has no date.
	ErrDateRequired = errors.New("date is required")

	// ErrSlotNotFound is returned when a slot id does not exist.
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrDuplicateSlot is returned when a slot already exists for the
	// requested date and start time.
	ErrDuplicateSlot = errors.New("a time slot already exists for this date and time")

	// ErrInvalidSlot is returned when required slot fields are missing.
	ErrInvalidSlot = errors.New("date, start time and end time are required")
)
