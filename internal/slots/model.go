package slots

import "time"

// TimeSlot is one bookable half-hour interval on the calendar. The pair
// (date, start_time) is unique; a slot claimed by a reservation carries that
// reservation's id in ReservedBy.
type TimeSlot struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`       // YYYY-MM-DD
	StartTime   string    `json:"start_time"` // HH:MM
	EndTime     string    `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	ServiceType *string   `json:"service_type"`
	ReservedBy  *int64    `json:"reserved_by"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateSlotRequest is the admin request for adding a single slot by hand.
type CreateSlotRequest struct {
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	ServiceType *string `json:"service_type"`
	Notes       *string `json:"notes"`
}

// Validate checks the required fields.
func (r *CreateSlotRequest) Validate() error {
	if r.Date == "" || r.StartTime == "" || r.EndTime == "" {
		return ErrInvalidSlot
	}
	return nil
}

// UpdateSlotRequest is the admin request for editing an existing slot.
// Omitted pointers leave IsAvailable defaulting to true, matching the
// original admin surface.
type UpdateSlotRequest struct {
	ID          int64   `json:"id"`
	IsAvailable *bool   `json:"is_available"`
	ServiceType *string `json:"service_type"`
	Notes       *string `json:"notes"`
	ReservedBy  *int64  `json:"reserved_by"`
}
