package reservations

import (
	"regexp"
	"strings"
	"time"
)

// Status is the reservation lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the administrative state machine: forward through
// confirmed to completed, cancellable until completed, no way out of a
// terminal state.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation is a customer booking request.
type Reservation struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ServiceType   string    `json:"service_type"`
	ServiceName   string    `json:"service_name"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Message       string    `json:"message"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Scheduled reports whether the reservation targets a concrete slot.
func (r *Reservation) Scheduled() bool {
	return r.PreferredDate != "" && r.PreferredTime != ""
}

// CreateReservationRequest is the public booking request body.
type CreateReservationRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ServiceType   string `json:"service_type"`
	ServiceName   string `json:"service_name"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Message       string `json:"message"`
}

// Local convention only, not full RFC address validation.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Validate checks required fields and, when a slot is requested, the
// date/time formats. A reservation may omit both date and time entirely;
// staff schedule those later.
func (r *CreateReservationRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.ServiceType) == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(r.Email) {
		return ErrInvalidEmail
	}
	if (r.PreferredDate == "") != (r.PreferredTime == "") {
		return ErrIncompleteSchedule
	}
	if r.PreferredDate != "" && !datePattern.MatchString(r.PreferredDate) {
		return ErrInvalidDate
	}
	if r.PreferredTime != "" && !timePattern.MatchString(r.PreferredTime) {
		return ErrInvalidTime
	}
	return nil
}

// Scheduled reports whether the request targets a concrete slot.
func (r *CreateReservationRequest) Scheduled() bool {
	return r.PreferredDate != "" && r.PreferredTime != ""
}

// UpdateStatusRequest is the admin status-transition body.
type UpdateStatusRequest struct {
	ID     int64  `json:"id"`
	Status Status `json:"status"`
}
