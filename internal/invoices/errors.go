package invoices

import "errors"

var (
	// ErrMissingFields is returned when required invoice fields are absent.
	ErrMissingFields = errors.New("customer name, email, service and amount are required")

	// ErrInvalidAmount is returned for non-positive invoice amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidPayment is returned for non-positive payment amounts.
	ErrInvalidPayment = errors.New("payment amount must be greater than zero")

	// ErrOverpayment is returned when a payment would exceed the invoice total.
	ErrOverpayment = errors.New("payment exceeds the outstanding balance")

	// ErrNotFound is returned when the invoice does not exist.
	ErrNotFound = errors.New("invoice not found")

	// ErrDuplicateNumber is returned when the invoice number is already taken.
	ErrDuplicateNumber = errors.New("invoice number already exists")

	// ErrCancelled is returned when recording a payment against a
	// cancelled invoice.
	ErrCancelled = errors.New("invoice is cancelled")

	// ErrNotCancellable is returned when cancelling a settled invoice.
	ErrNotCancellable = errors.New("only pending or partially paid invoices can be cancelled")
)
