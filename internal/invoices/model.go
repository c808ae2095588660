package invoices

import "time"

// Status is the payment state of an invoice.
type Status string

const (
	StatusPending       Status = "pending"
	StatusPartiallyPaid Status = "partially_paid"
	StatusPaid          Status = "paid"
	StatusCancelled     Status = "cancelled"
)

// Invoice is a bill issued for a salon service, optionally linked to
// the reservation it was raised for.
type Invoice struct {
	ID            int64     `json:"id"`
	ReservationID *int64    `json:"reservation_id"`
	InvoiceNumber string    `json:"invoice_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ServiceName   string    `json:"service_name"`
	Amount        float64   `json:"amount"`
	PaidAmount    float64   `json:"paid_amount"`
	Status        Status    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	DueDate       string    `json:"due_date"`
	IssuedDate    string    `json:"issued_date"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Outstanding is the balance still owed on the invoice.
func (i *Invoice) Outstanding() float64 {
	return i.Amount - i.PaidAmount
}

// CreateInvoiceRequest is the payload for raising a new invoice. When
// InvoiceNumber is empty the repository assigns the next number in
// sequence.
type CreateInvoiceRequest struct {
	ReservationID *int64  `json:"reservation_id"`
	InvoiceNumber string  `json:"invoice_number"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	ServiceName   string  `json:"service_name"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"due_date"`
	Notes         string  `json:"notes"`
}

// Validate checks the required fields.
func (r *CreateInvoiceRequest) Validate() error {
	if r.CustomerName == "" || r.CustomerEmail == "" || r.ServiceName == "" {
		return ErrMissingFields
	}
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// PaymentRequest records a payment against an invoice. The resulting
// status is derived from the running paid amount, never set directly.
type PaymentRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

// Validate checks the payment amount.
func (r *PaymentRequest) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidPayment
	}
	return nil
}
