package invoices

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neillbeauty/neill-beauty-api/internal/store"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "test.sqlite"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE invoices (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reservation_id INTEGER,
			invoice_number TEXT UNIQUE NOT NULL,
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			service_name TEXT NOT NULL,
			amount DECIMAL(10,2) NOT NULL,
			paid_amount DECIMAL(10,2) DEFAULT 0,
			status TEXT DEFAULT 'pending' CHECK(status IN ('pending', 'partially_paid', 'paid', 'cancelled')),
			payment_method TEXT,
			due_date DATE,
			issued_date DATE DEFAULT CURRENT_DATE,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	require.NoError(t, err)
	return db
}

func newInvoice(t *testing.T, repo *Repository, amount float64) *Invoice {
	t.Helper()
	inv, err := repo.Create(context.Background(), &CreateInvoiceRequest{
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		ServiceName:   "Balayage",
		Amount:        amount,
	})
	require.NoError(t, err)
	return inv
}

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	first := newInvoice(t, repo, 100)
	second := newInvoice(t, repo, 80)

	year := time.Now().Format("2006")
	assert.Equal(t, fmt.Sprintf("NB-%s-0001", year), first.InvoiceNumber)
	assert.Equal(t, fmt.Sprintf("NB-%s-0002", year), second.InvoiceNumber)
	assert.Equal(t, StatusPending, first.Status)
}

func TestCreateRejectsDuplicateNumber(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	req := &CreateInvoiceRequest{
		InvoiceNumber: "NB-2026-0042",
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		ServiceName:   "Balayage",
		Amount:        100,
	}
	_, err := repo.Create(ctx, req)
	require.NoError(t, err)

	_, err = repo.Create(ctx, req)
	assert.ErrorIs(t, err, ErrDuplicateNumber)
}

func TestPartialPaymentDerivesStatus(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()
	inv := newInvoice(t, repo, 100)

	inv, err := repo.RecordPayment(ctx, inv.ID, &PaymentRequest{Amount: 40, PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, StatusPartiallyPaid, inv.Status)
	assert.InDelta(t, 40, inv.PaidAmount, 0.001)
	assert.InDelta(t, 60, inv.Outstanding(), 0.001)

	inv, err = repo.RecordPayment(ctx, inv.ID, &PaymentRequest{Amount: 60, PaymentMethod: "cash"})
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, inv.Status)
	assert.InDelta(t, 0, inv.Outstanding(), 0.001)
}

func TestPaymentCannotExceedBalance(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()
	inv := newInvoice(t, repo, 100)

	_, err := repo.RecordPayment(ctx, inv.ID, &PaymentRequest{Amount: 150})
	assert.ErrorIs(t, err, ErrOverpayment)

	got, err := repo.Get(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
	assert.Zero(t, got.PaidAmount)
}

func TestPaymentAgainstCancelledInvoice(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()
	inv := newInvoice(t, repo, 100)

	_, err := repo.Cancel(ctx, inv.ID)
	require.NoError(t, err)

	_, err = repo.RecordPayment(ctx, inv.ID, &PaymentRequest{Amount: 10})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestCancelSettledInvoice(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()
	inv := newInvoice(t, repo, 50)

	_, err := repo.RecordPayment(ctx, inv.ID, &PaymentRequest{Amount: 50})
	require.NoError(t, err)

	_, err = repo.Cancel(ctx, inv.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestListFiltersByStatus(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	newInvoice(t, repo, 100)
	paid := newInvoice(t, repo, 50)
	_, err := repo.RecordPayment(ctx, paid.ID, &PaymentRequest{Amount: 50})
	require.NoError(t, err)

	out, err := repo.List(ctx, StatusPaid)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, paid.ID, out[0].ID)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateValidation(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &CreateInvoiceRequest{CustomerName: "Ada"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = repo.Create(ctx, &CreateInvoiceRequest{
		CustomerName: "Ada", CustomerEmail: "a@example.com", ServiceName: "Cut", Amount: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
