package reservations

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledRequest() *CreateReservationRequest {
	return &CreateReservationRequest{
		Name:          "Sophie Laurent",
		Email:         "sophie@example.com",
		ServiceType:   "maquillage-professionnel",
		PreferredDate: "2024-06-03",
		PreferredTime: "09:00",
	}
}

func reservationRow(id int64, status Status) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "service_type", "service_name",
		"preferred_date", "preferred_time", "message", "status", "created_at", "updated_at",
	}).AddRow(id, "Sophie Laurent", "sophie@example.com", "", "maquillage-professionnel", "",
		"2024-06-03", "09:00", "", string(status), now, now)
}

func TestCreateScheduledClaimsSlotInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE time_slots")).
		WithArgs("2024-06-03", "09:00").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations")).
		WithArgs("2024-06-03", "09:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE time_slots SET reserved_by = ?")).
		WithArgs(int64(42), "2024-06-03", "09:00").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email")).
		WithArgs(int64(42)).
		WillReturnRows(reservationRow(42, StatusPending))

	rv, err := repo.Create(context.Background(), scheduledRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), rv.ID)
	assert.Equal(t, StatusPending, rv.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateScheduledSlotAlreadyClaimed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	// Conditional claim touches zero rows: slot missing or flagged off.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE time_slots")).
		WithArgs("2024-06-03", "09:00").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err = repo.Create(context.Background(), scheduledRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateScheduledConflictRollsBackClaim(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE time_slots")).
		WithArgs("2024-06-03", "09:00").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// A non-cancelled reservation already occupies the time: the rollback
	// must also undo the claim above.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations")).
		WithArgs("2024-06-03", "09:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err = repo.Create(context.Background(), scheduledRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUnscheduledSkipsSlotTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	req := scheduledRequest()
	req.PreferredDate = ""
	req.PreferredTime = ""

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnResult(sqlmock.NewResult(7, 1))
	rows := reservationRow(7, StatusPending)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	rv, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsInvalidRequestBeforeTouchingStorage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	req := scheduledRequest()
	req.Name = ""
	_, err = repo.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusCancelReleasesSlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, preferred_date, preferred_time")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "preferred_date", "preferred_time"}).
			AddRow("confirmed", "2024-06-03", "09:00"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = ?")).
		WithArgs("cancelled", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET is_available = 1, reserved_by = NULL")).
		WithArgs("2024-06-03", "09:00", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email")).
		WithArgs(int64(42)).
		WillReturnRows(reservationRow(42, StatusCancelled))

	rv, err := repo.UpdateStatus(context.Background(), 42, StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, rv.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusCancelWithoutSlotSkipsRelease(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, preferred_date, preferred_time")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "preferred_date", "preferred_time"}).
			AddRow("pending", "", ""))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = ?")).
		WithArgs("cancelled", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email")).
		WithArgs(int64(9)).
		WillReturnRows(reservationRow(9, StatusCancelled))

	_, err = repo.UpdateStatus(context.Background(), 9, StatusCancelled)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, preferred_date, preferred_time")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "preferred_date", "preferred_time"}).
			AddRow("completed", "2024-06-03", "09:00"))
	mock.ExpectRollback()

	_, err = repo.UpdateStatus(context.Background(), 42, StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusUnknownReservation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, preferred_date, preferred_time")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "preferred_date", "preferred_time"}))
	mock.ExpectRollback()

	_, err = repo.UpdateStatus(context.Background(), 404, StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
