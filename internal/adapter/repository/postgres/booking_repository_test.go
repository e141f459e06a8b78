package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/villa_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/srgjo27/villa_booking/internal/core/ports"
)

func newMock(t *testing.T) (*postgres.BookingRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return postgres.NewBookingRepository(db), mock
}

func TestLoadHistory(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT json FROM bookings WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"json"}).
			AddRow([]byte(`[{"bookingId":4,"status":"Inquiry","refferral":"Other","otherRefferal":"Friend"},{"bookingId":4,"status":"Confirmed"}]`)))

	history, err := repo.LoadHistory(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.ReferralOther, history[0].Referral)
	assert.Equal(t, "Friend", history[0].OtherReferral)
	assert.Equal(t, domain.StatusConfirmed, history[1].Status)
}

func TestLoadHistory_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT json FROM bookings`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"json"}))

	_, err := repo.LoadHistory(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookings (json) VALUES ('[]'::jsonb) RETURNING id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec(regexp.QuoteMeta(`SET json = json || jsonb_build_array($2::jsonb)`)).
		WithArgs(int64(12), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	b := domain.NewBooking()
	id, err := repo.Create(context.Background(), &b)

	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.Equal(t, int64(12), b.BookingID)
}

func TestCreate_RollsBackOnAppendFailure(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(13)))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings`)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	b := domain.NewBooking()
	_, err := repo.Create(context.Background(), &b)

	assert.Error(t, err)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings`)).
		WithArgs(int64(5), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	b := domain.NewBooking()
	b.BookingID = 5
	err := repo.Update(context.Background(), &b)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestUpdate_Appends(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings`)).
		WithArgs(int64(5), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	b := domain.NewBooking()
	b.BookingID = 5
	assert.NoError(t, repo.Update(context.Background(), &b))
}

func TestDelete(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM bookings WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM bookings WHERE id = $1`)).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), 5))
	assert.ErrorIs(t, repo.Delete(context.Background(), 6), domain.ErrBookingNotFound)
}

func TestList_Filters(t *testing.T) {
	repo, mock := newMock(t)
	starred := true

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, json -> -1 FROM bookings WHERE jsonb_array_length(json) > 0 AND json -> -1 ->> 'status' = $1 AND COALESCE((json -> -1 ->> 'starred')::boolean, false) = $2 ORDER BY id DESC LIMIT $3`)).
		WithArgs("Confirmed", true, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "json"}).
			AddRow(int64(8), []byte(`{"status":"Confirmed","starred":true}`)))

	out, err := repo.List(context.Background(), ports.ListFilter{
		Status:  domain.StatusConfirmed,
		Starred: &starred,
		Limit:   50,
	})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(8), out[0].BookingID)
	assert.True(t, out[0].Starred)
}
