package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stay/infras/otel/mocks"
	"stay/infras/postgres"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/repository"
)

func newBookingRepo(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.New(conn, mocks.NewOtel()), mock
}

func TestBookingRepository_CreateWithDetails(t *testing.T) {
	booking := model.Booking{
		ID:         "booking-1",
		GuestID:    "guest-1",
		HotelID:    "hotel-1",
		CheckIn:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
		TotalPrice: 1000000,
		Status:     model.StatusPending,
	}

	details := []model.BookingDetail{
		{
			ID:            "detail-1",
			BookingID:     booking.ID,
			RoomTypeID:    "room-type-1",
			Quantity:      2,
			UnitPrice:     500000,
			Subtotal:      1000000,
			GuestsPerRoom: 2,
		},
	}

	t.Run("commits header and details together", func(t *testing.T) {
		repo, mock := newBookingRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO booking_details").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateWithDetails(context.Background(), booking, details)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the detail insert fails", func(t *testing.T) {
		repo, mock := newBookingRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO booking_details").WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.CreateWithDetails(context.Background(), booking, details)
		assert.Error(t, err)
		assert.ErrorContains(t, err, "failed to insert booking details")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the header insert fails", func(t *testing.T) {
		repo, mock := newBookingRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO bookings").WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.CreateWithDetails(context.Background(), booking, details)
		assert.Error(t, err)
		assert.ErrorContains(t, err, "failed to insert booking")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
