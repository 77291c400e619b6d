package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/rail-booking/internal/model"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func TestStationRepoListAll(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, code FROM stations ORDER BY name")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code"}).
			AddRow(1, "Bengaluru (SBC)", "SBC").
			AddRow(2, "Mysuru (MYS)", "MYS"))

	got, err := NewStationRepo(db).ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Station{
		{ID: 1, Name: "Bengaluru (SBC)", Code: "SBC"},
		{ID: 2, Name: "Mysuru (MYS)", Code: "MYS"},
	}, got)
}

func TestStationRepoListAllEmpty(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM stations").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code"}))

	got, err := NewStationRepo(db).ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFareRepoGetByPair(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM fares WHERE from_station_id = \\? AND to_station_id = \\?").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"from_station_id", "to_station_id", "fare_ac", "fare_sleeper", "fare_passenger"}).
			AddRow(1, 2, "500.00", "300.00", nil))

	f, err := NewFareRepo(db).GetByPair(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), f.FromStationID)
	assert.True(t, f.AC.Valid)
	assert.True(t, decimal.NewFromInt(500).Equal(f.AC.Decimal))
	assert.True(t, decimal.NewFromInt(300).Equal(f.Sleeper.Decimal))
	assert.False(t, f.Passenger.Valid)
}

func TestFareRepoGetByPairMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM fares").WithArgs(2, 1).WillReturnError(sql.ErrNoRows)

	_, err := NewFareRepo(db).GetByPair(context.Background(), 2, 1)
	assert.ErrorIs(t, err, ErrFareNotFound)
}

func TestUserRepoCreateDuplicate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs("Asha", "asha@example.com", "hash").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := NewUserRepo(db).Create(context.Background(), " Asha ", " Asha@Example.com ", "hash")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserRepoCreate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs("Asha", "asha@example.com", "hash").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := NewUserRepo(db).Create(context.Background(), "Asha", "asha@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)
}

func TestUserRepoCreateOtherError(t *testing.T) {
	db, mock := newMock(t)
	boom := errors.New("connection reset")
	mock.ExpectExec("INSERT INTO users").WillReturnError(boom)

	_, err := NewUserRepo(db).Create(context.Background(), "Asha", "asha@example.com", "hash")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrEmailExists)
}

func TestUserRepoGetByEmail(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM users WHERE email=\\?").
		WithArgs("asha@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}).
			AddRow(7, "Asha", "asha@example.com", "hash"))

	u, err := NewUserRepo(db).GetByEmail(context.Background(), "ASHA@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), u.ID)
	assert.Equal(t, "hash", u.PasswordHash)
}

func TestBookingRepoCreate(t *testing.T) {
	db, mock := newMock(t)
	travel := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(uint64(7), "Ravi", 30, "sleeper", "2026-10-20", uint64(1), uint64(2), "300.00").
		WillReturnResult(sqlmock.NewResult(42, 1))

	b := &model.Booking{
		UserID: 7, PassengerName: "Ravi", Age: 30, Class: "sleeper", TravelDate: travel,
		FromStationID: 1, ToStationID: 2, Amount: decimal.NewFromInt(300),
	}
	require.NoError(t, NewBookingRepo(db).Create(context.Background(), b))
	assert.Equal(t, uint64(42), b.ID)
}

var detailCols = []string{"id", "passenger_name", "age", "class", "travel_date", "amount",
	"from_station_id", "to_station_id", "from_name", "to_name"}

func TestBookingRepoGetDetailMissingStation(t *testing.T) {
	db, mock := newMock(t)
	travel := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("WHERE b.id = \\?").WithArgs(42).
		WillReturnRows(sqlmock.NewRows(detailCols).
			AddRow(42, "Ravi", 30, "sleeper", travel, "300.00", 1, 9, "Bengaluru (SBC)", nil))

	d, err := NewBookingRepo(db).GetDetail(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Bengaluru (SBC)", d.FromStation)
	assert.Equal(t, "", d.ToStation)
	assert.Equal(t, uint64(9), d.ToStationID)
	assert.True(t, decimal.NewFromInt(300).Equal(d.Amount))
}

func TestBookingRepoGetDetailNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("WHERE b.id = \\?").WithArgs(42).WillReturnError(sql.ErrNoRows)

	_, err := NewBookingRepo(db).GetDetail(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingRepoListByUserNewestFirst(t *testing.T) {
	db, mock := newMock(t)
	travel := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("WHERE b.user_id = \\? ORDER BY b.created_at DESC, b.id DESC").WithArgs(7).
		WillReturnRows(sqlmock.NewRows(detailCols).
			AddRow(43, "Ravi", 30, "ac", travel, "500.00", 2, 1, "Mysuru (MYS)", "Bengaluru (SBC)").
			AddRow(42, "Ravi", 30, "sleeper", travel, "300.00", 1, 2, "Bengaluru (SBC)", "Mysuru (MYS)"))

	got, err := NewBookingRepo(db).ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(43), got[0].ID)
	assert.Equal(t, uint64(42), got[1].ID)
}
