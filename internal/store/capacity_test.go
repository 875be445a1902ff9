package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// A helper function to create a mock database connection.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// TestRegisterCapacityShortCircuit pins the capacity pre-check: when the
// current count already fills the event, Register must roll back without
// attempting an insert.
func TestRegisterCapacityShortCircuit(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "events"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "college_id", "name", "capacity", "cancelled"}).
			AddRow("evt-1", "c1", "Hack Night", 1, false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "registrations"`)).
		WithArgs("evt-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := s.Register(context.Background(), "evt-1", "stu-1")
	assert.ErrorIs(t, err, ErrCapacityReached)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestRegisterCancelledShortCircuit pins the cancelled-event rejection the
// same way: no count, no insert.
func TestRegisterCancelledShortCircuit(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "events"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "college_id", "name", "capacity", "cancelled"}).
			AddRow("evt-1", "c1", "Hack Night", nil, true))
	mock.ExpectRollback()

	_, err := s.Register(context.Background(), "evt-1", "stu-1")
	assert.ErrorIs(t, err, ErrEventCancelled)
	assert.NoError(t, mock.ExpectationsWereMet())
}
