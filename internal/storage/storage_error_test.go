package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// Driver-level failures must propagate as errors, not silently drop rows.

func TestInsertTransportEntry_StorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := New(db)

	diskErr := errors.New("disk I/O error")
	mock.ExpectExec("INSERT INTO transport_data").WillReturnError(diskErr)

	_, err = store.InsertTransportEntry(context.Background(), "session:abc", "Bus (Diesel)", 1, 0.015161)
	require.ErrorIs(t, err, diskErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertFoodEntries_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := New(db)

	diskErr := errors.New("disk I/O error")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO food_choices").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO food_choices").WillReturnError(diskErr)
	mock.ExpectRollback()

	err = store.InsertFoodEntries(context.Background(), "session:abc", "Vegan - Lunch", []string{"Rice", "Dal"})
	require.ErrorIs(t, err, diskErr)
	require.NoError(t, mock.ExpectationsWereMet())
}
