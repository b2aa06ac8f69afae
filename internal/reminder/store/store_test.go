package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyapaarbook/vyapaarbook/internal/database"
	"github.com/vyapaarbook/vyapaarbook/internal/reminder"
	"github.com/vyapaarbook/vyapaarbook/internal/reminder/store"
	"github.com/vyapaarbook/vyapaarbook/internal/storage"
)

func newTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "reminders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userID := uuid.NewString()
	_, err = db.Exec(
		`INSERT INTO users (id, business_name, owner_name, phone_number, created_at) VALUES (?, ?, ?, ?, ?)`,
		userID, "Gupta Traders", "Anil Gupta", "+919876543210", 1700000000,
	)
	require.NoError(t, err)

	customerID := uuid.NewString()
	_, err = db.Exec(
		`INSERT INTO customers (id, user_id, name, phone_number, created_at) VALUES (?, ?, ?, ?, ?)`,
		customerID, userID, "Suresh", "+919876543211", 1700000000,
	)
	require.NoError(t, err)

	return db, customerID
}

func TestStore_InsertAndList(t *testing.T) {
	db, customerID := newTestDB(t)
	s := store.New(db)
	ctx := context.Background()

	older := &reminder.Reminder{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		TemplateID:  1,
		MessageText: "Please pay soon.",
		SentAt:      1700000100,
		CreatedAt:   1700000100,
	}
	newer := &reminder.Reminder{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		MessageText:  "Final notice.",
		ScheduledFor: 1700010000,
		CreatedAt:    1700000200,
	}
	require.NoError(t, s.Insert(ctx, older))
	require.NoError(t, s.Insert(ctx, newer))

	got, err := s.ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
	assert.Zero(t, got[0].TemplateID)
	assert.Zero(t, got[0].SentAt)
	assert.Equal(t, int64(1700010000), got[0].ScheduledFor)
	assert.Equal(t, 1, got[1].TemplateID)
}

func TestStore_Insert_UnknownCustomerIsConstraint(t *testing.T) {
	db, _ := newTestDB(t)
	s := store.New(db)

	err := s.Insert(context.Background(), &reminder.Reminder{
		ID:          uuid.NewString(),
		CustomerID:  "missing",
		MessageText: "hi",
		CreatedAt:   1700000100,
	})
	assert.ErrorIs(t, err, storage.ErrConstraint)
}

func TestStore_Delete(t *testing.T) {
	db, customerID := newTestDB(t)
	s := store.New(db)
	ctx := context.Background()

	r := &reminder.Reminder{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		MessageText: "hi",
		CreatedAt:   1700000100,
	}
	require.NoError(t, s.Insert(ctx, r))
	require.NoError(t, s.Delete(ctx, r.ID))
	assert.ErrorIs(t, s.Delete(ctx, r.ID), storage.ErrNotFound)
}
