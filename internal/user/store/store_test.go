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
	"github.com/vyapaarbook/vyapaarbook/internal/storage"
	"github.com/vyapaarbook/vyapaarbook/internal/user"
	"github.com/vyapaarbook/vyapaarbook/internal/user/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestStore_UpsertAndGet(t *testing.T) {
	db := newTestDB(t)
	s := store.New(db)
	ctx := context.Background()

	u := &user.User{
		ID:           uuid.NewString(),
		BusinessName: "Sharma General Store",
		OwnerName:    "Ramesh Sharma",
		PhoneNumber:  "+919876543210",
		LanguageCode: "hi",
		CreatedAt:    1700000000,
	}
	require.NoError(t, s.Upsert(ctx, u))

	got, err := s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.BusinessName, got.BusinessName)
	assert.Equal(t, "hi", got.LanguageCode)
	assert.Empty(t, got.Address)
}

func TestStore_Upsert_ReplacesInPlace(t *testing.T) {
	db := newTestDB(t)
	s := store.New(db)
	ctx := context.Background()

	u := &user.User{
		ID:           uuid.NewString(),
		BusinessName: "Sharma General Store",
		OwnerName:    "Ramesh Sharma",
		PhoneNumber:  "+919876543210",
		LanguageCode: "en",
		CreatedAt:    1700000000,
	}
	require.NoError(t, s.Upsert(ctx, u))

	u.LanguageCode = "ta"
	u.Address = "Chennai"
	require.NoError(t, s.Upsert(ctx, u))

	got, err := s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ta", got.LanguageCode)
	assert.Equal(t, "Chennai", got.Address)

	var n int

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	s := store.New(db)

	_, err := s.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
