package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyapaarbook/vyapaarbook/internal/database"
	"github.com/vyapaarbook/vyapaarbook/internal/report"
	"github.com/vyapaarbook/vyapaarbook/internal/report/store"
	txstore "github.com/vyapaarbook/vyapaarbook/internal/transaction/store"
)

func newFixture(t *testing.T) (*sql.DB, string, string) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "reports.db"))
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
		`INSERT INTO customers (id, user_id, name, phone_number, balance, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		customerID, userID, "Suresh", "+919876543211", 120000, 1700000000,
	)
	require.NoError(t, err)

	return db, userID, customerID
}

func insertTx(t *testing.T, db *sql.DB, customerID string, amount int64, status string, createdAt int64) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO transactions (id, customer_id, amount, type, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), customerID, amount, "payment", status, createdAt,
	)
	require.NoError(t, err)
}

func TestStore_SumPaidBetween(t *testing.T) {
	db, userID, customerID := newFixture(t)
	s := store.New(db)

	insertTx(t, db, customerID, 40000, "paid", 1700000100)
	insertTx(t, db, customerID, 25000, "paid", 1700000200)
	insertTx(t, db, customerID, 99999, "due", 1700000300)  // not paid
	insertTx(t, db, customerID, 11111, "paid", 1800000000) // outside window

	got, err := s.SumPaidBetween(context.Background(), userID, 1700000000, 1700001000)
	require.NoError(t, err)
	assert.Equal(t, int64(65000), got)

	empty, err := s.SumPaidBetween(context.Background(), "other-user", 0, 1900000000)
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestStore_SumBalances(t *testing.T) {
	db, userID, _ := newFixture(t)
	s := store.New(db)

	otherID := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO customers (id, user_id, name, phone_number, balance, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		otherID, userID, "Kavita", "+919876543212", -20000, 1700000000,
	)
	require.NoError(t, err)

	got, err := s.SumBalances(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), got)
}

func TestService_Summarize(t *testing.T) {
	db, userID, customerID := newFixture(t)

	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	dayStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	insertTx(t, db, customerID, 50000, "paid", dayStart.Unix()+3600)     // today
	insertTx(t, db, customerID, 70000, "paid", dayStart.Unix()-3600)     // yesterday
	insertTx(t, db, customerID, 30000, "due", dayStart.Unix()+7200)      // today but unpaid
	insertTx(t, db, customerID, 10000, "paid", dayStart.Unix()+86400+60) // tomorrow

	svc := report.NewService(store.New(db), txstore.New(db))
	got, err := svc.Summarize(context.Background(), userID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), got.TodaysCollection)
	assert.Equal(t, int64(120000), got.PendingDues)
}

func TestService_RecentActivity(t *testing.T) {
	db, userID, customerID := newFixture(t)

	insertTx(t, db, customerID, 100, "paid", 1700000100)
	insertTx(t, db, customerID, 200, "paid", 1700000200)

	svc := report.NewService(store.New(db), txstore.New(db))
	got, err := svc.RecentActivity(context.Background(), userID, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(200), got[0].Amount)
}
