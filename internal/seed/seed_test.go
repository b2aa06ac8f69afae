package seed_test

import (
	"context"
	"database/sql"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyapaarbook/vyapaarbook/internal/customer"
	customerstore "github.com/vyapaarbook/vyapaarbook/internal/customer/store"
	"github.com/vyapaarbook/vyapaarbook/internal/database"
	"github.com/vyapaarbook/vyapaarbook/internal/ledger"
	ledgerstore "github.com/vyapaarbook/vyapaarbook/internal/ledger/store"
	"github.com/vyapaarbook/vyapaarbook/internal/seed"
)

func newFixture(t *testing.T) (*sql.DB, *customer.Service, *ledger.Service, string) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userID := uuid.NewString()
	_, err = db.Exec(
		`INSERT INTO users (id, business_name, owner_name, phone_number, created_at) VALUES (?, ?, ?, ?, ?)`,
		userID, "Sharma General Store", "Ramesh Sharma", "+919876543210", 1700000000,
	)
	require.NoError(t, err)

	customers := customer.NewService(customerstore.New(db), "en")
	ledgerSvc := ledger.NewService(ledgerstore.New(db))

	return db, customers, ledgerSvc, userID
}

func TestSeed(t *testing.T) {
	db, customers, ledgerSvc, userID := newFixture(t)
	ctx := context.Background()

	rng := rand.New(rand.NewPCG(1, 2))
	svc := seed.NewService(customers, ledgerSvc, rng)
	require.NoError(t, svc.Seed(ctx, userID))

	created, err := customers.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, created, 10)

	var txCount int

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&txCount))
	assert.Equal(t, 20, txCount)

	// Seeded data goes through the ledger, so every cached balance must match
	// its recomputed transaction history.
	for _, c := range created {
		recomputed, err := ledgerSvc.RecomputeBalance(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.Balance, recomputed, "balance drift for %s", c.Name)
	}
}

func TestSeed_AmountsInRange(t *testing.T) {
	db, customers, ledgerSvc, userID := newFixture(t)
	ctx := context.Background()

	svc := seed.NewService(customers, ledgerSvc, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, svc.Seed(ctx, userID))

	rows, err := db.Query(`SELECT amount FROM transactions`)
	require.NoError(t, err)
	defer rows.Close()

	for rows.Next() {
		var amount int64

		require.NoError(t, rows.Scan(&amount))
		assert.GreaterOrEqual(t, amount, int64(50000))
		assert.LessOrEqual(t, amount, int64(1500000))
		assert.Zero(t, amount%100, "seeded amounts are whole rupees")
	}
	require.NoError(t, rows.Err())
}

func TestSeed_DoesNotTouchExistingRows(t *testing.T) {
	_, customers, ledgerSvc, userID := newFixture(t)
	ctx := context.Background()

	existing, err := customers.Upsert(ctx, customer.UpsertParams{
		UserID:      userID,
		Name:        "Pre-existing",
		PhoneNumber: "+911111111111",
	})
	require.NoError(t, err)

	_, err = ledgerSvc.RecordTransaction(ctx, ledger.RecordParams{
		CustomerID: existing.ID,
		Amount:     100000,
		Type:       "sale",
		Status:     "due",
	})
	require.NoError(t, err)

	svc := seed.NewService(customers, ledgerSvc, rand.New(rand.NewPCG(5, 6)))
	require.NoError(t, svc.Seed(ctx, userID))

	got, err := customers.Get(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pre-existing", got.Name)
	assert.Equal(t, int64(100000), got.Balance)
}
