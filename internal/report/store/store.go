package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vyapaarbook/vyapaarbook/internal/storage"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SumPaidBetween(ctx context.Context, userID string, from, to int64) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrNotInitialized
	}

	query := `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN customers c ON t.customer_id = c.id
		WHERE c.user_id = ? AND t.status = 'paid' AND t.created_at >= ? AND t.created_at < ?
	`

	var sum int64
	if err := s.db.QueryRowContext(ctx, query, userID, from, to).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing paid transactions: %w", err)
	}

	return sum, nil
}

func (s *Store) SumBalances(ctx context.Context, userID string) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrNotInitialized
	}

	query := `SELECT COALESCE(SUM(balance), 0) FROM customers WHERE user_id = ?`

	var sum int64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing balances: %w", err)
	}

	return sum, nil
}
