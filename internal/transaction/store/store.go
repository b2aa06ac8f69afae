package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vyapaarbook/vyapaarbook/internal/storage"
	"github.com/vyapaarbook/vyapaarbook/internal/transaction"
)

// Store is the read side of the transaction table. Inserts and deletes are
// compound ledger operations and live in the ledger store, where they run
// inside one database transaction with the balance update.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, customer_id, customer_name, amount, type, payment_method,
	description, photo_url, status, created_at
`

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var t transaction.Transaction

	var name, method, desc, photo sql.NullString

	if err := s.Scan(
		&t.ID, &t.CustomerID, &name, &t.Amount, (*string)(&t.Type),
		&method, &desc, &photo, (*string)(&t.Status), &t.CreatedAt,
	); err != nil {
		return nil, err
	}

	t.CustomerName = name.String
	t.PaymentMethod = transaction.PaymentMethod(method.String)
	t.Description = desc.String
	t.PhotoURL = photo.String

	return &t, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	if s.db == nil {
		return nil, storage.ErrNotInitialized
	}

	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = ?`

	t, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return t, nil
}

// ListByCustomer returns the customer's history, most recent first.
func (s *Store) ListByCustomer(ctx context.Context, customerID string) ([]*transaction.Transaction, error) {
	if s.db == nil {
		return nil, storage.ErrNotInitialized
	}

	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE customer_id = ?
		ORDER BY created_at DESC, id DESC`

	return s.list(ctx, query, customerID)
}

// ListRecent returns the user's transaction feed across all customers, most
// recent first. A limit of 0 means no limit.
func (s *Store) ListRecent(ctx context.Context, userID string, limit int) ([]*transaction.Transaction, error) {
	if s.db == nil {
		return nil, storage.ErrNotInitialized
	}

	query := `
		SELECT t.id, t.customer_id, t.customer_name, t.amount, t.type, t.payment_method,
			t.description, t.photo_url, t.status, t.created_at
		FROM transactions t
		JOIN customers c ON t.customer_id = c.id
		WHERE c.user_id = ?
		ORDER BY t.created_at DESC, t.id DESC`

	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"

		args = append(args, limit)
	}

	return s.list(ctx, query, args...)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*transaction.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}
