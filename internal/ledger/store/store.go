package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vyapaarbook/vyapaarbook/internal/customer"
	"github.com/vyapaarbook/vyapaarbook/internal/ledger"
	"github.com/vyapaarbook/vyapaarbook/internal/storage"
	"github.com/vyapaarbook/vyapaarbook/internal/transaction"
)

// Ensure Store implements ledger.Repository.
var _ ledger.Repository = (*Store)(nil)

// Store runs ledger units of work against SQLite. Each InTx call is one
// BEGIN ... COMMIT; SQLite's transaction isolation serializes concurrent
// compound writes, so two simultaneous recordings against the same customer
// cannot lose an update.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx ledger.Tx) error) error {
	if s.db == nil {
		return storage.ErrNotInitialized
	}

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning ledger transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := fn(&Tx{tx: dbTx}); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing ledger transaction: %w", err)
	}

	return nil
}

// Tx implements ledger.Tx over one open database transaction.
type Tx struct {
	tx *sql.Tx
}

// GetCustomer loads the fields the ledger touches: identity, display name,
// balance and last-transaction timestamp.
func (t *Tx) GetCustomer(ctx context.Context, id string) (*customer.Customer, error) {
	query := `SELECT id, user_id, name, balance, last_transaction_at FROM customers WHERE id = ?`

	var c customer.Customer

	var lastTxAt sql.NullInt64

	err := t.tx.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.UserID, &c.Name, &c.Balance, &lastTxAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer: %w", err)
	}

	c.LastTransactionAt = lastTxAt.Int64

	return &c, nil
}

func (t *Tx) SetCustomerBalance(ctx context.Context, id string, balance, lastTxAt int64) error {
	query := `UPDATE customers SET balance = ?, last_transaction_at = ? WHERE id = ?`

	var last any
	if lastTxAt != 0 {
		last = lastTxAt
	}

	res, err := t.tx.ExecContext(ctx, query, balance, last, id)
	if err != nil {
		return fmt.Errorf("updating balance: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (t *Tx) InsertTransaction(ctx context.Context, tr *transaction.Transaction) error {
	query := `
		INSERT INTO transactions
			(id, customer_id, customer_name, amount, type, payment_method, description, photo_url, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := t.tx.ExecContext(ctx, query,
		tr.ID,
		tr.CustomerID,
		nullable(tr.CustomerName),
		tr.Amount,
		string(tr.Type),
		nullable(string(tr.PaymentMethod)),
		nullable(tr.Description),
		nullable(tr.PhotoURL),
		string(tr.Status),
		tr.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", storage.Classify(err))
	}

	return nil
}

func (t *Tx) GetTransaction(ctx context.Context, id string) (*transaction.Transaction, error) {
	query := `
		SELECT id, customer_id, customer_name, amount, type, payment_method, description, photo_url, status, created_at
		FROM transactions
		WHERE id = ?
	`

	var tr transaction.Transaction

	var name, method, desc, photo sql.NullString

	err := t.tx.QueryRowContext(ctx, query, id).Scan(
		&tr.ID, &tr.CustomerID, &name, &tr.Amount, (*string)(&tr.Type),
		&method, &desc, &photo, (*string)(&tr.Status), &tr.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	tr.CustomerName = name.String
	tr.PaymentMethod = transaction.PaymentMethod(method.String)
	tr.Description = desc.String
	tr.PhotoURL = photo.String

	return &tr, nil
}

func (t *Tx) DeleteTransaction(ctx context.Context, id string) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteCustomerCascade removes dependents before the customer itself; the
// schema declares no ON DELETE CASCADE, so the cascade is explicit here.
func (t *Tx) DeleteCustomerCascade(ctx context.Context, id string) error {
	steps := []string{
		`DELETE FROM reminders WHERE customer_id = ?`,
		`DELETE FROM transactions WHERE customer_id = ?`,
		`DELETE FROM customers WHERE id = ?`,
	}

	for _, query := range steps {
		if _, err := t.tx.ExecContext(ctx, query, id); err != nil {
			return fmt.Errorf("cascading customer delete: %w", storage.Classify(err))
		}
	}

	return nil
}

func (t *Tx) ListTransactionsByCustomer(ctx context.Context, customerID string) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, customer_id, customer_name, amount, type, payment_method, description, photo_url, status, created_at
		FROM transactions
		WHERE customer_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := t.tx.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		var tr transaction.Transaction

		var name, method, desc, photo sql.NullString

		if err := rows.Scan(
			&tr.ID, &tr.CustomerID, &name, &tr.Amount, (*string)(&tr.Type),
			&method, &desc, &photo, (*string)(&tr.Status), &tr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		tr.CustomerName = name.String
		tr.PaymentMethod = transaction.PaymentMethod(method.String)
		tr.Description = desc.String
		tr.PhotoURL = photo.String

		txs = append(txs, &tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}
