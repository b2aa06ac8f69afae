package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vyapaarbook/vyapaarbook/internal/customer"
	"github.com/vyapaarbook/vyapaarbook/internal/storage"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectCustomerColumns = `
	id, user_id, name, phone_number, whatsapp_number, address, photo_url,
	business_type, notes, balance, last_transaction_at, created_at
`

func scanCustomer(s scanner) (*customer.Customer, error) {
	var c customer.Customer

	var whatsapp, address, photo, businessType, notes sql.NullString

	var lastTxAt sql.NullInt64

	if err := s.Scan(
		&c.ID, &c.UserID, &c.Name, &c.PhoneNumber,
		&whatsapp, &address, &photo, &businessType, &notes,
		&c.Balance, &lastTxAt, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.WhatsappNumber = whatsapp.String
	c.Address = address.String
	c.PhotoURL = photo.String
	c.BusinessType = businessType.String
	c.Notes = notes.String
	c.LastTransactionAt = lastTxAt.Int64

	return &c, nil
}

// Upsert inserts the customer or replaces its profile fields in place.
// Balance and last-transaction timestamp are deliberately left out of the
// update: they are owned by the ledger and must survive profile edits.
func (s *Store) Upsert(ctx context.Context, c *customer.Customer) error {
	if s.db == nil {
		return storage.ErrNotInitialized
	}

	query := `
		INSERT INTO customers
			(id, user_id, name, phone_number, whatsapp_number, address, photo_url, business_type, notes, balance, last_transaction_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			phone_number = excluded.phone_number,
			whatsapp_number = excluded.whatsapp_number,
			address = excluded.address,
			photo_url = excluded.photo_url,
			business_type = excluded.business_type,
			notes = excluded.notes
	`

	_, err := s.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		c.PhoneNumber,
		nullable(c.WhatsappNumber),
		nullable(c.Address),
		nullable(c.PhotoURL),
		nullable(c.BusinessType),
		nullable(c.Notes),
		c.Balance,
		nullableInt(c.LastTransactionAt),
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting customer: %w", storage.Classify(err))
	}

	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	if s.db == nil {
		return nil, storage.ErrNotInitialized
	}

	query := `SELECT ` + selectCustomerColumns + ` FROM customers WHERE id = ?`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return c, nil
}

// ListByUser returns the user's customers ordered by name. The ordering here
// is bytewise; the service re-sorts with a locale collator.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]*customer.Customer, error) {
	if s.db == nil {
		return nil, storage.ErrNotInitialized
	}

	query := `SELECT ` + selectCustomerColumns + ` FROM customers WHERE user_id = ? ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}

	return customers, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func nullableInt(n int64) any {
	if n == 0 {
		return nil
	}

	return n
}
