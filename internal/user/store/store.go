package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vyapaarbook/vyapaarbook/internal/storage"
	"github.com/vyapaarbook/vyapaarbook/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Upsert inserts the user, replacing the row in place when the ID already
// exists. Re-registering the same ID is therefore idempotent.
func (s *Store) Upsert(ctx context.Context, u *user.User) error {
	if s.db == nil {
		return storage.ErrNotInitialized
	}

	query := `
		INSERT OR REPLACE INTO users
			(id, business_name, owner_name, phone_number, whatsapp_number, language_code, photo_url, business_category, address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		u.ID,
		u.BusinessName,
		u.OwnerName,
		u.PhoneNumber,
		nullable(u.WhatsappNumber),
		u.LanguageCode,
		nullable(u.PhotoURL),
		nullable(u.BusinessCategory),
		nullable(u.Address),
		u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting user: %w", storage.Classify(err))
	}

	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*user.User, error) {
	if s.db == nil {
		return nil, storage.ErrNotInitialized
	}

	query := `
		SELECT id, business_name, owner_name, phone_number, whatsapp_number, language_code, photo_url, business_category, address, created_at
		FROM users
		WHERE id = ?
	`

	var u user.User

	var whatsapp, photo, category, address sql.NullString

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.BusinessName, &u.OwnerName, &u.PhoneNumber,
		&whatsapp, &u.LanguageCode, &photo, &category, &address,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	u.WhatsappNumber = whatsapp.String
	u.PhotoURL = photo.String
	u.BusinessCategory = category.String
	u.Address = address.String

	return &u, nil
}

// nullable maps empty strings to NULL so optional columns stay NULL instead
// of holding empty text.
func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}
