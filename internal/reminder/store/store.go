package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vyapaarbook/vyapaarbook/internal/reminder"
	"github.com/vyapaarbook/vyapaarbook/internal/storage"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, r *reminder.Reminder) error {
	if s.db == nil {
		return storage.ErrNotInitialized
	}

	query := `
		INSERT INTO reminders (id, customer_id, template_id, message_text, sent_at, scheduled_for, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		r.ID,
		r.CustomerID,
		nullableInt(int64(r.TemplateID)),
		r.MessageText,
		nullableInt(r.SentAt),
		nullableInt(r.ScheduledFor),
		r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting reminder: %w", storage.Classify(err))
	}

	return nil
}

// ListByCustomer returns the customer's reminders, most recent first.
func (s *Store) ListByCustomer(ctx context.Context, customerID string) ([]*reminder.Reminder, error) {
	if s.db == nil {
		return nil, storage.ErrNotInitialized
	}

	query := `
		SELECT id, customer_id, template_id, message_text, sent_at, scheduled_for, created_at
		FROM reminders
		WHERE customer_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*reminder.Reminder

	for rows.Next() {
		var r reminder.Reminder

		var templateID, sentAt, scheduledFor sql.NullInt64

		if err := rows.Scan(&r.ID, &r.CustomerID, &templateID, &r.MessageText, &sentAt, &scheduledFor, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}

		r.TemplateID = int(templateID.Int64)
		r.SentAt = sentAt.Int64
		r.ScheduledFor = scheduledFor.Int64

		reminders = append(reminders, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}

	return reminders, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrNotInitialized
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func nullableInt(n int64) any {
	if n == 0 {
		return nil
	}

	return n
}
