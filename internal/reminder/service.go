package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vyapaarbook/vyapaarbook/internal/storage"
)

type Repository interface {
	Insert(ctx context.Context, r *Reminder) error
	ListByCustomer(ctx context.Context, customerID string) ([]*Reminder, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	CustomerID   string
	TemplateID   int    // 0 for a free-form message
	MessageText  string // required when TemplateID is 0
	Vars         map[string]string
	ScheduledFor int64
}

// Create records a reminder. When a template ID is given the message is
// rendered from it with the supplied variables; otherwise the free-form
// message text is used as is.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Reminder, error) {
	if params.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", storage.ErrInvalidArgument)
	}

	message := params.MessageText

	if params.TemplateID != 0 {
		tmpl, ok := TemplateByID(params.TemplateID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown template %d", storage.ErrInvalidArgument, params.TemplateID)
		}

		message = Render(tmpl.Message, params.Vars)
	}

	if message == "" {
		return nil, fmt.Errorf("%w: message text is required", storage.ErrInvalidArgument)
	}

	now := time.Now().Unix()

	r := &Reminder{
		ID:           uuid.NewString(),
		CustomerID:   params.CustomerID,
		TemplateID:   params.TemplateID,
		MessageText:  message,
		ScheduledFor: params.ScheduledFor,
		CreatedAt:    now,
	}
	if params.ScheduledFor == 0 {
		r.SentAt = now
	}

	if err := s.repo.Insert(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// History returns the customer's reminders, most recent first.
func (s *Service) History(ctx context.Context, customerID string) ([]*Reminder, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
