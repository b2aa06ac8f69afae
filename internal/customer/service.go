package customer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vyapaarbook/vyapaarbook/internal/storage"
)

type Repository interface {
	Upsert(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	ListByUser(ctx context.Context, userID string) ([]*Customer, error)
}

type Service struct {
	repo Repository
	coll *collate.Collator
}

// NewService builds a customer service whose listings are ordered with a
// collator for the given language tag, so names in Devanagari, Tamil or
// Bengali sort the way a speaker expects rather than by code point.
func NewService(repo Repository, lang string) *Service {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}

	return &Service{
		repo: repo,
		coll: collate.New(tag),
	}
}

type UpsertParams struct {
	ID             string // empty for a new customer
	UserID         string
	Name           string
	PhoneNumber    string
	WhatsappNumber string
	Address        string
	PhotoURL       string
	BusinessType   string
	Notes          string
}

// Upsert creates the customer, or replaces it in place when the ID already
// exists. Balance and last-transaction timestamp belong to the ledger and
// are preserved across replaces by the store.
func (s *Service) Upsert(ctx context.Context, params UpsertParams) (*Customer, error) {
	if params.UserID == "" || params.Name == "" || params.PhoneNumber == "" {
		return nil, fmt.Errorf("%w: user id, name and phone number are required", storage.ErrInvalidArgument)
	}

	c := &Customer{
		ID:             params.ID,
		UserID:         params.UserID,
		Name:           params.Name,
		PhoneNumber:    params.PhoneNumber,
		WhatsappNumber: params.WhatsappNumber,
		Address:        params.Address,
		PhotoURL:       params.PhotoURL,
		BusinessType:   params.BusinessType,
		Notes:          params.Notes,
		CreatedAt:      time.Now().Unix(),
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	if err := s.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the user's customers in ascending locale order by name.
func (s *Service) List(ctx context.Context, userID string) ([]*Customer, error) {
	customers, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(customers, func(i, j int) bool {
		return s.coll.CompareString(customers[i].Name, customers[j].Name) < 0
	})

	return customers, nil
}
