package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vyapaarbook/vyapaarbook/internal/storage"
)

type Repository interface {
	Upsert(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RegisterParams struct {
	BusinessName     string
	OwnerName        string
	PhoneNumber      string
	WhatsappNumber   string
	LanguageCode     string
	BusinessCategory string
	Address          string
}

// Register creates the account record. Called once after onboarding; calling
// it again with a fresh ID simply creates another account row.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if params.BusinessName == "" || params.OwnerName == "" || params.PhoneNumber == "" {
		return nil, fmt.Errorf("%w: business name, owner name and phone number are required", storage.ErrInvalidArgument)
	}

	lang := params.LanguageCode
	if lang == "" {
		lang = DefaultLanguage
	}

	u := &User{
		ID:               uuid.NewString(),
		BusinessName:     params.BusinessName,
		OwnerName:        params.OwnerName,
		PhoneNumber:      params.PhoneNumber,
		WhatsappNumber:   params.WhatsappNumber,
		LanguageCode:     lang,
		BusinessCategory: params.BusinessCategory,
		Address:          params.Address,
		CreatedAt:        time.Now().Unix(),
	}

	if err := s.repo.Upsert(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update persists profile changes (language, address, whatsapp number).
func (s *Service) Update(ctx context.Context, u *User) error {
	if u.ID == "" {
		return fmt.Errorf("%w: user id is required", storage.ErrInvalidArgument)
	}

	return s.repo.Upsert(ctx, u)
}
