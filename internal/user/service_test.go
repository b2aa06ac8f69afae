package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyapaarbook/vyapaarbook/internal/storage"
	"github.com/vyapaarbook/vyapaarbook/internal/user"
)

type stubRepo struct {
	upsertFn func(ctx context.Context, u *user.User) error
	getFn    func(ctx context.Context, id string) (*user.User, error)
}

func (r *stubRepo) Upsert(ctx context.Context, u *user.User) error {
	return r.upsertFn(ctx, u)
}

func (r *stubRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	return r.getFn(ctx, id)
}

func TestService_Register(t *testing.T) {
	var saved *user.User

	repo := &stubRepo{
		upsertFn: func(_ context.Context, u *user.User) error {
			saved = u
			return nil
		},
	}

	svc := user.NewService(repo)
	got, err := svc.Register(context.Background(), user.RegisterParams{
		BusinessName: "Sharma General Store",
		OwnerName:    "Ramesh Sharma",
		PhoneNumber:  "+919876543210",
	})
	require.NoError(t, err)
	assert.Same(t, saved, got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, user.DefaultLanguage, got.LanguageCode)
	assert.NotZero(t, got.CreatedAt)
}

func TestService_Register_KeepsGivenLanguage(t *testing.T) {
	repo := &stubRepo{
		upsertFn: func(_ context.Context, _ *user.User) error { return nil },
	}

	svc := user.NewService(repo)
	got, err := svc.Register(context.Background(), user.RegisterParams{
		BusinessName: "Sharma General Store",
		OwnerName:    "Ramesh Sharma",
		PhoneNumber:  "+919876543210",
		LanguageCode: "bn",
	})
	require.NoError(t, err)
	assert.Equal(t, "bn", got.LanguageCode)
}

func TestService_Register_Validation(t *testing.T) {
	type testCase struct {
		name   string
		params user.RegisterParams
	}

	tests := []testCase{
		{name: "MissingBusinessName", params: user.RegisterParams{OwnerName: "R", PhoneNumber: "1"}},
		{name: "MissingOwnerName", params: user.RegisterParams{BusinessName: "B", PhoneNumber: "1"}},
		{name: "MissingPhone", params: user.RegisterParams{BusinessName: "B", OwnerName: "R"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := user.NewService(&stubRepo{})

			got, err := svc.Register(context.Background(), tt.params)
			assert.ErrorIs(t, err, storage.ErrInvalidArgument)
			assert.Nil(t, got)
		})
	}
}

func TestService_Update_RequiresID(t *testing.T) {
	svc := user.NewService(&stubRepo{})

	err := svc.Update(context.Background(), &user.User{})
	assert.ErrorIs(t, err, storage.ErrInvalidArgument)
}
