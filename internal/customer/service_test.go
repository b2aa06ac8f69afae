package customer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyapaarbook/vyapaarbook/internal/customer"
	"github.com/vyapaarbook/vyapaarbook/internal/storage"
)

type stubRepo struct {
	upsertFn func(ctx context.Context, c *customer.Customer) error
	getFn    func(ctx context.Context, id string) (*customer.Customer, error)
	listFn   func(ctx context.Context, userID string) ([]*customer.Customer, error)
}

func (r *stubRepo) Upsert(ctx context.Context, c *customer.Customer) error {
	return r.upsertFn(ctx, c)
}

func (r *stubRepo) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	return r.getFn(ctx, id)
}

func (r *stubRepo) ListByUser(ctx context.Context, userID string) ([]*customer.Customer, error) {
	return r.listFn(ctx, userID)
}

func TestService_Upsert_AssignsID(t *testing.T) {
	var saved *customer.Customer

	repo := &stubRepo{
		upsertFn: func(_ context.Context, c *customer.Customer) error {
			saved = c
			return nil
		},
	}

	svc := customer.NewService(repo, "en")
	got, err := svc.Upsert(context.Background(), customer.UpsertParams{
		UserID:      "user-1",
		Name:        "Ramesh",
		PhoneNumber: "+919876543210",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.NotZero(t, got.CreatedAt)
	assert.Same(t, saved, got)
}

func TestService_Upsert_KeepsGivenID(t *testing.T) {
	repo := &stubRepo{
		upsertFn: func(_ context.Context, _ *customer.Customer) error { return nil },
	}

	svc := customer.NewService(repo, "en")
	got, err := svc.Upsert(context.Background(), customer.UpsertParams{
		ID:          "cust-1",
		UserID:      "user-1",
		Name:        "Ramesh",
		PhoneNumber: "+919876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", got.ID)
}

func TestService_Upsert_Validation(t *testing.T) {
	type testCase struct {
		name   string
		params customer.UpsertParams
	}

	tests := []testCase{
		{name: "MissingUserID", params: customer.UpsertParams{Name: "X", PhoneNumber: "1"}},
		{name: "MissingName", params: customer.UpsertParams{UserID: "u", PhoneNumber: "1"}},
		{name: "MissingPhone", params: customer.UpsertParams{UserID: "u", Name: "X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := customer.NewService(&stubRepo{}, "en")

			got, err := svc.Upsert(context.Background(), tt.params)
			assert.ErrorIs(t, err, storage.ErrInvalidArgument)
			assert.Nil(t, got)
		})
	}
}

func TestService_List_LocaleOrder(t *testing.T) {
	// The collator puts अ (a) before क (ka) before र (ra), the order a Hindi
	// speaker expects.
	repo := &stubRepo{
		listFn: func(_ context.Context, _ string) ([]*customer.Customer, error) {
			return []*customer.Customer{
				{Name: "राहुल"},
				{Name: "कविता"},
				{Name: "अमित"},
			}, nil
		},
	}

	svc := customer.NewService(repo, "hi")
	got, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "अमित", got[0].Name)
	assert.Equal(t, "कविता", got[1].Name)
	assert.Equal(t, "राहुल", got[2].Name)
}

func TestService_List_UnknownLanguageFallsBack(t *testing.T) {
	repo := &stubRepo{
		listFn: func(_ context.Context, _ string) ([]*customer.Customer, error) {
			return []*customer.Customer{{Name: "Beta"}, {Name: "Alpha"}}, nil
		},
	}

	svc := customer.NewService(repo, "not-a-language")
	got, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Name)
}
