package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vyapaarbook/vyapaarbook/internal/customer"
	"github.com/vyapaarbook/vyapaarbook/internal/storage"
	"github.com/vyapaarbook/vyapaarbook/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger

// Tx is the set of operations available inside one unit of work. Everything
// called on it either commits together or rolls back together.
type Tx interface {
	GetCustomer(ctx context.Context, id string) (*customer.Customer, error)
	SetCustomerBalance(ctx context.Context, id string, balance, lastTxAt int64) error
	InsertTransaction(ctx context.Context, t *transaction.Transaction) error
	GetTransaction(ctx context.Context, id string) (*transaction.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	DeleteCustomerCascade(ctx context.Context, id string) error
	ListTransactionsByCustomer(ctx context.Context, customerID string) ([]*transaction.Transaction, error)
}

// Repository runs a function inside a storage-level transaction. If fn
// returns an error the whole unit of work is rolled back.
type Repository interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RecordParams struct {
	CustomerID    string
	Amount        int64
	Type          transaction.Type
	Status        transaction.Status
	PaymentMethod transaction.PaymentMethod
	Description   string
	PhotoURL      string
}

// RecordTransaction inserts the transaction and applies its contribution to
// the customer's balance as one unit: a crash or error between the two
// halves is never observable.
func (s *Service) RecordTransaction(ctx context.Context, params RecordParams) (*transaction.Transaction, error) {
	if params.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must be non-negative", storage.ErrInvalidArgument)
	}

	if params.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", storage.ErrInvalidArgument)
	}

	if !transaction.ValidType(params.Type) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", storage.ErrInvalidArgument, params.Type)
	}

	if !transaction.ValidStatus(params.Status) {
		return nil, fmt.Errorf("%w: unknown transaction status %q", storage.ErrInvalidArgument, params.Status)
	}

	var recorded *transaction.Transaction

	err := s.repo.InTx(ctx, func(tx Tx) error {
		c, err := tx.GetCustomer(ctx, params.CustomerID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: customer %s does not exist", storage.ErrConstraint, params.CustomerID)
			}

			return err
		}

		t := &transaction.Transaction{
			ID:            uuid.NewString(),
			CustomerID:    c.ID,
			CustomerName:  c.Name,
			Amount:        params.Amount,
			Type:          params.Type,
			PaymentMethod: params.PaymentMethod,
			Description:   params.Description,
			PhotoURL:      params.PhotoURL,
			Status:        params.Status,
			CreatedAt:     time.Now().Unix(),
		}

		if err := tx.InsertTransaction(ctx, t); err != nil {
			return err
		}

		balance := c.Balance + Contribution(t.Type, t.Status, t.Amount)
		if err := tx.SetCustomerBalance(ctx, c.ID, balance, t.CreatedAt); err != nil {
			return err
		}

		recorded = t

		return nil
	})
	if err != nil {
		return nil, err
	}

	return recorded, nil
}

// ReverseTransaction undoes a transaction: the inverse of its original
// contribution is applied to the customer's balance and the row is deleted,
// atomically. Reversal is order-independent; reversing a sale after a later
// payment leaves the payment standing.
//
// When the owning customer has since been deleted there is no balance to
// reverse into: the orphaned row alone is deleted and ErrConstraint is
// returned.
func (s *Service) ReverseTransaction(ctx context.Context, id string) error {
	var orphaned bool

	err := s.repo.InTx(ctx, func(tx Tx) error {
		t, err := tx.GetTransaction(ctx, id)
		if err != nil {
			return err
		}

		c, err := tx.GetCustomer(ctx, t.CustomerID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				orphaned = true
				return tx.DeleteTransaction(ctx, id)
			}

			return err
		}

		balance := c.Balance - Contribution(t.Type, t.Status, t.Amount)
		if err := tx.SetCustomerBalance(ctx, c.ID, balance, c.LastTransactionAt); err != nil {
			return err
		}

		return tx.DeleteTransaction(ctx, id)
	})
	if err != nil {
		return err
	}

	if orphaned {
		return fmt.Errorf("%w: owning customer no longer exists, orphaned transaction removed", storage.ErrConstraint)
	}

	return nil
}

// DeleteCustomer removes the customer together with every transaction and
// reminder that references it. A partially applied cascade is a correctness
// bug, so all of it happens in one unit of work.
func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	return s.repo.InTx(ctx, func(tx Tx) error {
		if _, err := tx.GetCustomer(ctx, id); err != nil {
			return err
		}

		return tx.DeleteCustomerCascade(ctx, id)
	})
}

// RecomputeBalance re-derives the balance from the full transaction history,
// overwrites the stored value and returns it. The authority for detecting
// and healing drift.
func (s *Service) RecomputeBalance(ctx context.Context, customerID string) (int64, error) {
	var balance int64

	err := s.repo.InTx(ctx, func(tx Tx) error {
		c, err := tx.GetCustomer(ctx, customerID)
		if err != nil {
			return err
		}

		txs, err := tx.ListTransactionsByCustomer(ctx, customerID)
		if err != nil {
			return err
		}

		balance = Balance(txs)

		return tx.SetCustomerBalance(ctx, customerID, balance, c.LastTransactionAt)
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}
