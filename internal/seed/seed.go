// Package seed populates a newly registered account with demo customers and
// transactions. Everything goes through the customer store and the ledger
// service, never through direct balance writes, so seeded data satisfies the
// same invariant as organically created data.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/vyapaarbook/vyapaarbook/internal/customer"
	"github.com/vyapaarbook/vyapaarbook/internal/ledger"
	"github.com/vyapaarbook/vyapaarbook/internal/transaction"
)

type sampleCustomer struct {
	name         string
	phone        string
	businessType string
}

// Demo counterparties in several Indian scripts, matching the audience of
// the app. New rows only; seeding never touches existing data.
var sampleCustomers = []sampleCustomer{
	{"Rajesh Kumar", "+919876543210", "Grocery Store"},
	{"प्रिया शर्मा", "+919876543211", "Restaurant"},
	{"అమిత్ కుమార్", "+919876543212", "Electronics Shop"},
	{"ಮರಿಯಮ್ಮ", "+919876543213", "Clothing Store"},
	{"Mohammed Ali", "+919876543214", "Hardware Store"},
	{"சுரேஷ் குமார்", "+919876543215", "Medical Store"},
	{"পূজা দাস", "+919876543216", "Salon/Spa"},
	{"Deepak Patel", "+919876543217", "Retail Shop"},
	{"മായ കുമാരി", "+919876543218", "Service Provider"},
	{"ਗੁਰਪ੍ਰੀਤ ਸਿੰਘ", "+919876543219", "Wholesale"},
}

const demoTransactions = 20

var methods = []transaction.PaymentMethod{
	transaction.MethodCash,
	transaction.MethodDigital,
	transaction.MethodCheck,
	transaction.MethodOther,
}

var statuses = []transaction.Status{
	transaction.StatusPaid,
	transaction.StatusDue,
	transaction.StatusPartial,
}

type Service struct {
	customers *customer.Service
	ledger    *ledger.Service
	rng       *rand.Rand
}

// NewService builds the loader. rng may be nil; pass a fixed-seed source in
// tests for reproducible demo data.
func NewService(customers *customer.Service, ledgerSvc *ledger.Service, rng *rand.Rand) *Service {
	return &Service{customers: customers, ledger: ledgerSvc, rng: rng}
}

// Seed creates the demo customers and a randomized batch of transactions for
// a newly registered account. Meant to run at most once per user; running it
// again adds another batch of demo rows but cannot corrupt existing data,
// since it only ever inserts fresh identifiers.
func (s *Service) Seed(ctx context.Context, userID string) error {
	created := make([]*customer.Customer, 0, len(sampleCustomers))

	for _, sample := range sampleCustomers {
		c, err := s.customers.Upsert(ctx, customer.UpsertParams{
			UserID:         userID,
			Name:           sample.name,
			PhoneNumber:    sample.phone,
			WhatsappNumber: sample.phone,
			BusinessType:   sample.businessType,
		})
		if err != nil {
			return fmt.Errorf("seeding customer %q: %w", sample.name, err)
		}

		created = append(created, c)
	}

	for i := 0; i < demoTransactions; i++ {
		c := created[s.intN(len(created))]

		typ := transaction.TypeSale
		description := "Product purchase"

		if s.intN(2) == 1 {
			typ = transaction.TypePayment
			description = "Payment received"
		}

		status := statuses[s.intN(len(statuses))]

		var method transaction.PaymentMethod
		if status == transaction.StatusPaid {
			method = methods[s.intN(len(methods))]
		}

		// 500 to 15000 rupees, in paise.
		amount := int64(500+s.intN(14501)) * 100

		if _, err := s.ledger.RecordTransaction(ctx, ledger.RecordParams{
			CustomerID:    c.ID,
			Amount:        amount,
			Type:          typ,
			Status:        status,
			PaymentMethod: method,
			Description:   description,
		}); err != nil {
			return fmt.Errorf("seeding transaction for %q: %w", c.Name, err)
		}
	}

	return nil
}

func (s *Service) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}

	return rand.IntN(n)
}
