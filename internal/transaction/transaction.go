package transaction

// Type represents the direction of a transaction: a sale extends credit to
// the customer, a payment settles it.
type Type string

const (
	TypeSale    Type = "sale"
	TypePayment Type = "payment"
)

// Status represents how much of the transaction has been settled.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusDue     Status = "due"
	StatusPartial Status = "partial"
)

// PaymentMethod is the optional settlement channel for paid transactions.
type PaymentMethod string

const (
	MethodCash    PaymentMethod = "cash"
	MethodCheck   PaymentMethod = "check"
	MethodDigital PaymentMethod = "digital"
	MethodOther   PaymentMethod = "other"
)

// Transaction is one ledger event between the account holder and a customer.
// Rows are immutable once created except for deletion, and are only ever
// created through the ledger service so the balance side effect cannot be
// skipped.
//
// CustomerName is a display cache of the customer's name at recording time.
// It is never used for joins or invariant checks.
type Transaction struct {
	ID            string
	CustomerID    string
	CustomerName  string
	Amount        int64 // paise, non-negative magnitude
	Type          Type
	PaymentMethod PaymentMethod
	Description   string
	PhotoURL      string
	Status        Status
	CreatedAt     int64 // Unix seconds
}

// ValidType reports whether t is one of the known transaction types.
func ValidType(t Type) bool {
	return t == TypeSale || t == TypePayment
}

// ValidStatus reports whether s is one of the known settlement states.
func ValidStatus(s Status) bool {
	return s == StatusPaid || s == StatusDue || s == StatusPartial
}
