package customer

// Customer is a counterparty the account holder transacts with.
//
// Balance is a cache of the signed sum of the customer's transaction
// contributions, maintained exclusively by the ledger service. It is stored
// here for O(1) list and summary reads but the transaction log stays the
// source of truth.
type Customer struct {
	ID                string
	UserID            string
	Name              string
	PhoneNumber       string
	WhatsappNumber    string
	Address           string
	PhotoURL          string
	BusinessType      string
	Notes             string
	Balance           int64 // paise, signed
	LastTransactionAt int64 // Unix seconds, 0 when no transaction yet
	CreatedAt         int64
}
