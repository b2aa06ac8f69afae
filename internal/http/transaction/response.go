package transaction

import (
	"github.com/vyapaarbook/vyapaarbook/internal/transaction"
)

type Response struct {
	ID            string                    `json:"id"`
	CustomerID    string                    `json:"customer_id"`
	CustomerName  string                    `json:"customer_name,omitempty"`
	Amount        int64                     `json:"amount"`
	Type          transaction.Type          `json:"type"`
	PaymentMethod transaction.PaymentMethod `json:"payment_method,omitempty"`
	Description   string                    `json:"description,omitempty"`
	PhotoURL      string                    `json:"photo_url,omitempty"`
	Status        transaction.Status        `json:"status"`
	CreatedAt     int64                     `json:"created_at"`
}

func ToResponse(t *transaction.Transaction) Response {
	return Response{
		ID:            t.ID,
		CustomerID:    t.CustomerID,
		CustomerName:  t.CustomerName,
		Amount:        t.Amount,
		Type:          t.Type,
		PaymentMethod: t.PaymentMethod,
		Description:   t.Description,
		PhotoURL:      t.PhotoURL,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
	}
}

func ToResponseList(txs []*transaction.Transaction) []Response {
	resp := make([]Response, len(txs))
	for i, t := range txs {
		resp[i] = ToResponse(t)
	}

	return resp
}
