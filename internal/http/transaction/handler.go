package transaction

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vyapaarbook/vyapaarbook/internal/http/respond"
	"github.com/vyapaarbook/vyapaarbook/internal/ledger"
	"github.com/vyapaarbook/vyapaarbook/internal/transaction"
	txstore "github.com/vyapaarbook/vyapaarbook/internal/transaction/store"
)

type Handler struct {
	ledger *ledger.Service
	store  *txstore.Store
}

func NewHandler(ledgerSvc *ledger.Service, store *txstore.Store) *Handler {
	return &Handler{ledger: ledgerSvc, store: store}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.record)
	r.Get("/", h.feed)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.reverse)
}

type recordRequest struct {
	CustomerID    string                    `json:"customer_id"`
	Amount        int64                     `json:"amount"`
	Type          transaction.Type          `json:"type"`
	Status        transaction.Status        `json:"status"`
	PaymentMethod transaction.PaymentMethod `json:"payment_method,omitempty"`
	Description   string                    `json:"description,omitempty"`
	PhotoURL      string                    `json:"photo_url,omitempty"`
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.ledger.RecordTransaction(r.Context(), ledger.RecordParams{
		CustomerID:    req.CustomerID,
		Amount:        req.Amount,
		Type:          req.Type,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
		PhotoURL:      req.PhotoURL,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, ToResponse(t))
}

func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		limit = n
	}

	txs, err := h.store.ListRecent(r.Context(), userID, limit)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponse(t))
}

// reverse undoes the transaction's balance effect and removes it.
func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.ReverseTransaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
