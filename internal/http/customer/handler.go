package customer

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vyapaarbook/vyapaarbook/internal/customer"
	reminderHandler "github.com/vyapaarbook/vyapaarbook/internal/http/reminder"
	"github.com/vyapaarbook/vyapaarbook/internal/http/respond"
	txHandler "github.com/vyapaarbook/vyapaarbook/internal/http/transaction"
	"github.com/vyapaarbook/vyapaarbook/internal/ledger"
	"github.com/vyapaarbook/vyapaarbook/internal/reminder"
	txstore "github.com/vyapaarbook/vyapaarbook/internal/transaction/store"
)

type Handler struct {
	svc       *customer.Service
	ledger    *ledger.Service
	history   *txstore.Store
	reminders *reminder.Service
}

func NewHandler(svc *customer.Service, ledgerSvc *ledger.Service, history *txstore.Store, reminders *reminder.Service) *Handler {
	return &Handler{svc: svc, ledger: ledgerSvc, history: history, reminders: reminders}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upsert)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/recompute", h.recompute)
	r.Get("/{id}/transactions", h.transactions)
	r.Get("/{id}/reminders", h.reminderHistory)
}

type upsertRequest struct {
	ID             string `json:"id,omitempty"`
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number"`
	WhatsappNumber string `json:"whatsapp_number,omitempty"`
	Address        string `json:"address,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`
	BusinessType   string `json:"business_type,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Upsert(r.Context(), customer.UpsertParams{
		ID:             req.ID,
		UserID:         req.UserID,
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
		WhatsappNumber: req.WhatsappNumber,
		Address:        req.Address,
		PhotoURL:       req.PhotoURL,
		BusinessType:   req.BusinessType,
		Notes:          req.Notes,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	customers, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(customers))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recompute(w http.ResponseWriter, r *http.Request) {
	balance, err := h.ledger.RecomputeBalance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]int64{"balance": balance})
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.history.ListByCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, txHandler.ToResponseList(txs))
}

func (h *Handler) reminderHistory(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminders.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, reminderHandler.ToResponseList(reminders))
}

type customerResponse struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"`
	Name              string `json:"name"`
	PhoneNumber       string `json:"phone_number"`
	WhatsappNumber    string `json:"whatsapp_number,omitempty"`
	Address           string `json:"address,omitempty"`
	PhotoURL          string `json:"photo_url,omitempty"`
	BusinessType      string `json:"business_type,omitempty"`
	Notes             string `json:"notes,omitempty"`
	Balance           int64  `json:"balance"`
	LastTransactionAt int64  `json:"last_transaction_at,omitempty"`
	CreatedAt         int64  `json:"created_at"`
}

func toResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		ID:                c.ID,
		UserID:            c.UserID,
		Name:              c.Name,
		PhoneNumber:       c.PhoneNumber,
		WhatsappNumber:    c.WhatsappNumber,
		Address:           c.Address,
		PhotoURL:          c.PhotoURL,
		BusinessType:      c.BusinessType,
		Notes:             c.Notes,
		Balance:           c.Balance,
		LastTransactionAt: c.LastTransactionAt,
		CreatedAt:         c.CreatedAt,
	}
}

func toResponseList(customers []*customer.Customer) []customerResponse {
	resp := make([]customerResponse, len(customers))
	for i, c := range customers {
		resp[i] = toResponse(c)
	}

	return resp
}
