package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vyapaarbook/vyapaarbook/internal/http/respond"
	txHandler "github.com/vyapaarbook/vyapaarbook/internal/http/transaction"
	"github.com/vyapaarbook/vyapaarbook/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/feed", h.feed)
}

type summaryResponse struct {
	TodaysCollection int64 `json:"todays_collection"`
	PendingDues      int64 `json:"pending_dues"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	s, err := h.svc.Summarize(r.Context(), userID, time.Now())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, summaryResponse{
		TodaysCollection: s.TodaysCollection,
		PendingDues:      s.PendingDues,
	})
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

	txs, err := h.svc.RecentActivity(r.Context(), userID, limit)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, txHandler.ToResponseList(txs))
}
