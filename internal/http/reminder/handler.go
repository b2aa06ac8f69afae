package reminder

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vyapaarbook/vyapaarbook/internal/http/respond"
	"github.com/vyapaarbook/vyapaarbook/internal/reminder"
)

type Handler struct {
	svc *reminder.Service
}

func NewHandler(svc *reminder.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/templates", h.templates)
	r.Delete("/{id}", h.delete)
}

type createRequest struct {
	CustomerID   string            `json:"customer_id"`
	TemplateID   int               `json:"template_id,omitempty"`
	MessageText  string            `json:"message_text,omitempty"`
	Vars         map[string]string `json:"vars,omitempty"`
	ScheduledFor int64             `json:"scheduled_for,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rem, err := h.svc.Create(r.Context(), reminder.CreateParams{
		CustomerID:   req.CustomerID,
		TemplateID:   req.TemplateID,
		MessageText:  req.MessageText,
		Vars:         req.Vars,
		ScheduledFor: req.ScheduledFor,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, ToResponse(rem))
}

func (h *Handler) templates(w http.ResponseWriter, r *http.Request) {
	type templateResponse struct {
		ID      int    `json:"id"`
		Title   string `json:"title"`
		Message string `json:"message"`
	}

	templates := reminder.Templates()

	resp := make([]templateResponse, len(templates))
	for i, t := range templates {
		resp[i] = templateResponse{ID: t.ID, Title: t.Title, Message: t.Message}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type Response struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	TemplateID   int    `json:"template_id,omitempty"`
	MessageText  string `json:"message_text"`
	SentAt       int64  `json:"sent_at,omitempty"`
	ScheduledFor int64  `json:"scheduled_for,omitempty"`
	CreatedAt    int64  `json:"created_at"`
}

func ToResponse(r *reminder.Reminder) Response {
	return Response{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		TemplateID:   r.TemplateID,
		MessageText:  r.MessageText,
		SentAt:       r.SentAt,
		ScheduledFor: r.ScheduledFor,
		CreatedAt:    r.CreatedAt,
	}
}

func ToResponseList(reminders []*reminder.Reminder) []Response {
	resp := make([]Response, len(reminders))
	for i, r := range reminders {
		resp[i] = ToResponse(r)
	}

	return resp
}
