package user

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vyapaarbook/vyapaarbook/internal/http/respond"
	"github.com/vyapaarbook/vyapaarbook/internal/user"
)

// Seeder populates demo data for a freshly registered account.
type Seeder interface {
	Seed(ctx context.Context, userID string) error
}

type Handler struct {
	svc    *user.Service
	seeder Seeder
}

func NewHandler(svc *user.Service, seeder Seeder) *Handler {
	return &Handler{svc: svc, seeder: seeder}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.register)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
}

type registerRequest struct {
	BusinessName     string `json:"business_name"`
	OwnerName        string `json:"owner_name"`
	PhoneNumber      string `json:"phone_number"`
	WhatsappNumber   string `json:"whatsapp_number"`
	LanguageCode     string `json:"language_code"`
	BusinessCategory string `json:"business_category"`
	Address          string `json:"address"`
	SeedDemoData     bool   `json:"seed_demo_data"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), user.RegisterParams{
		BusinessName:     req.BusinessName,
		OwnerName:        req.OwnerName,
		PhoneNumber:      req.PhoneNumber,
		WhatsappNumber:   req.WhatsappNumber,
		LanguageCode:     req.LanguageCode,
		BusinessCategory: req.BusinessCategory,
		Address:          req.Address,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	if req.SeedDemoData {
		if err := h.seeder.Seed(r.Context(), u.ID); err != nil {
			// The account exists; demo data is an onboarding nicety.
			slog.Error("failed to seed demo data", "user", u.ID, "error", err)
		}
	}

	respond.JSON(w, http.StatusCreated, toResponse(u))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(u))
}

type updateRequest struct {
	BusinessName     *string `json:"business_name,omitempty"`
	OwnerName        *string `json:"owner_name,omitempty"`
	WhatsappNumber   *string `json:"whatsapp_number,omitempty"`
	LanguageCode     *string `json:"language_code,omitempty"`
	BusinessCategory *string `json:"business_category,omitempty"`
	Address          *string `json:"address,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	if req.BusinessName != nil {
		u.BusinessName = *req.BusinessName
	}

	if req.OwnerName != nil {
		u.OwnerName = *req.OwnerName
	}

	if req.WhatsappNumber != nil {
		u.WhatsappNumber = *req.WhatsappNumber
	}

	if req.LanguageCode != nil {
		u.LanguageCode = *req.LanguageCode
	}

	if req.BusinessCategory != nil {
		u.BusinessCategory = *req.BusinessCategory
	}

	if req.Address != nil {
		u.Address = *req.Address
	}

	if err := h.svc.Update(r.Context(), u); err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(u))
}

type userResponse struct {
	ID               string `json:"id"`
	BusinessName     string `json:"business_name"`
	OwnerName        string `json:"owner_name"`
	PhoneNumber      string `json:"phone_number"`
	WhatsappNumber   string `json:"whatsapp_number,omitempty"`
	LanguageCode     string `json:"language_code"`
	BusinessCategory string `json:"business_category,omitempty"`
	Address          string `json:"address,omitempty"`
	CreatedAt        int64  `json:"created_at"`
}

func toResponse(u *user.User) userResponse {
	return userResponse{
		ID:               u.ID,
		BusinessName:     u.BusinessName,
		OwnerName:        u.OwnerName,
		PhoneNumber:      u.PhoneNumber,
		WhatsappNumber:   u.WhatsappNumber,
		LanguageCode:     u.LanguageCode,
		BusinessCategory: u.BusinessCategory,
		Address:          u.Address,
		CreatedAt:        u.CreatedAt,
	}
}
