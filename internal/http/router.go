package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vyapaarbook/vyapaarbook/internal/http/customer"
	"github.com/vyapaarbook/vyapaarbook/internal/http/reminder"
	"github.com/vyapaarbook/vyapaarbook/internal/http/report"
	"github.com/vyapaarbook/vyapaarbook/internal/http/transaction"
	"github.com/vyapaarbook/vyapaarbook/internal/http/user"
)

func New(
	usersV1 *user.Handler,
	customersV1 *customer.Handler,
	transactionsV1 *transaction.Handler,
	remindersV1 *reminder.Handler,
	reportsV1 *report.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			usersV1.Routes(r)
		})

		r.Route("/customers", func(r chi.Router) {
			customersV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionsV1.Routes(r)
		})

		r.Route("/reminders", func(r chi.Router) {
			remindersV1.Routes(r)
		})

		r.Route("/reports", func(r chi.Router) {
			reportsV1.Routes(r)
		})
	})

	return router
}
