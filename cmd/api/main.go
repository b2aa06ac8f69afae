package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/vyapaarbook/vyapaarbook/internal/config"
	"github.com/vyapaarbook/vyapaarbook/internal/customer"
	customerStore "github.com/vyapaarbook/vyapaarbook/internal/customer/store"
	"github.com/vyapaarbook/vyapaarbook/internal/database"
	bookHttp "github.com/vyapaarbook/vyapaarbook/internal/http"
	customerHandler "github.com/vyapaarbook/vyapaarbook/internal/http/customer"
	reminderHandler "github.com/vyapaarbook/vyapaarbook/internal/http/reminder"
	reportHandler "github.com/vyapaarbook/vyapaarbook/internal/http/report"
	txHandler "github.com/vyapaarbook/vyapaarbook/internal/http/transaction"
	userHandler "github.com/vyapaarbook/vyapaarbook/internal/http/user"
	"github.com/vyapaarbook/vyapaarbook/internal/ledger"
	ledgerStore "github.com/vyapaarbook/vyapaarbook/internal/ledger/store"
	"github.com/vyapaarbook/vyapaarbook/internal/logging"
	"github.com/vyapaarbook/vyapaarbook/internal/reminder"
	reminderStore "github.com/vyapaarbook/vyapaarbook/internal/reminder/store"
	"github.com/vyapaarbook/vyapaarbook/internal/report"
	reportStore "github.com/vyapaarbook/vyapaarbook/internal/report/store"
	"github.com/vyapaarbook/vyapaarbook/internal/seed"
	txStore "github.com/vyapaarbook/vyapaarbook/internal/transaction/store"
	"github.com/vyapaarbook/vyapaarbook/internal/user"
	userStore "github.com/vyapaarbook/vyapaarbook/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DB.Path)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DB.Path, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("storage ready", "path", cfg.DB.Path)

	var (
		transactions = txStore.New(db)

		userService     = user.NewService(userStore.New(db))
		customerService = customer.NewService(customerStore.New(db), cfg.Locale.Language)
		ledgerService   = ledger.NewService(ledgerStore.New(db))
		reminderService = reminder.NewService(reminderStore.New(db))
		reportService   = report.NewService(reportStore.New(db), transactions)
		seedService     = seed.NewService(customerService, ledgerService, nil)
	)

	var (
		usersH        = userHandler.NewHandler(userService, seedService)
		customersH    = customerHandler.NewHandler(customerService, ledgerService, transactions, reminderService)
		transactionsH = txHandler.NewHandler(ledgerService, transactions)
		remindersH    = reminderHandler.NewHandler(reminderService)
		reportsH      = reportHandler.NewHandler(reportService)
	)

	router := bookHttp.New(usersH, customersH, transactionsH, remindersH, reportsH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
