package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	svc "marketplace-auction/internal/auctionService"
	"marketplace-auction/internal/auth"
	"marketplace-auction/internal/config"
	"marketplace-auction/internal/events"
	"marketplace-auction/internal/repository"
	"marketplace-auction/internal/server"
	"marketplace-auction/internal/store"
	"marketplace-auction/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	st, cleanup, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	repo := repository.NewLedgerRepo(st)
	tokens := auth.NewTokenManager(cfg.AuthSecret, 24*time.Hour)
	auctionSvc := svc.NewAuctionService(repo, auth.ContextAuthorizer{}, clockwork.NewRealClock(), events.LogPublisher{})

	router := server.SetupRouter(auctionSvc, tokens)

	utils.Info("starting auction server", map[string]any{"addr": cfg.Addr(), "store": cfg.StoreBackend})
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStore selects the store backend from the configuration.
func openStore(cfg config.Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case "badger":
		st, err := store.OpenBadgerStore(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return st, func() {
			if err := st.Close(); err != nil {
				utils.Error("closing store", map[string]any{"error": err.Error()})
			}
		}, nil
	default:
		return store.NewMemoryStore(), func() {}, nil
	}
}
