package main

import (
	"context"
	"fmt"
	"os"

	"marketplace-bff/internal/config"
	"marketplace-bff/internal/pkg/clock"
	"marketplace-bff/internal/server"
	"marketplace-bff/internal/store"
	"marketplace-bff/internal/viewservice"
	"marketplace-bff/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		utils.Fatal("invalid log level", map[string]any{"error": err.Error()})
	}

	clk := clock.RealClock{}

	docs, closeStore, err := openStore(cfg, clk)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"driver": cfg.Store.Driver, "error": err.Error()})
	}
	defer closeStore()

	viewSvc := viewservice.NewViewService(docs, clk, cfg.API.ListLimit)

	router := server.SetupRouter(viewSvc, clk)

	utils.Info("starting marketplace server", map[string]any{"addr": cfg.Addr(), "driver": cfg.Store.Driver})
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStore builds the configured document store and, for the memory
// driver, loads the seed file if one is set
func openStore(cfg *config.Config, clk clock.Clock) (store.DocumentStore, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverFirestore:
		fs, err := store.OpenFirestore(context.Background(), cfg.Store.FirestoreProjectID)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {
			if err := fs.Close(); err != nil {
				utils.Warn("failed to close firestore client", map[string]any{"error": err.Error()})
			}
		}, nil

	default:
		mem := store.NewMemoryStore(clk)
		if cfg.Store.SeedFile != "" {
			n, err := store.LoadSeed(cfg.Store.SeedFile, mem)
			if err != nil {
				return nil, nil, err
			}
			utils.Info("seeded memory store", map[string]any{"file": cfg.Store.SeedFile, "documents": n})
		}
		return mem, func() {}, nil
	}
}
