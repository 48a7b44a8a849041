package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/lanca/lanca-api/internal/config"
	"github.com/lanca/lanca-api/internal/database"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/lanca/lanca-api/internal/services"
	"github.com/lanca/lanca-api/internal/storage"
	"github.com/lanca/lanca-api/pkg/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "lancactl",
	Short: "Operator tool for the Lança ledger",
	Long: `lancactl runs maintenance tasks against the ledger database
configured in the environment (DATABASE_URL, STORAGE_PATH, ...).

Changes made here are audited as the "system" user.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is what every command needs to talk to the ledger
type env struct {
	cfg  *config.Config
	db   *gorm.DB
	svcs *services.Services
}

func connect() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.Environment, cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, cfg.Environment)
	if err != nil {
		return nil, err
	}
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	// no worker: audit entries are written before the command exits
	svcs := services.NewServices(repository.NewRepositories(db), nil, store, nil, nil, cfg)
	return &env{cfg: cfg, db: db, svcs: svcs}, nil
}
