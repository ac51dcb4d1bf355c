package main

import (
	"context"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mariohevia/JobVault-Libre/internal/api"
	"github.com/mariohevia/JobVault-Libre/internal/appdir"
	"github.com/mariohevia/JobVault-Libre/internal/config"
	"github.com/mariohevia/JobVault-Libre/internal/logger"
	"github.com/mariohevia/JobVault-Libre/internal/store"
)

const appName = "jobvault"

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	// Resolve per-profile paths unless the db location is overridden.
	dbPath := cfg.DBPath
	configPath := ""
	if dbPath == "" {
		var (
			paths appdir.ProfilePaths
			err   error
		)
		if cfg.DataDir != "" {
			paths, err = appdir.ForProfileAt(cfg.DataDir, cfg.Profile)
		} else {
			paths, err = appdir.ForProfile(appName, cfg.Profile)
		}
		if err != nil {
			log.Fatal("resolve profile paths", zap.Error(err))
		}
		dbPath = paths.DB
		configPath = paths.Config
	}

	profile := config.DefaultProfileConfig()
	if configPath != "" {
		var err error
		if profile, err = config.LoadProfile(configPath); err != nil {
			log.Fatal("load profile config", zap.Error(err))
		}
	}

	log.Info("startup",
		zap.String("profile", cfg.Profile),
		zap.String("sqlite", dbPath),
		zap.String("port", cfg.Port),
		zap.String("default_status", string(profile.DefaultStatus)),
	)

	db, err := store.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal("open sqlite", zap.Error(err))
	}
	defer db.Close()

	st := store.New(db)
	if err := st.Migrate(context.Background()); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}
	log.Info("sqlite ready", zap.String("path", dbPath))

	s := api.New(st, profile, cfg, log)
	addr := "127.0.0.1:" + cfg.Port
	log.Info("http listening", zap.String("addr", addr))
	if err := s.Listen(addr); err != nil {
		log.Fatal("listen", zap.Error(err))
	}
}
