package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/zaibi326/crm-success-hub-sub000/internal/app"
	"github.com/zaibi326/crm-success-hub-sub000/internal/config"
	"github.com/zaibi326/crm-success-hub-sub000/internal/db/connection"
	"github.com/zaibi326/crm-success-hub-sub000/internal/db/query"
	"github.com/zaibi326/crm-success-hub-sub000/internal/leads"
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/savedview"
	"github.com/zaibi326/crm-success-hub-sub000/internal/view"
)

// openStore opens the saved view store on the configured backend.
func openStore(cfg *config.Config, logger *zap.Logger) (*savedview.Store, func(), error) {
	noop := func() {}

	var port savedview.Port
	closeFn := noop

	if cfg.SavedViews.Backend == "memory" {
		port = savedview.NewMemoryPort()
	} else {
		path, err := cfg.SavedViewsPath()
		if err != nil {
			return nil, noop, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, noop, fmt.Errorf("failed to create saved views directory: %w", err)
		}

		switch cfg.SavedViews.Backend {
		case "json":
			port = savedview.NewKVFilePort(path, cfg.SavedViews.Key)
		case "sqlite":
			sp, err := savedview.NewSQLitePort(path, cfg.SavedViews.Key)
			if err != nil {
				return nil, noop, err
			}
			port = sp
			closeFn = func() { _ = sp.Close() }
		default:
			port = savedview.NewYAMLPort(path)
		}
		logger.Debug("Opening saved views", zap.String("backend", cfg.SavedViews.Backend), zap.String("path", path))
	}

	store, err := savedview.NewStore(port, logger)
	if err != nil {
		closeFn()
		return nil, noop, err
	}
	return store, closeFn, nil
}

// newLoader returns the lead loader for the configured data source.
func newLoader(ctx context.Context, cfg *config.Config, logger *zap.Logger) (app.LeadLoader, func(), error) {
	noop := func() {}

	if cfg.Data.Source != "postgres" {
		path := cfg.Data.File
		return func(context.Context) ([]models.Lead, error) {
			return leads.LoadFile(path)
		}, noop, nil
	}

	conn := connectionConfig(cfg)
	if cfg.Database.KeyringUser != "" {
		resolved, err := connection.NewPasswordStore().ResolvePassword(conn, cfg.Database.KeyringUser)
		if err != nil {
			logger.Warn("Keyring lookup failed, connecting without stored password", zap.Error(err))
		} else {
			conn = resolved
		}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	pool, err := connection.NewPool(ctx, conn)
	if err != nil {
		return nil, noop, err
	}
	logger.Info("Connected to lead database", zap.Stringer("connection", conn))

	table := cfg.Database.Table
	return func(ctx context.Context) ([]models.Lead, error) {
		return query.LoadLeads(ctx, pool, table)
	}, pool.Close, nil
}

func connectionConfig(cfg *config.Config) models.ConnectionConfig {
	return models.ConnectionConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Database: cfg.Database.Name,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		SSLMode:  cfg.Database.SSLMode,
	}
}

// newEngine builds the lead view engine.
func newEngine(cfg *config.Config, logger *zap.Logger) (*view.Engine[models.Lead], error) {
	tag, err := language.Parse(cfg.General.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", cfg.General.Locale, err)
	}
	fields := cfg.Data.SearchFields
	if len(fields) == 0 {
		fields = leads.DefaultSearchFields
	}
	return view.NewEngine(leads.Schema(), view.EngineConfig{
		SearchFields: fields,
		Locale:       tag,
		Logger:       logger,
	}), nil
}
