package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrow/config"
	"agrow/database"
	"agrow/pkg/ai"
	"agrow/pkg/metrics"
	"agrow/router"

	authCtrlImp "agrow/pkg/auth/controllerImp"
	authSvcImp "agrow/pkg/auth/serviceImp"

	kbCtrlImp "agrow/pkg/kb/controllerImp"
	kbRepoImp "agrow/pkg/kb/repositoryImp"
	kbSvcImp "agrow/pkg/kb/serviceImp"

	healthCtrlImp "agrow/pkg/health/controllerImp"

	productCtrlImp "agrow/pkg/product/controllerImp"
	productSvcImp "agrow/pkg/product/serviceImp"

	purchaseCtrlImp "agrow/pkg/purchase/controllerImp"
	purchaseSvcImp "agrow/pkg/purchase/serviceImp"

	scanCtrlImp "agrow/pkg/scan/controllerImp"
	scanSvcImp "agrow/pkg/scan/serviceImp"

	storeRepo "agrow/pkg/store/repository"
	storeRepoImp "agrow/pkg/store/repositoryImp"
	storeSvcImp "agrow/pkg/store/serviceImp"
)

type app struct {
	echo *echo.Echo
	db   *gorm.DB
}

func (a *app) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func openStore(cfg config.AppConfig) (storeRepo.Store, *gorm.DB, error) {
	switch cfg.StoreDriver {
	case "", "json":
		return storeRepoImp.NewJSONFile(cfg.DBPath), nil, nil
	case "sqlite":
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return storeRepoImp.NewSQLite(db), db, nil
	case "memory":
		return storeRepoImp.NewMemory(nil), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}

// newVision returns the Gemini client, or the offline mock when no API key
// is configured.
func newVision(ctx context.Context, cfg config.AppConfig, httpClient *http.Client) (ai.VisionClient, error) {
	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, using mock vision client", "component", "ai")
		return ai.NewMock(), nil
	}
	return ai.NewGemini(ctx, ai.GeminiOptions{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.GeminiModel,
		BaseURL:    cfg.GeminiBaseURL,
		HTTPClient: httpClient,
	})
}

func buildApp(ctx context.Context, cfg config.AppConfig, logger *slog.Logger, vision ai.VisionClient) (*app, error) {
	repo, db, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{db: db}

	kb, err := kbSvcImp.New(kbRepoImp.NewFileLoader(cfg.DiseasesPath), cfg.KBStrict)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("knowledge base: %w", err)
	}
	logger.Info("knowledge base loaded", "component", "kb", "entries", kb.Len(), "duplicates", len(kb.Duplicates()))

	if vision == nil {
		if vision, err = newVision(ctx, cfg, nil); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	m, err := metrics.New()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	st := storeSvcImp.New(repo)
	products := productSvcImp.New(st)
	scans := scanSvcImp.New(vision, scanSvcImp.NewEngine(kb, nil), st, scanSvcImp.Options{
		InferenceTimeout: cfg.InferenceTimeout,
		Metrics:          m,
		Logger:           logger,
	})

	a.echo = router.New(echo.New(), router.Handlers{
		Auth:     authCtrlImp.NewAuthController(authSvcImp.New(st)),
		Scan:     scanCtrlImp.New(scans),
		Product:  productCtrlImp.New(products),
		Purchase: purchaseCtrlImp.New(purchaseSvcImp.New(st, products, m)),
		KB:       kbCtrlImp.New(kb),
		Health:   healthCtrlImp.NewHealthCtrl(st, kb, db),
		Metrics:  m.Handler(),
	}, router.Options{
		BodyLimit:     cfg.BodyLimit,
		ScanRateLimit: cfg.ScanRateLimit,
		Logger:        logger,
	})
	return a, nil
}
