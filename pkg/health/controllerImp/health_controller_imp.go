package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrow/entities"
	kb "agrow/pkg/kb/service"
	store "agrow/pkg/store/service"
)

var appStart = time.Now()

type HealthCtrl struct {
	store store.Service
	kb    kb.KBService
	// db is set only for the sqlite store driver.
	db *gorm.DB
}

func NewHealthCtrl(st store.Service, k kb.KBService, db *gorm.DB) *HealthCtrl {
	return &HealthCtrl{store: st, kb: k, db: db}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	checks := map[string]any{}

	storeOK := sub{OK: true}
	if err := h.store.View(ctx, func(*entities.Snapshot) error { return nil }); err != nil {
		storeOK = sub{Err: err.Error()}
	}
	checks["store"] = storeOK

	allOK := storeOK.OK
	if h.db != nil {
		dbOK := sub{OK: true}
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = sub{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = sub{Err: "ping: " + err.Error()}
		}
		checks["database"] = dbOK
		allOK = allOK && dbOK.OK
	}

	entries := 0
	if h.kb != nil {
		entries = h.kb.Len()
	}
	checks["knowledge_base"] = map[string]any{"ok": true, "entries": entries}

	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"service":    "AGROW Lens API",
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     checks,
		"time":       time.Now().Format(time.RFC3339),
	})
}
