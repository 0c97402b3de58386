package router

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"agrow/pkg/middleware"
)

type Handlers struct {
	Auth     interface{ Login(echo.Context) error; WhoAmI(echo.Context) error }
	Scan     interface{ Create(echo.Context) error; List(echo.Context) error; Get(echo.Context) error }
	Product  interface{ List(echo.Context) error }
	Purchase interface{ Create(echo.Context) error; List(echo.Context) error }
	KB       interface{ List(echo.Context) error; Lookup(echo.Context) error }
	Health   interface{ Health(echo.Context) error }
	// Metrics is served on /metrics when set.
	Metrics http.Handler
}

type Options struct {
	BodyLimit     string
	ScanRateLimit float64
	Logger        *slog.Logger
}

func New(e *echo.Echo, h Handlers, opts Options) *echo.Echo {
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echomw.CORS())
	e.Use(echomw.Secure())
	if opts.BodyLimit != "" {
		e.Use(echomw.BodyLimit(opts.BodyLimit))
	}

	e.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.Metrics))
	}

	api := e.Group("/api")
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/products", h.Product.List)
	api.GET("/diseases", h.KB.List)
	api.GET("/diseases/lookup", h.KB.Lookup)

	bearer := middleware.Bearer()
	api.GET("/auth/whoami", h.Auth.WhoAmI, bearer)

	api.POST("/scans", h.Scan.Create, bearer, middleware.ScanLimiter(opts.ScanRateLimit))
	api.GET("/scans", h.Scan.List, bearer)
	api.GET("/scans/:id", h.Scan.Get, bearer)

	api.POST("/purchases", h.Purchase.Create, bearer)
	api.GET("/purchases", h.Purchase.List, bearer)
	return e
}
