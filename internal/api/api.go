package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New builds the echo instance with the demo routes registered.
func New(log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(requestLogger(log))

	e.GET("/api/health", Health)
	e.GET("/api/products", Products)

	return e
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			)
			return nil
		},
	})
}

type demoProduct struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Images []string `json:"images"`
}

type productList struct {
	Items []demoProduct `json:"items"`
	Total int           `json:"total"`
}

// Health reports liveness; it has no dependencies and never fails.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// Products serves the fixed demo catalog. No database behind it; the real
// catalog lives in Mongo and is populated by the seeder.
func Products(c echo.Context) error {
	demo := []demoProduct{
		{ID: "p1", Name: "Laptop Sleeve", Price: 29.99, Images: []string{}},
		{ID: "p2", Name: "USB-C Hub", Price: 49.00, Images: []string{}},
	}
	return c.JSON(http.StatusOK, productList{Items: demo, Total: len(demo)})
}
