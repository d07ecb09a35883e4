package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	svc := newCheckoutService(NewStripeClient(cfg), cfg.FrontendURL)
	e := newServer(cfg, svc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("listening on %s", addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func newServer(cfg config, svc *checkoutService) *echo.Echo {
	e := echo.New()

	limiterStore := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      50,
		Burst:     50,
		ExpiresIn: 1 * time.Minute,
	})
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: limiterStore,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendURL},
	}))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"ok": true})
	})
	e.POST("/create-checkout-session", createCheckoutSessionHandler(svc, cfg.StripeTimeout))
	registerWebRoutes(e, cfg)

	return e
}
