package main

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v5"
)

//go:embed static
var staticFS embed.FS

// registerWebRoutes serves the demo checkout client: the form page, the
// redirect landing pages and the publishable-key endpoint the page reads.
func registerWebRoutes(e *echo.Echo, cfg config) {
	e.GET("/config", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"publishableKey": cfg.StripePublishableKey,
		})
	})

	e.GET("/checkout", servePage("static/checkout.html"))
	e.GET("/success", servePage("static/success.html"))
	e.GET("/cancel", servePage("static/cancel.html"))
}

func servePage(name string) func(c echo.Context) error {
	page, err := staticFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return func(c echo.Context) error {
		return c.Blob(http.StatusOK, "text/html; charset=utf-8", page)
	}
}
