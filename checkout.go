package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v5"
)

const (
	checkoutCurrency   = "usd"
	defaultPriceCents  = 1500
	defaultQuantity    = 1
	defaultProductName = "Test Product"
)

// sessionDescriptor is the provider-agnostic description of a one-time
// payment: a single line item plus the redirect targets.
type sessionDescriptor struct {
	Currency    string
	UnitAmount  int64
	Quantity    int64
	ProductName string
	SuccessURL  string
	CancelURL   string
}

// paymentProvider creates a hosted checkout session and hands back its URL.
type paymentProvider interface {
	CreateCheckoutSession(ctx context.Context, d sessionDescriptor) (checkoutSession, error)
}

type checkoutService struct {
	provider    paymentProvider
	frontendURL string
}

func newCheckoutService(provider paymentProvider, frontendURL string) *checkoutService {
	return &checkoutService{
		provider:    provider,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// CreateSession validates the payload, builds the session descriptor and
// forwards it to the provider. Validation failures never reach the provider.
func (s *checkoutService) CreateSession(ctx context.Context, payload checkoutPayload) (checkoutSession, error) {
	req, err := normalizeCheckoutRequest(payload)
	if err != nil {
		return checkoutSession{}, err
	}

	descriptor := sessionDescriptor{
		Currency:    checkoutCurrency,
		UnitAmount:  req.Price,
		Quantity:    req.Quantity,
		ProductName: req.Name,
		SuccessURL:  s.frontendURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.frontendURL + "/cancel",
	}

	return s.provider.CreateCheckoutSession(ctx, descriptor)
}

// normalizeCheckoutRequest applies defaults and validates the price. Price
// must be a whole, positive JSON number; any other value (fractional, zero,
// negative, string, bool) fails with errInvalidPrice. Quantity is coerced to
// an integer without a positivity check; a non-positive quantity is forwarded
// and rejected by the provider.
func normalizeCheckoutRequest(p checkoutPayload) (checkoutRequest, error) {
	req := checkoutRequest{
		Price:    defaultPriceCents,
		Quantity: defaultQuantity,
		Name:     defaultProductName,
	}

	if p.Price != nil {
		v, ok := p.Price.(float64)
		if !ok || v <= 0 || v != math.Trunc(v) || v >= math.MaxInt64 {
			return checkoutRequest{}, errInvalidPrice
		}
		req.Price = int64(v)
	}

	if p.Quantity != nil {
		if v, ok := p.Quantity.(float64); ok {
			req.Quantity = int64(v)
		}
	}

	if p.Name != nil {
		switch v := p.Name.(type) {
		case string:
			if v != "" {
				req.Name = v
			}
		default:
			req.Name = fmt.Sprint(v)
		}
	}

	return req, nil
}

func createCheckoutSessionHandler(svc *checkoutService, timeout time.Duration) func(c echo.Context) error {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		var payload checkoutPayload
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &payload); err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			}
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		defer cancel()

		session, err := svc.CreateSession(ctx, payload)
		if err != nil {
			if errors.Is(err, errInvalidPrice) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			log.Printf("create checkout session failed: kind=%s err=%v", upstreamKindOf(err), err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, map[string]string{"url": session.URL})
	}
}
