package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/stripe/stripe-go/v84"
)

// StripeClient adapts the Stripe SDK to the paymentProvider capability. It
// holds the only credentialed client in the process; nothing else talks to
// Stripe.
type StripeClient struct {
	sc *stripe.Client
}

func NewStripeClient(cfg config) *StripeClient {
	return &StripeClient{sc: stripe.NewClient(cfg.StripeSecretKey)}
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, d sessionDescriptor) (checkoutSession, error) {
	session, err := c.sc.V1CheckoutSessions.Create(ctx, buildSessionParams(d))
	if err != nil {
		return checkoutSession{}, classifyStripeError(err)
	}

	if session.URL == "" {
		return checkoutSession{}, &upstreamError{
			kind: upstreamUnknown,
			err:  errors.New("stripe response missing checkout url"),
		}
	}

	return checkoutSession{ID: session.ID, URL: session.URL}, nil
}

func buildSessionParams(d sessionDescriptor) *stripe.CheckoutSessionCreateParams {
	return &stripe.CheckoutSessionCreateParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{{
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency:   stripe.String(d.Currency),
				UnitAmount: stripe.Int64(d.UnitAmount),
				ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
					Name: stripe.String(d.ProductName),
				},
			},
			Quantity: stripe.Int64(d.Quantity),
		}},
		SuccessURL: stripe.String(d.SuccessURL),
		CancelURL:  stripe.String(d.CancelURL),
	}
}

// classifyStripeError wraps an SDK error as an upstreamError, surfacing
// Stripe's human-readable message rather than the JSON blob that
// (*stripe.Error).Error renders. Kinds are derived from the error's HTTP
// status, code and type.
func classifyStripeError(err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		cause := err
		if sErr.Msg != "" {
			cause = errors.New(sErr.Msg)
		}

		switch {
		case sErr.HTTPStatusCode == http.StatusUnauthorized,
			sErr.HTTPStatusCode == http.StatusForbidden:
			return &upstreamError{kind: upstreamAuth, err: cause}
		case sErr.Code == stripe.ErrorCodeRateLimit,
			sErr.HTTPStatusCode == http.StatusTooManyRequests,
			sErr.Type == stripe.ErrorTypeInvalidRequest,
			sErr.Type == stripe.ErrorTypeCard:
			return &upstreamError{kind: upstreamRejected, err: cause}
		default:
			return &upstreamError{kind: upstreamUnknown, err: cause}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &upstreamError{kind: upstreamNetwork, err: err}
	}

	return &upstreamError{kind: upstreamUnknown, err: err}
}
