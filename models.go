package main

// checkoutPayload is the raw JSON body of POST /create-checkout-session.
// Fields stay untyped so a wrong-typed value is reported as a validation
// failure instead of a decode failure.
type checkoutPayload struct {
	Price    any `json:"price"`
	Quantity any `json:"quantity"`
	Name     any `json:"name"`
}

// checkoutRequest is the payload after defaults and coercion.
type checkoutRequest struct {
	Price    int64
	Quantity int64
	Name     string
}

type checkoutSession struct {
	ID  string
	URL string
}
