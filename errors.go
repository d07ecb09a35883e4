package main

import "errors"

var errInvalidPrice = errors.New("price must be a positive integer (in cents)")

// upstreamKind classifies provider failures. The HTTP boundary maps them all
// to 500, but call sites that need to discriminate (a future retry policy,
// alerting) can recover the kind with upstreamKindOf.
type upstreamKind string

const (
	upstreamAuth     upstreamKind = "auth"
	upstreamNetwork  upstreamKind = "network"
	upstreamRejected upstreamKind = "rejected"
	upstreamUnknown  upstreamKind = "unknown"
)

type upstreamError struct {
	kind upstreamKind
	err  error
}

func (e *upstreamError) Error() string { return e.err.Error() }

func (e *upstreamError) Unwrap() error { return e.err }

func upstreamKindOf(err error) upstreamKind {
	var ue *upstreamError
	if errors.As(err, &ue) {
		return ue.kind
	}
	return upstreamUnknown
}
