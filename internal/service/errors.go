package service

import (
	"context"
	"errors"
)

var (
	// ErrSignatureMismatch rejects an ITN whose signature does not
	// verify. No order state is touched for these.
	ErrSignatureMismatch = errors.New("invalid signature")

	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable is the fail-closed result when the store
	// handle does not answer a ping.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrInvalidContact = errors.New("invalid contact submission")
)

// PingFunc is the explicit store-availability probe injected into
// services that must fail closed when the database is down.
type PingFunc func(ctx context.Context) error
