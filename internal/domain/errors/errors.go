package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation marks a transition or request missing a required field;
	// nothing is applied.
	ErrValidation = errors.New("validation failed")
	// ErrConflict means the order status changed under the caller; reread and
	// retry or surface "already processed".
	ErrConflict = errors.New("order already processed")
	// ErrInsufficientFunds is returned for pure-cashback debits that exceed
	// the balance. Mixed-method debits clamp instead and never return it.
	ErrInsufficientFunds = errors.New("insufficient cashback balance")
	ErrUnauthorized      = errors.New("operation not permitted")
	// ErrUpstreamUnavailable covers persistence or image-host failures; the
	// caller may retry.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
