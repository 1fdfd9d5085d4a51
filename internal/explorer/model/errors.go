package model

import "errors"

var (
	// ErrUpstreamUnavailable reports a failed node query.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrNotFound reports a missing UTXO or transaction.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey reports a UTXO insertion collision.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrStoreUnavailable reports a failure talking to the persistence layer.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrMissingParameter reports a read call without a required argument.
	ErrMissingParameter = errors.New("missing parameter")
)

// ErrorName maps an error to the name reported in read API envelopes.
func ErrorName(err error) string {
	switch {
	case errors.Is(err, ErrMissingParameter):
		return "MissingParameter"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrDuplicateKey):
		return "DuplicateKey"
	case errors.Is(err, ErrStoreUnavailable):
		return "StoreUnavailable"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "UpstreamUnavailable"
	default:
		return "InternalError"
	}
}
