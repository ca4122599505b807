package cubislang

import "errors"

var (
	// ErrNilAdapter is returned when a translation adapter is required
	// but none was provided.
	ErrNilAdapter = errors.New("cubislang: translation adapter is nil")

	// ErrClosed is returned by operations invoked after Close.
	ErrClosed = errors.New("cubislang: instance is closed")

	// ErrBadKeySize is returned when a decryption key is not a valid
	// AES key length (16, 24 or 32 bytes).
	ErrBadKeySize = errors.New("cubislang: decryption key must be 16, 24 or 32 bytes")

	// ErrBadPayload is returned when an encrypted payload cannot be
	// decoded or is not block aligned.
	ErrBadPayload = errors.New("cubislang: malformed encrypted payload")

	// ErrLocaleNotLoaded is returned when an operation references a
	// locale that could not be loaded from any source.
	ErrLocaleNotLoaded = errors.New("cubislang: locale not loaded")
)
