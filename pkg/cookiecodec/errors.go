package cookiecodec

import "errors"

var (
	// ErrEmptyKey is returned when a write or removal is attempted with an
	// empty key.
	ErrEmptyKey = errors.New("cookiecodec: empty key")
	// ErrReservedKey is returned when the key collides with an attribute
	// name (expires, max-age, path, domain, secure).
	ErrReservedKey = errors.New("cookiecodec: reserved attribute name")
	// ErrExpiryType is returned when an expiry is neither a date string nor
	// a time value.
	ErrExpiryType = errors.New("cookiecodec: expiry must be a date string or time.Time")
	// ErrFalseExpiry is returned when the expiry is the literal false.
	ErrFalseExpiry = errors.New("cookiecodec: expiry is false")
)
