package native

import "errors"

// ErrQuotaExceeded is returned by SetItem when the write would push a
// store over its quota.
var ErrQuotaExceeded = errors.New("native: quota exceeded")
