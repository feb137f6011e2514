package domain

import "errors"

// ErrInvalidParameter marks caller mistakes: a cluster count outside
// [1, n], an empty point set, or an out-of-bounds route start index.
// These are not retryable; callers reject the request. Wrapped errors are
// matched with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")
