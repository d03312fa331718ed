package paginator

import "errors"

// Validation errors returned by the sizing mutators. Out-of-range page
// requests are not errors; SetPage reports rejection through its return
// value instead.
var (
	ErrInvalidTotalItems = errors.New("total items must be non-negative")
	ErrInvalidPageSize   = errors.New("items per page must be >= 1")
)
