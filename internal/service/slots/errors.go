package slots

import "errors"

var (
	ErrDateRequired = errors.New("date is required")
	ErrInvalidDate  = errors.New("invalid date")
)
