package notification

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrStaleEvent    = errors.New("event is older than current order state")
)
