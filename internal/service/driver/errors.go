package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidServiceType    = errors.New("invalid service type")
	ErrInvalidCarNumber      = errors.New("invalid car number")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrDriverNotFound = errors.New("driver not found")
	ErrDriverPending  = errors.New("driver is awaiting approval")
	ErrDriverBlocked  = errors.New("driver is blocked")
	ErrConflict       = errors.New("driver already exists")
)
