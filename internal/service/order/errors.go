package order

import "errors"

var (
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidDriverID = errors.New("invalid driver id")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidRole     = errors.New("invalid role")

	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrOrderAlreadyTaken  = errors.New("order is already taken by another driver")
	ErrNotAssigned        = errors.New("order is assigned to another driver")
	ErrForbidden          = errors.New("operation is not allowed for this actor")
	ErrDriverNotActive    = errors.New("driver is not active")
	ErrCancelWindowClosed = errors.New("cancel window is closed")
)
