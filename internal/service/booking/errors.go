package booking

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidServiceType    = errors.New("invalid service type")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidDate           = errors.New("invalid delivery date")
	ErrDateInPast            = errors.New("delivery date is in the past")
	ErrTimeNotInGrid         = errors.New("delivery time is not in the slot grid")

	ErrSlotTaken = errors.New("slot is already taken")
)
