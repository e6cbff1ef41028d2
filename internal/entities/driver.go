package entities

import "time"

type Driver struct {
	ID          int64
	FullName    string
	Phone       string
	ServiceType DriverServiceType
	CarNumber   string
	Status      DriverStatusType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DriverServiceType string

const (
	DriverServiceWater  DriverServiceType = "water"
	DriverServiceSeptic DriverServiceType = "septic"
	DriverServiceBoth   DriverServiceType = "both"
)

func (t DriverServiceType) String() string {
	return string(t)
}

type DriverStatusType string

const (
	DriverPending DriverStatusType = "pending"
	DriverActive  DriverStatusType = "active"
	DriverBlocked DriverStatusType = "blocked"
)

const DefaultDriverStatus = DriverPending

func (t DriverStatusType) String() string {
	return string(t)
}

type DriverModify struct {
	ID          *int64
	FullName    *string
	Phone       *string
	ServiceType *DriverServiceType
	CarNumber   *string
	Status      *DriverStatusType
}
