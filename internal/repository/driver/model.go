package driver

import "time"

type DriverDB struct {
	ID          int64
	FullName    string
	Phone       string
	ServiceType string
	CarNumber   string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DriverModifyDB struct {
	ID          *int64
	FullName    *string
	Phone       *string
	ServiceType *string
	CarNumber   *string
	Status      *string
}
