package order

import "time"

type OrderDB struct {
	ID           int64
	ServiceType  string
	Quantity     int
	Address      string
	Lat          *float64
	Lon          *float64
	DeliveryDate time.Time
	DeliveryTime string
	Price        int64
	Status       string
	DriverID     *int64
	UserName     string
	UserPhone    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderModifyDB struct {
	ID           *int64
	ServiceType  *string
	Quantity     *int
	Address      *string
	Lat          *float64
	Lon          *float64
	DeliveryDate *string
	DeliveryTime *string
	Price        *int64
	Status       *string
	DriverID     *int64
	UserName     *string
	UserPhone    *string
}
