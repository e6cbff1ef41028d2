package entities

import (
	"fmt"
	"time"
)

// Order - центральная сущность: заявка на доставку воды или откачку септика.
// DeliveryDate и DeliveryTime хранятся в форматах YYYY-MM-DD и HH:MM,
// вместе они образуют слот, уникальный среди нетерминальных заказов.
type Order struct {
	ID           int64
	ServiceType  ServiceType
	Quantity     int
	Address      string
	Coordinates  *Coordinates
	DeliveryDate string
	DeliveryTime string
	Price        int64
	Status       OrderStatusType
	DriverID     *int64
	UserName     string
	UserPhone    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Coordinates struct {
	Lat float64
	Lon float64
}

type ServiceType string

const (
	ServiceWater  ServiceType = "water"
	ServiceSeptic ServiceType = "septic"
)

func (s ServiceType) String() string {
	return string(s)
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderConfirmed  OrderStatusType = "confirmed"
	OrderInProgress OrderStatusType = "in_progress"
	OrderCompleted  OrderStatusType = "completed"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal сообщает, освободил ли заказ свой слот.
func (s OrderStatusType) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// NonTerminalStatuses - статусы, в которых заказ продолжает занимать слот.
var NonTerminalStatuses = []OrderStatusType{OrderPending, OrderConfirmed, OrderInProgress}

// DeliveryAt собирает дату и время доставки в момент времени в заданной зоне.
func (o *Order) DeliveryAt(loc *time.Location) (time.Time, error) {
	at, err := time.ParseInLocation("2006-01-02 15:04", o.DeliveryDate+" "+o.DeliveryTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse delivery slot %q %q: %w", o.DeliveryDate, o.DeliveryTime, err)
	}
	return at, nil
}

type OrderModify struct {
	ID           *int64
	ServiceType  *ServiceType
	Quantity     *int
	Address      *string
	Coordinates  *Coordinates
	DeliveryDate *string
	DeliveryTime *string
	Price        *int64
	Status       *OrderStatusType
	DriverID     *int64
	UserName     *string
	UserPhone    *string
}

// OrderFilter - необязательные условия выборки заказов.
type OrderFilter struct {
	Status       *OrderStatusType
	DriverID     *int64
	UserPhone    *string
	DeliveryDate *string
	ServiceType  *ServiceType
	// AvailableForDriver выбирает свободные заказы: pending без водителя.
	AvailableForDriver bool
	// ActiveOnly ограничивает выборку нетерминальными статусами.
	ActiveOnly bool
}

// BookingRequest - входные данные бронирования от клиентского представления.
type BookingRequest struct {
	ServiceType  ServiceType
	Quantity     int
	Address      string
	Coordinates  *Coordinates
	DeliveryDate string
	DeliveryTime string
	UserName     string
	UserPhone    string
}

// OrderStatusEvent - событие смены статуса заказа для брокера.
type OrderStatusEvent struct {
	OrderID   int64           `json:"order_id"`
	Status    OrderStatusType `json:"status"`
	DriverID  *int64          `json:"driver_id,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}
