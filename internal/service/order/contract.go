//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"vodovoz/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	GetUpdatedSince(ctx context.Context, since time.Time, sinceID int64, limit int) ([]entities.Order, error)
	AssignDriver(ctx context.Context, orderID, driverID int64) (*entities.Order, error)
	TransitionByDriver(ctx context.Context, orderID, driverID int64, from, to entities.OrderStatusType) (*entities.Order, error)
	Transition(ctx context.Context, orderID int64, from, to entities.OrderStatusType) (*entities.Order, error)
	GetDriverActivity(ctx context.Context, driverID int64, today string) (*entities.DriverActivity, error)
	GetOrdersSummary(ctx context.Context) (*entities.OrdersSummary, error)
}

type DriverProvider interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Cache interface {
	InvalidateOccupied(ctx context.Context, date string) error
}

type Clock interface {
	Now() time.Time
}
