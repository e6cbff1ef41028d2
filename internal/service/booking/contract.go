//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"
	"time"

	"vodovoz/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	SlotOccupied(ctx context.Context, date, slotTime string) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type PriceFactory interface {
	CalculatePrice(serviceType entities.ServiceType, quantity int) int64
}

type SlotGrid interface {
	InGrid(t string) bool
}

type Cache interface {
	InvalidateOccupied(ctx context.Context, date string) error
}

type Clock interface {
	Now() time.Time
}
