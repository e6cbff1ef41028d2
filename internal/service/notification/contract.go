//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"vodovoz/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

type Notifier interface {
	NotifyStatusChange(ctx context.Context, order *entities.Order) error
}
