//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reminder_check_test
package reminder_check

import (
	"context"
	"time"

	"vodovoz/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

type Notifier interface {
	NotifyReminder(ctx context.Context, order *entities.Order, minutesLeft int) error
}

type Clock interface {
	Now() time.Time
}
