//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_events_test
package order_events

import (
	"context"
	"time"

	"vodovoz/internal/entities"
)

type Service interface {
	GetOrdersUpdatedSince(ctx context.Context, since time.Time, sinceID int64, limit int) ([]entities.Order, error)
}

type Publisher interface {
	SendMessage(topic string, key string, value []byte) error
}
