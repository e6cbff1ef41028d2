//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_post_test
package order_status_post

import (
	"context"

	"vodovoz/internal/entities"
	"vodovoz/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Transition(ctx context.Context, orderID int64, target entities.OrderStatusType, actor entities.Actor) (*entities.Order, error)
}
