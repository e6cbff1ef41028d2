//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_post_test
package booking_post

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
	SubmitBooking(ctx context.Context, request entities.BookingRequest) (*entities.Order, error)
}
