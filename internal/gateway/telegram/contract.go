//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=telegram_test
package telegram

import (
	"context"

	tele "gopkg.in/telebot.v3"
)

type client interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
