package notification

import (
	"context"
	"errors"
	"fmt"

	"vodovoz/internal/entities"
	orderservice "vodovoz/internal/service/order"
)

type Notification struct {
	repository Repository
	notifier   Notifier
}

func New(repository Repository, notifier Notifier) *Notification {
	return &Notification{
		repository: repository,
		notifier:   notifier,
	}
}

// ProcessStatusEvent доставляет уведомление по событию смены статуса.
// Заказ перечитывается из базы: уведомление уходит с актуальными полями,
// а событие, отставшее от текущего состояния заказа, отбрасывается.
func (n *Notification) ProcessStatusEvent(ctx context.Context, event entities.OrderStatusEvent) error {
	order, err := n.repository.GetByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			return fmt.Errorf("order %d: %w", event.OrderID, ErrOrderNotFound)
		}
		return fmt.Errorf("failed to get order %d: %w", event.OrderID, err)
	}

	if event.UpdatedAt.Before(order.UpdatedAt) {
		return fmt.Errorf("order %d at %s: %w", event.OrderID, event.UpdatedAt, ErrStaleEvent)
	}

	err = n.notifier.NotifyStatusChange(ctx, order)
	if err != nil {
		return fmt.Errorf("notify status change: %w", err)
	}

	return nil
}
