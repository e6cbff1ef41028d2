package telegram

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"
	"vodovoz/internal/entities"
	retrierconfig "vodovoz/pkg/retrier"
	"vodovoz/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "telegram"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Notifier шлёт уведомления в общий чат водителей.
type Notifier struct {
	client  client
	retrier retrier
	chatID  int64
}

func New(client client, chatID int64) *Notifier {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	}

	return &Notifier{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		chatID:  chatID,
	}
}

// NewBot собирает send-only клиента Telegram.
func NewBot(token string) (*tele.Bot, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token: token,
	})
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return bot, nil
}

func (n *Notifier) NotifyStatusChange(ctx context.Context, order *entities.Order) error {
	err := n.executeWithMetrics(ctx, "NotifyStatusChange", statusText(order))
	if err != nil {
		return fmt.Errorf("gateway telegram, notify status change: order %d: %w", order.ID, err)
	}
	return nil
}

func (n *Notifier) NotifyReminder(ctx context.Context, order *entities.Order, minutesLeft int) error {
	text := fmt.Sprintf(
		"Напоминание: заказ №%d через %d мин.\n%s, %s\n%s",
		order.ID, minutesLeft, order.DeliveryDate, order.DeliveryTime, order.Address,
	)

	err := n.executeWithMetrics(ctx, "NotifyReminder", text)
	if err != nil {
		return fmt.Errorf("gateway telegram, notify reminder: order %d: %w", order.ID, err)
	}
	return nil
}

func statusText(order *entities.Order) string {
	slot := fmt.Sprintf("%s %s", order.DeliveryDate, order.DeliveryTime)

	switch order.Status {
	case entities.OrderPending:
		return fmt.Sprintf(
			"Новый заказ №%d: %s\n%s\n%s\nЦена: %d ₽",
			order.ID, serviceText(order.ServiceType), slot, order.Address, order.Price,
		)
	case entities.OrderConfirmed:
		return fmt.Sprintf("Заказ №%d принят в работу.\n%s", order.ID, slot)
	case entities.OrderInProgress:
		return fmt.Sprintf("Заказ №%d: водитель выехал.\n%s", order.ID, slot)
	case entities.OrderCompleted:
		return fmt.Sprintf("Заказ №%d выполнен.", order.ID)
	case entities.OrderCancelled:
		return fmt.Sprintf("Заказ №%d отменён.\nСлот %s снова свободен.", order.ID, slot)
	default:
		return fmt.Sprintf("Заказ №%d: статус %s.", order.ID, order.Status)
	}
}

func serviceText(serviceType entities.ServiceType) string {
	switch serviceType {
	case entities.ServiceWater:
		return "доставка воды"
	case entities.ServiceSeptic:
		return "откачка септика"
	default:
		return serviceType.String()
	}
}

func (n *Notifier) executeWithMetrics(ctx context.Context, method, text string) error {
	var attempt uint64
	start := time.Now()

	err := n.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		_, err := n.client.Send(tele.ChatID(n.chatID), text)
		return err
	})

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}
