package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"vodovoz/internal/entities"
	"vodovoz/pkg/logger"
)

const batchLimit = 100

// OrderEvents публикует изменения статусов заказов в Kafka.
// Курсор (updated_at, id) движется только вперёд, поэтому каждое изменение
// публикуется не более одного раза за время жизни процесса. Пара с id
// разрезает пачки с одинаковым updated_at без потерь на границе.
type OrderEvents struct {
	log       logger.Logger
	service   Service
	publisher Publisher
	topic     string
	interval  time.Duration
	cursor    time.Time
	cursorID  int64
}

func NewOrderEvents(
	log logger.Logger,
	service Service,
	publisher Publisher,
	topic string,
	interval time.Duration,
	startFrom time.Time,
) *OrderEvents {
	return &OrderEvents{
		log:       log.With(),
		service:   service,
		publisher: publisher,
		topic:     topic,
		interval:  interval,
		cursor:    startFrom,
	}
}

func (o *OrderEvents) TTL() time.Duration {
	return o.interval
}

func (o *OrderEvents) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	orders, err := o.service.GetOrdersUpdatedSince(ctxWithTimeout, o.cursor, o.cursorID, batchLimit)
	if err != nil {
		return fmt.Errorf("orders updated since %s: %w", o.cursor.Format(time.RFC3339), err)
	}

	for i := range orders {
		err := o.publish(&orders[i])
		if err != nil {
			// курсор не двигаем, эта и следующие записи уйдут в следующий тик
			return err
		}
		o.cursor = orders[i].UpdatedAt
		o.cursorID = orders[i].ID
	}

	if len(orders) > 0 {
		o.log.With(
			logger.NewField("published", len(orders)),
			logger.NewField("cursor", o.cursor),
		).Info("order events published")
	}

	return nil
}

func (o *OrderEvents) publish(order *entities.Order) error {
	event := entities.OrderStatusEvent{
		OrderID:   order.ID,
		Status:    order.Status,
		DriverID:  order.DriverID,
		UpdatedAt: order.UpdatedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order %d event: %w", order.ID, err)
	}

	err = o.publisher.SendMessage(o.topic, strconv.FormatInt(order.ID, 10), payload)
	if err != nil {
		return fmt.Errorf("publish order %d event: %w", order.ID, err)
	}

	return nil
}

func (o *OrderEvents) Info() string {
	return "order events publishing"
}
