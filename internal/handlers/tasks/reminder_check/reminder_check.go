package reminder_check

import (
	"context"
	"fmt"
	"time"

	"vodovoz/internal/entities"
	"vodovoz/pkg/logger"
)

// Пороговые значения напоминаний от ближнего к дальнему.
var reminderThresholds = []int{30, 60}

// ReminderCheck напоминает водителям о приближающихся доставках.
// Отметки об отправленных напоминаниях живут в памяти процесса:
// после перезапуска напоминание может прийти повторно, это допустимо.
type ReminderCheck struct {
	log        logger.Logger
	repository Repository
	notifier   Notifier
	clock      Clock
	location   *time.Location
	interval   time.Duration
	sent       map[string]struct{}
}

func NewReminderCheck(
	log logger.Logger,
	repository Repository,
	notifier Notifier,
	clock Clock,
	location *time.Location,
	interval time.Duration,
) *ReminderCheck {
	return &ReminderCheck{
		log:        log.With(),
		repository: repository,
		notifier:   notifier,
		clock:      clock,
		location:   location,
		interval:   interval,
		sent:       make(map[string]struct{}),
	}
}

func (r *ReminderCheck) TTL() time.Duration {
	return r.interval
}

func (r *ReminderCheck) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	now := r.clock.Now().In(r.location)
	today := now.Format("2006-01-02")

	orders, err := r.repository.GetAll(ctxWithTimeout, entities.OrderFilter{
		DeliveryDate: &today,
		ActiveOnly:   true,
	})
	if err != nil {
		return fmt.Errorf("orders for %s: %w", today, err)
	}

	for i := range orders {
		order := &orders[i]
		if order.DriverID == nil {
			continue
		}

		deliveryAt, err := order.DeliveryAt(r.location)
		if err != nil {
			r.log.With(
				logger.NewField("order", order.ID),
				logger.NewField("error", err),
			).Warn("reminder skipped, malformed delivery slot")
			continue
		}

		minutesLeft := r.dueThreshold(deliveryAt.Sub(now))
		if minutesLeft == 0 {
			continue
		}

		key := fmt.Sprintf("%d:%d", order.ID, minutesLeft)
		if _, ok := r.sent[key]; ok {
			continue
		}

		err = r.notifier.NotifyReminder(ctxWithTimeout, order, minutesLeft)
		if err != nil {
			r.log.With(
				logger.NewField("order", order.ID),
				logger.NewField("minutes_left", minutesLeft),
				logger.NewField("error", err),
			).Error("reminder delivery failed")
			continue
		}

		r.sent[key] = struct{}{}
	}

	return nil
}

// dueThreshold возвращает ближайший наступивший порог в минутах
// или 0, если напоминать рано либо доставка уже началась.
func (r *ReminderCheck) dueThreshold(untilDelivery time.Duration) int {
	if untilDelivery <= 0 {
		return 0
	}

	for _, minutes := range reminderThresholds {
		if untilDelivery <= time.Duration(minutes)*time.Minute {
			return minutes
		}
	}
	return 0
}

func (r *ReminderCheck) Info() string {
	return "delivery reminder check"
}
