package order

import (
	"context"
	"fmt"
	"math"
	"time"

	"vodovoz/internal/entities"
)

// allowedTransitions - переходы жизненного цикла заказа.
// Терминальные статусы переходов не имеют.
var allowedTransitions = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderPending:    {entities.OrderConfirmed, entities.OrderCancelled},
	entities.OrderConfirmed:  {entities.OrderInProgress, entities.OrderCancelled},
	entities.OrderInProgress: {entities.OrderCompleted},
}

type Order struct {
	repository     Repository
	drivers        DriverProvider
	txManager      TxManager
	cache          Cache
	clock          Clock
	location       *time.Location
	cancelWindow   time.Duration
	commissionRate float64
}

func New(
	repository Repository,
	drivers DriverProvider,
	txManager TxManager,
	cache Cache,
	clock Clock,
	location *time.Location,
	cancelWindow time.Duration,
	commissionRate float64,
) *Order {
	return &Order{
		repository:     repository,
		drivers:        drivers,
		txManager:      txManager,
		cache:          cache,
		clock:          clock,
		location:       location,
		cancelWindow:   cancelWindow,
		commissionRate: commissionRate,
	}
}

// Transition переводит заказ в целевой статус от имени actor.
// Чтение и условное обновление идут в одной транзакции, поэтому
// параллельный перевод того же заказа получит конфликт, а не затрёт чужой.
func (s *Order) Transition(ctx context.Context, orderID int64, target entities.OrderStatusType, actor entities.Actor) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(target) {
		return nil, ErrInvalidStatus
	}
	if !isValidRole(actor.Role) {
		return nil, ErrInvalidRole
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !transitionAllowed(current.Status, target) {
			return ErrInvalidTransition
		}

		updated, err = s.applyTransition(ctx, current, target, actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	if updated.Status.Terminal() {
		// слот освободился, кэш занятости устарел
		_ = s.cache.InvalidateOccupied(ctx, updated.DeliveryDate)
	}

	return updated, nil
}

func (s *Order) applyTransition(ctx context.Context, current *entities.Order, target entities.OrderStatusType, actor entities.Actor) (*entities.Order, error) {
	switch target {
	case entities.OrderConfirmed:
		return s.acceptOrder(ctx, current, actor)
	case entities.OrderInProgress, entities.OrderCompleted:
		return s.progressOrder(ctx, current, target, actor)
	case entities.OrderCancelled:
		return s.cancelOrder(ctx, current, actor)
	default:
		return nil, ErrInvalidTransition
	}
}

// acceptOrder закрепляет заказ за водителем. Условие driver_id IS NULL
// в обновлении не даёт двум водителям взять один заказ.
func (s *Order) acceptOrder(ctx context.Context, current *entities.Order, actor entities.Actor) (*entities.Order, error) {
	if actor.Role == entities.RoleCustomer {
		return nil, ErrForbidden
	}
	if actor.DriverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if current.DriverID != nil {
		return nil, ErrOrderAlreadyTaken
	}

	driver, err := s.drivers.GetDriver(ctx, actor.DriverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}
	if driver.Status != entities.DriverActive {
		return nil, ErrDriverNotActive
	}

	updated, err := s.repository.AssignDriver(ctx, current.ID, actor.DriverID)
	if err != nil {
		return nil, fmt.Errorf("assign driver: %w", err)
	}
	return updated, nil
}

func (s *Order) progressOrder(ctx context.Context, current *entities.Order, target entities.OrderStatusType, actor entities.Actor) (*entities.Order, error) {
	switch actor.Role {
	case entities.RoleAdmin:
		updated, err := s.repository.Transition(ctx, current.ID, current.Status, target)
		if err != nil {
			return nil, fmt.Errorf("transition order: %w", err)
		}
		return updated, nil
	case entities.RoleDriver:
		if current.DriverID == nil || *current.DriverID != actor.DriverID {
			return nil, ErrNotAssigned
		}
		updated, err := s.repository.TransitionByDriver(ctx, current.ID, actor.DriverID, current.Status, target)
		if err != nil {
			return nil, fmt.Errorf("transition order by driver: %w", err)
		}
		return updated, nil
	default:
		return nil, ErrForbidden
	}
}

// cancelOrder отменяет заказ. Клиент отменяет только свой заказ и только
// пока до доставки остаётся не меньше окна отмены, водитель отменяет
// закреплённый за ним заказ, админ без ограничений.
func (s *Order) cancelOrder(ctx context.Context, current *entities.Order, actor entities.Actor) (*entities.Order, error) {
	switch actor.Role {
	case entities.RoleAdmin:
	case entities.RoleDriver:
		if current.DriverID == nil || *current.DriverID != actor.DriverID {
			return nil, ErrNotAssigned
		}
	case entities.RoleCustomer:
		if current.UserPhone != actor.UserPhone {
			return nil, ErrForbidden
		}

		deliveryAt, err := current.DeliveryAt(s.location)
		if err != nil {
			return nil, fmt.Errorf("parse delivery time: %w", err)
		}
		if deliveryAt.Sub(s.clock.Now().In(s.location)) < s.cancelWindow {
			return nil, ErrCancelWindowClosed
		}
	default:
		return nil, ErrForbidden
	}

	updated, err := s.repository.Transition(ctx, current.ID, current.Status, entities.OrderCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	return updated, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *Order) GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

// GetOrdersUpdatedSince отдаёт заказы, изменённые после курсора,
// в порядке updated_at.
func (s *Order) GetOrdersUpdatedSince(ctx context.Context, since time.Time, sinceID int64, limit int) ([]entities.Order, error) {
	orders, err := s.repository.GetUpdatedSince(ctx, since, sinceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated orders: %w", err)
	}

	return orders, nil
}

// CalculateEarnings раскладывает цену заказа на комиссию площадки и
// заработок водителя. Комиссия округляется до целого рубля.
func (s *Order) CalculateEarnings(price int64) entities.Earnings {
	commission := int64(math.Round(float64(price) * s.commissionRate))
	return entities.Earnings{
		Gross:      price,
		Commission: commission,
		Net:        price - commission,
	}
}

func (s *Order) GetDriverStats(ctx context.Context, driverID int64) (*entities.DriverStats, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	today := s.clock.Now().In(s.location).Format("2006-01-02")
	activity, err := s.repository.GetDriverActivity(ctx, driverID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver stats: %w", err)
	}

	stats := entities.DriverStats{
		NewOrders:      activity.NewOrders,
		ActiveOrders:   activity.ActiveOrders,
		CompletedTotal: len(activity.CompletedPrices),
		Total:          s.sumEarnings(activity.CompletedPrices),
		Today:          s.sumEarnings(activity.TodayPrices),
	}

	return &stats, nil
}

func (s *Order) GetAdminStats(ctx context.Context) (*entities.AdminStats, error) {
	summary, err := s.repository.GetOrdersSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin stats: %w", err)
	}

	completed := s.sumEarnings(summary.CompletedPrices)
	stats := entities.AdminStats{
		TotalOrders:   summary.TotalOrders,
		Revenue:       completed.Gross,
		Commission:    completed.Commission,
		ActiveDrivers: summary.ActiveDrivers,
	}

	return &stats, nil
}

// sumEarnings складывает заработок по заказам, округляя комиссию
// каждого заказа отдельно.
func (s *Order) sumEarnings(prices []int64) entities.Earnings {
	var total entities.Earnings
	for _, price := range prices {
		earnings := s.CalculateEarnings(price)
		total.Gross += earnings.Gross
		total.Commission += earnings.Commission
		total.Net += earnings.Net
	}
	return total
}

func transitionAllowed(from, to entities.OrderStatusType) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending, entities.OrderConfirmed, entities.OrderInProgress,
		entities.OrderCompleted, entities.OrderCancelled:
		return true
	default:
		return false
	}
}

func isValidRole(role entities.ActorRole) bool {
	switch role {
	case entities.RoleCustomer, entities.RoleDriver, entities.RoleAdmin:
		return true
	default:
		return false
	}
}
