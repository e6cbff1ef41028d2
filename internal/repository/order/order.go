package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"vodovoz/internal/entities"
	"vodovoz/internal/repository"
	"vodovoz/internal/service/booking"
	"vodovoz/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, service_type, quantity, address, lat, lon,
	delivery_date, delivery_time, price, status, driver_id,
	user_name, user_phone, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	query := `INSERT INTO orders
		(service_type, quantity, address, lat, lon, delivery_date, delivery_time,
		 price, status, user_name, user_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.ServiceType,
		orderModifyModel.Quantity,
		orderModifyModel.Address,
		orderModifyModel.Lat,
		orderModifyModel.Lon,
		orderModifyModel.DeliveryDate,
		orderModifyModel.DeliveryTime,
		orderModifyModel.Price,
		orderModifyModel.Status,
		orderModifyModel.UserName,
		orderModifyModel.UserPhone,
	).Scan(scanTargets(&orderModel)...)
	if err != nil {
		// частичный уникальный индекс по (delivery_date, delivery_time)
		// среди нетерминальных заказов
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, booking.ErrSlotTaken
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) SlotOccupied(ctx context.Context, date, slotTime string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM orders
		WHERE delivery_date = $1
		  AND delivery_time = $2
		  AND status IN ('pending', 'confirmed', 'in_progress')
	)`

	var occupied bool
	err := r.querier.QueryRow(ctx, query, date, slotTime).Scan(&occupied)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository slot check error: %w", err)
	}

	return occupied, nil
}

func (r *Repository) OccupiedTimes(ctx context.Context, date string) ([]string, error) {
	query := `SELECT delivery_time
		FROM orders
		WHERE delivery_date = $1
		  AND status IN ('pending', 'confirmed', 'in_progress')
		ORDER BY delivery_time`

	rows, err := r.querier.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository occupied times error: %w", err)
	}
	defer rows.Close()

	times := make([]string, 0, 8)
	for rows.Next() {
		var t string
		err := rows.Scan(&t)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository occupied times error: %w", err)
		}
		times = append(times, t)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository occupied times error: %w", err)
	}

	return times, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select("id", "service_type", "quantity", "address", "lat", "lon",
			"delivery_date", "delivery_time", "price", "status", "driver_id",
			"user_name", "user_phone", "created_at", "updated_at").
		From("orders")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.DriverID != nil {
		builder = builder.Where(sq.Eq{"driver_id": *filter.DriverID})
	}
	if filter.UserPhone != nil {
		builder = builder.Where(sq.Eq{"user_phone": *filter.UserPhone})
	}
	if filter.DeliveryDate != nil {
		builder = builder.Where(sq.Eq{"delivery_date": *filter.DeliveryDate})
	}
	if filter.ServiceType != nil {
		builder = builder.Where(sq.Eq{"service_type": filter.ServiceType.String()})
	}
	if filter.AvailableForDriver {
		builder = builder.
			Where(sq.Eq{"status": entities.OrderPending.String()}).
			Where("driver_id IS NULL")
	}
	if filter.ActiveOnly {
		builder = builder.Where(sq.Eq{"status": []string{
			entities.OrderPending.String(),
			entities.OrderConfirmed.String(),
			entities.OrderInProgress.String(),
		}})
	}

	builder = builder.OrderBy("delivery_date", "delivery_time", "id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(scanTargets(&orderModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// GetUpdatedSince листает заказы курсором (updated_at, id): одинаковые
// updated_at на границе пачки не теряются.
func (r *Repository) GetUpdatedSince(ctx context.Context, since time.Time, sinceID int64, limit int) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE (updated_at, id) > ($1, $2)
		ORDER BY updated_at, id
		LIMIT $3`

	rows, err := r.querier.Query(ctx, query, since, sinceID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository updated since error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(scanTargets(&orderModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository updated since error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository updated since error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// AssignDriver закрепляет водителя за свободным заказом. Условия по
// статусу и driver_id IS NULL делают назначение однократным.
func (r *Repository) AssignDriver(ctx context.Context, orderID, driverID int64) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = 'confirmed',
		    driver_id = $2,
		    updated_at = NOW()
		WHERE id = $1
		  AND status = 'pending'
		  AND driver_id IS NULL
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID, driverID).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderAlreadyTaken
		}

		return nil, fmt.Errorf("unexpected order repository assign driver error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) TransitionByDriver(ctx context.Context, orderID, driverID int64, from, to entities.OrderStatusType) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = $4,
		    updated_at = NOW()
		WHERE id = $1
		  AND driver_id = $2
		  AND status = $3
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID, driverID, from.String(), to.String()).
		Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrInvalidTransition
		}

		return nil, fmt.Errorf("unexpected order repository transition by driver error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) Transition(ctx context.Context, orderID int64, from, to entities.OrderStatusType) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND status = $2
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID, from.String(), to.String()).
		Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrInvalidTransition
		}

		return nil, fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// GetDriverActivity отдаёт цены выполненных заказов поштучно:
// комиссия округляется на заказ, из сумм её уже не восстановить.
func (r *Repository) GetDriverActivity(ctx context.Context, driverID int64, today string) (*entities.DriverActivity, error) {
	query := `SELECT
		COUNT(*) FILTER (WHERE status = 'pending' AND driver_id IS NULL),
		COUNT(*) FILTER (WHERE driver_id = $1 AND status IN ('confirmed', 'in_progress')),
		COALESCE(ARRAY_AGG(price ORDER BY id) FILTER (WHERE driver_id = $1 AND status = 'completed'), '{}'),
		COALESCE(ARRAY_AGG(price ORDER BY id) FILTER (WHERE driver_id = $1 AND status = 'completed' AND delivery_date = $2), '{}')
	FROM orders`

	var activity entities.DriverActivity
	err := r.querier.QueryRow(ctx, query, driverID, today).Scan(
		&activity.NewOrders,
		&activity.ActiveOrders,
		&activity.CompletedPrices,
		&activity.TodayPrices,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository driver activity error: %w", err)
	}

	return &activity, nil
}

func (r *Repository) GetOrdersSummary(ctx context.Context) (*entities.OrdersSummary, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM orders),
		(SELECT COALESCE(ARRAY_AGG(price ORDER BY id), '{}') FROM orders WHERE status = 'completed'),
		(SELECT COUNT(*) FROM drivers WHERE status = 'active')`

	var summary entities.OrdersSummary
	err := r.querier.QueryRow(ctx, query).Scan(
		&summary.TotalOrders,
		&summary.CompletedPrices,
		&summary.ActiveDrivers,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository orders summary error: %w", err)
	}

	return &summary, nil
}

func scanTargets(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.ServiceType,
		&o.Quantity,
		&o.Address,
		&o.Lat,
		&o.Lon,
		&o.DeliveryDate,
		&o.DeliveryTime,
		&o.Price,
		&o.Status,
		&o.DriverID,
		&o.UserName,
		&o.UserPhone,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}
