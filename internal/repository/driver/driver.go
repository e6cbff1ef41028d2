package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"vodovoz/internal/entities"
	"vodovoz/internal/repository"
	"vodovoz/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverModifyEntity entities.DriverModify) (int64, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)
	query := `INSERT INTO drivers (full_name, phone, service_type, car_number, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		driverModifyModel.FullName,
		driverModifyModel.Phone,
		driverModifyModel.ServiceType,
		driverModifyModel.CarNumber,
		driverModifyModel.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, driver.ErrConflict
		}
		return 0, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	// опциональные поля
	if driverModifyModel.FullName != nil {
		builder = builder.Set("full_name", driverModifyModel.FullName)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}
	if driverModifyModel.ServiceType != nil {
		builder = builder.Set("service_type", driverModifyModel.ServiceType)
	}
	if driverModifyModel.CarNumber != nil {
		builder = builder.Set("car_number", driverModifyModel.CarNumber)
	}
	if driverModifyModel.Status != nil {
		builder = builder.Set("status", driverModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Suffix("RETURNING id, full_name, phone, service_type, car_number, status, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	var driverModel DriverDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&driverModel.ID,
			&driverModel.FullName,
			&driverModel.Phone,
			&driverModel.ServiceType,
			&driverModel.CarNumber,
			&driverModel.Status,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrConflict
		}

		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT id, full_name, phone, service_type, car_number, status, created_at, updated_at
		FROM drivers
		WHERE id = $1`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&driverModel.ID,
			&driverModel.FullName,
			&driverModel.Phone,
			&driverModel.ServiceType,
			&driverModel.CarNumber,
			&driverModel.Status,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*entities.Driver, error) {
	query := `SELECT id, full_name, phone, service_type, car_number, status, created_at, updated_at
		FROM drivers
		WHERE phone = $1`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, phone).
		Scan(
			&driverModel.ID,
			&driverModel.FullName,
			&driverModel.Phone,
			&driverModel.ServiceType,
			&driverModel.CarNumber,
			&driverModel.Status,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository getbyphone error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Driver, error) {
	query := `
	SELECT id, full_name, phone, service_type, car_number, status, created_at, updated_at
	FROM drivers
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		var driverModel DriverDB
		err := rows.Scan(
			&driverModel.ID,
			&driverModel.FullName,
			&driverModel.Phone,
			&driverModel.ServiceType,
			&driverModel.CarNumber,
			&driverModel.Status,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
		}
		driverModels = append(driverModels, driverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	return ToDomainList(driverModels), nil
}
