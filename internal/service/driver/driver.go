package driver

import (
	"context"
	"fmt"

	"vodovoz/internal/entities"
)

type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

// RegisterDriver заводит анкету водителя. Новая анкета всегда попадает
// в pending и ждёт решения администратора.
func (s *Driver) RegisterDriver(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	if driverModify.FullName == nil ||
		driverModify.Phone == nil ||
		driverModify.ServiceType == nil ||
		driverModify.CarNumber == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*driverModify.FullName) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*driverModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidServiceType(*driverModify.ServiceType) {
		return 0, ErrInvalidServiceType
	}
	if !isValidCarNumber(*driverModify.CarNumber) {
		return 0, ErrInvalidCarNumber
	}

	status := entities.DefaultDriverStatus
	driverModify.Status = &status

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return 0, fmt.Errorf("register driver: %w", err)
	}

	return id, nil
}

// Login находит водителя по телефону. Непроверенные и заблокированные
// анкеты различаются отдельными ошибками, клиент показывает разные экраны.
func (s *Driver) Login(ctx context.Context, phone string) (*entities.Driver, error) {
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	driver, err := s.repository.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver by phone: %w", err)
	}

	switch driver.Status {
	case entities.DriverPending:
		return nil, ErrDriverPending
	case entities.DriverBlocked:
		return nil, ErrDriverBlocked
	}

	return driver, nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return driver, nil
}

func (s *Driver) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	return drivers, nil
}

// UpdateDriver меняет анкету, смена статуса это операция администратора.
func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || *driverModify.ID <= 0 {
		return nil, ErrInvalidDriverID
	}

	if driverModify.FullName == nil &&
		driverModify.Phone == nil &&
		driverModify.ServiceType == nil &&
		driverModify.CarNumber == nil &&
		driverModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.FullName != nil && !isValidName(*driverModify.FullName) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.ServiceType != nil && !isValidServiceType(*driverModify.ServiceType) {
		return nil, ErrInvalidServiceType
	}
	if driverModify.CarNumber != nil && !isValidCarNumber(*driverModify.CarNumber) {
		return nil, ErrInvalidCarNumber
	}
	if driverModify.Status != nil && !isValidStatus(*driverModify.Status) {
		return nil, ErrInvalidStatus
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}

	return driver, nil
}
