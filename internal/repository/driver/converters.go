package driver

import (
	"vodovoz/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:          d.ID,
		FullName:    d.FullName,
		Phone:       d.Phone,
		ServiceType: entities.DriverServiceType(d.ServiceType),
		CarNumber:   d.CarNumber,
		Status:      entities.DriverStatusType(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{}

	if driverModify.ID != nil {
		driverDB.ID = driverModify.ID
	}
	if driverModify.FullName != nil {
		driverDB.FullName = driverModify.FullName
	}
	if driverModify.Phone != nil {
		driverDB.Phone = driverModify.Phone
	}
	if driverModify.ServiceType != nil {
		serviceType := driverModify.ServiceType.String()
		driverDB.ServiceType = &serviceType
	}
	if driverModify.CarNumber != nil {
		driverDB.CarNumber = driverModify.CarNumber
	}
	if driverModify.Status != nil {
		status := driverModify.Status.String()
		driverDB.Status = &status
	}

	return driverDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
