package order

import (
	"vodovoz/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	var coordinates *entities.Coordinates
	if o.Lat != nil && o.Lon != nil {
		coordinates = &entities.Coordinates{Lat: *o.Lat, Lon: *o.Lon}
	}

	return &entities.Order{
		ID:           o.ID,
		ServiceType:  entities.ServiceType(o.ServiceType),
		Quantity:     o.Quantity,
		Address:      o.Address,
		Coordinates:  coordinates,
		DeliveryDate: o.DeliveryDate.Format("2006-01-02"),
		DeliveryTime: o.DeliveryTime,
		Price:        o.Price,
		Status:       entities.OrderStatusType(o.Status),
		DriverID:     o.DriverID,
		UserName:     o.UserName,
		UserPhone:    o.UserPhone,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.ServiceType != nil {
		serviceType := orderModify.ServiceType.String()
		orderDB.ServiceType = &serviceType
	}
	if orderModify.Quantity != nil {
		orderDB.Quantity = orderModify.Quantity
	}
	if orderModify.Address != nil {
		orderDB.Address = orderModify.Address
	}
	if orderModify.Coordinates != nil {
		lat := orderModify.Coordinates.Lat
		lon := orderModify.Coordinates.Lon
		orderDB.Lat = &lat
		orderDB.Lon = &lon
	}
	if orderModify.DeliveryDate != nil {
		orderDB.DeliveryDate = orderModify.DeliveryDate
	}
	if orderModify.DeliveryTime != nil {
		orderDB.DeliveryTime = orderModify.DeliveryTime
	}
	if orderModify.Price != nil {
		orderDB.Price = orderModify.Price
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.DriverID != nil {
		orderDB.DriverID = orderModify.DriverID
	}
	if orderModify.UserName != nil {
		orderDB.UserName = orderModify.UserName
	}
	if orderModify.UserPhone != nil {
		orderDB.UserPhone = orderModify.UserPhone
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
