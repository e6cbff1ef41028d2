package booking

import (
	"context"
	"fmt"
	"time"

	"vodovoz/internal/entities"
)

type Booking struct {
	repository   Repository
	txManager    TxManager
	priceFactory PriceFactory
	grid         SlotGrid
	cache        Cache
	clock        Clock
	location     *time.Location
}

func New(
	repository Repository,
	txManager TxManager,
	priceFactory PriceFactory,
	grid SlotGrid,
	cache Cache,
	clock Clock,
	location *time.Location,
) *Booking {
	return &Booking{
		repository:   repository,
		txManager:    txManager,
		priceFactory: priceFactory,
		grid:         grid,
		cache:        cache,
		clock:        clock,
		location:     location,
	}
}

// SubmitBooking создаёт заявку, удерживая слот (date, time).
// Проверка занятости до транзакции отсекает очевидные конфликты,
// повторная проверка и вставка в одной транзакции вместе с уникальным
// индексом гарантируют один заказ на слот при гонке.
func (b *Booking) SubmitBooking(ctx context.Context, request entities.BookingRequest) (*entities.Order, error) {
	err := b.validate(request)
	if err != nil {
		return nil, err
	}

	occupied, err := b.repository.SlotOccupied(ctx, request.DeliveryDate, request.DeliveryTime)
	if err != nil {
		return nil, fmt.Errorf("slot pre-check: %w", err)
	}
	if occupied {
		return nil, ErrSlotTaken
	}

	// форма септика объём не передаёт, откачка всегда одна
	quantity := request.Quantity
	if request.ServiceType == entities.ServiceSeptic {
		quantity = 1
	}

	price := b.priceFactory.CalculatePrice(request.ServiceType, quantity)
	status := entities.OrderPending

	orderModify := entities.OrderModify{
		ServiceType:  &request.ServiceType,
		Quantity:     &quantity,
		Address:      &request.Address,
		Coordinates:  request.Coordinates,
		DeliveryDate: &request.DeliveryDate,
		DeliveryTime: &request.DeliveryTime,
		Price:        &price,
		Status:       &status,
		UserName:     &request.UserName,
		UserPhone:    &request.UserPhone,
	}

	var order *entities.Order
	err = b.txManager.Do(ctx, func(ctx context.Context) error {
		occupied, err := b.repository.SlotOccupied(ctx, request.DeliveryDate, request.DeliveryTime)
		if err != nil {
			return fmt.Errorf("slot re-check: %w", err)
		}
		if occupied {
			return ErrSlotTaken
		}

		order, err = b.repository.Create(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// кэш слотов не источник истины, его ошибки не ломают бронирование
	_ = b.cache.InvalidateOccupied(ctx, request.DeliveryDate)

	return order, nil
}

func (b *Booking) validate(request entities.BookingRequest) error {
	if request.ServiceType == "" ||
		request.Address == "" ||
		request.DeliveryDate == "" ||
		request.DeliveryTime == "" ||
		request.UserName == "" ||
		request.UserPhone == "" {
		return ErrMissingRequiredFields
	}

	if !isValidServiceType(request.ServiceType) {
		return ErrInvalidServiceType
	}
	if !isValidQuantity(request.ServiceType, request.Quantity) {
		return ErrInvalidQuantity
	}
	if !isValidAddress(request.Address) {
		return ErrInvalidAddress
	}
	if !isValidName(request.UserName) {
		return ErrInvalidName
	}
	if !isValidPhone(request.UserPhone) {
		return ErrInvalidPhone
	}

	day, ok := parseDate(request.DeliveryDate)
	if !ok {
		return ErrInvalidDate
	}

	now := b.clock.Now().In(b.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return ErrDateInPast
	}

	if !b.grid.InGrid(request.DeliveryTime) {
		return ErrTimeNotInGrid
	}

	return nil
}
