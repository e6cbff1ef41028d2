package pricing

import (
	"vodovoz/internal/entities"
)

// PriceList - тарифы услуг в целых рублях.
type PriceList struct {
	WaterPerCubicMeter int64
	SepticFlat         int64
}

type PriceFactory struct {
	prices PriceList
}

func New(prices PriceList) *PriceFactory {
	return &PriceFactory{prices: prices}
}

// CalculatePrice считает стоимость заказа при создании. Для септика
// количество всегда трактуется как один выезд.
func (f *PriceFactory) CalculatePrice(serviceType entities.ServiceType, quantity int) int64 {
	switch serviceType {
	case entities.ServiceWater:
		return f.prices.WaterPerCubicMeter * int64(quantity)
	case entities.ServiceSeptic:
		return f.prices.SepticFlat
	default:
		return 0
	}
}
