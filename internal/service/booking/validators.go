package booking

import (
	"strings"
	"time"

	"vodovoz/internal/entities"
)

func isValidServiceType(serviceType entities.ServiceType) bool {
	switch serviceType {
	case entities.ServiceWater, entities.ServiceSeptic:
		return true
	default:
		return false
	}
}

func isValidQuantity(serviceType entities.ServiceType, quantity int) bool {
	// для септика объём фиксирован, количество не участвует в цене
	if serviceType == entities.ServiceSeptic {
		return true
	}
	return quantity > 0
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func parseDate(date string) (time.Time, bool) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
