package driver

import (
	"strings"

	"vodovoz/internal/entities"
)

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

func isValidServiceType(serviceType entities.DriverServiceType) bool {
	switch serviceType {
	case entities.DriverServiceWater, entities.DriverServiceSeptic, entities.DriverServiceBoth:
		return true
	default:
		return false
	}
}

func isValidCarNumber(carNumber string) bool {
	return strings.TrimSpace(carNumber) != ""
}

func isValidStatus(status entities.DriverStatusType) bool {
	switch status {
	case entities.DriverPending, entities.DriverActive, entities.DriverBlocked:
		return true
	default:
		return false
	}
}
