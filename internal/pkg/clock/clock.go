package clock

import "time"

// System - часы реального времени. Сервисы зависят от узкого интерфейса
// Clock в своих contract.go, чтобы окно отмены и напоминания тестировались
// на фиксированном времени.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (*System) Now() time.Time {
	return time.Now().UTC()
}
