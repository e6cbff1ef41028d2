package entities

// Actor - инициатор перехода статуса. Часть ограничений жизненного цикла
// зависит от роли: клиент отменяет только заранее, водитель работает только
// со своими заказами, админ не ограничен по времени.
type Actor struct {
	Role      ActorRole
	DriverID  int64
	UserPhone string
}

type ActorRole string

const (
	RoleCustomer ActorRole = "customer"
	RoleDriver   ActorRole = "driver"
	RoleAdmin    ActorRole = "admin"
)

func (r ActorRole) String() string {
	return string(r)
}
