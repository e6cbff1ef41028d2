package entities

// Earnings - расчетная разбивка выручки. Нигде не хранится: каждый
// потребитель (кабинет водителя, дашборд админа) пересчитывает её по
// одному и тому же правилу округления.
type Earnings struct {
	Gross      int64
	Commission int64
	Net        int64
}

// DriverActivity - сырая выборка по водителю: счётчики и цены выполненных
// заказов. Комиссию считает сервис, единым правилом округления.
type DriverActivity struct {
	NewOrders       int
	ActiveOrders    int
	CompletedPrices []int64
	TodayPrices     []int64
}

// OrdersSummary - сырая выборка для дашборда администратора.
type OrdersSummary struct {
	TotalOrders     int
	CompletedPrices []int64
	ActiveDrivers   int
}

// DriverStats - сводка кабинета водителя.
type DriverStats struct {
	NewOrders      int
	ActiveOrders   int
	CompletedTotal int
	Total          Earnings
	Today          Earnings
}

// AdminStats - сводка дашборда администратора.
type AdminStats struct {
	TotalOrders   int
	Revenue       int64
	Commission    int64
	ActiveDrivers int
}
