package entities

// DaySlots - расписание слотов на одну дату.
// Available и Occupied вместе составляют полную сетку дня.
type DaySlots struct {
	Date      string
	Available []string
	Occupied  []string
}
