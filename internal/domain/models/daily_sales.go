package models

// DailySales holds the units sold per menu item on one day of a stand's history.
//
// The day index is assigned by the Stand when sales are recorded; keys of the
// quantities map are menu item names. The constructor does not check either.
type DailySales struct {
	day        int
	quantities map[string]int
}

// NewDailySales copies quantities so later changes to the caller's map do not leak in.
func NewDailySales(day int, quantities map[string]int) DailySales {
	return DailySales{day: day, quantities: copyQuantities(quantities)}
}

// Day returns the zero-based day index.
func (d DailySales) Day() int { return d.day }

// Quantities returns a copy of the per-item counts recorded for the day.
func (d DailySales) Quantities() map[string]int {
	return copyQuantities(d.quantities)
}

// UnitsOf returns the count recorded for itemName, or 0 when it was not sold that day.
func (d DailySales) UnitsOf(itemName string) int {
	return d.quantities[itemName]
}

func copyQuantities(src map[string]int) map[string]int {
	out := make(map[string]int, len(src))
	for name, qty := range src {
		out[name] = qty
	}
	return out
}
