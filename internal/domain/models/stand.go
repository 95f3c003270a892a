package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Stand is the record book of a single lemonade stand.
//
// It owns the menu (item name -> MenuItem) and an append-only history with one
// DailySales entry per recorded day. Invariants:
//   - history[i].Day() == i for every recorded day.
//   - nextDay == len(history).
//   - every item sold on a day was on the menu when that day was recorded.
//
// Stand is not safe for concurrent use; see service.StandService.
type Stand struct {
	name    string
	menu    map[string]MenuItem
	history []DailySales
	nextDay int
}

// NewStand returns an empty stand with no menu and no recorded days.
func NewStand(name string) *Stand {
	return &Stand{
		name: name,
		menu: make(map[string]MenuItem),
	}
}

// Name returns the stand's name.
func (s *Stand) Name() string { return s.name }

// Days returns how many days have been recorded, which is also the index of the next day.
func (s *Stand) Days() int { return s.nextDay }

// AddMenuItem puts item on the menu, replacing any item with the same name.
func (s *Stand) AddMenuItem(item MenuItem) {
	s.menu[item.Name()] = item
}

// MenuItem looks up an item currently on the menu.
func (s *Stand) MenuItem(name string) (MenuItem, bool) {
	item, ok := s.menu[name]
	return item, ok
}

// Menu returns the current menu ordered by item name.
func (s *Stand) Menu() []MenuItem {
	out := make([]MenuItem, 0, len(s.menu))
	for _, item := range s.menu {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// History returns the recorded days in order. The slice is a copy.
func (s *Stand) History() []DailySales {
	out := make([]DailySales, len(s.history))
	copy(out, s.history)
	return out
}

// RecordSalesForToday appends the next day with the given per-item quantities.
//
// Every key of quantities must be on the menu. Otherwise an *InvalidSalesItemError
// listing all unknown names is returned and nothing is recorded.
func (s *Stand) RecordSalesForToday(quantities map[string]int) error {
	var unknown []string
	for name := range quantities {
		if _, ok := s.menu[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &InvalidSalesItemError{Items: unknown}
	}

	s.history = append(s.history, NewDailySales(s.nextDay, quantities))
	s.nextDay++
	return nil
}

// UnitsSoldFor returns how many units of itemName were sold on day.
// Days where the item was not recorded count as 0; a day that was never
// recorded is a *DayOutOfRangeError.
func (s *Stand) UnitsSoldFor(day int, itemName string) (int, error) {
	if day < 0 || day >= len(s.history) {
		return 0, &DayOutOfRangeError{Day: day, Days: len(s.history)}
	}
	return s.history[day].UnitsOf(itemName), nil
}

// TotalUnitsSold sums the units of itemName over the whole history.
func (s *Stand) TotalUnitsSold(itemName string) int {
	total := 0
	for _, day := range s.history {
		total += day.UnitsOf(itemName)
	}
	return total
}

// TotalProfitFor returns the profit made on itemName over the whole history,
// priced with the item's current cost and selling price. Items that are not on
// the menu yield zero.
func (s *Stand) TotalProfitFor(itemName string) decimal.Decimal {
	item, ok := s.menu[itemName]
	if !ok {
		return decimal.Zero
	}
	return item.Margin().Mul(decimal.NewFromInt(int64(s.TotalUnitsSold(itemName))))
}

// TotalProfit sums TotalProfitFor over every item currently on the menu.
func (s *Stand) TotalProfit() decimal.Decimal {
	total := decimal.Zero
	for name := range s.menu {
		total = total.Add(s.TotalProfitFor(name))
	}
	return total
}
