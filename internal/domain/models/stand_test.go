package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLemonadeStand(t *testing.T) *Stand {
	t.Helper()
	s := NewStand("S")
	s.AddMenuItem(NewMenuItem("lemonade", decimal.RequireFromString("0.5"), decimal.RequireFromString("1.5")))
	return s
}

func TestStand_AddMenuItem(t *testing.T) {
	s := NewStand("Lemons R Us")
	assert.Equal(t, "Lemons R Us", s.Name())

	s.AddMenuItem(NewMenuItem("lemonade", decimal.RequireFromString("0.5"), decimal.RequireFromString("1.5")))
	item, ok := s.MenuItem("lemonade")
	require.True(t, ok)
	assert.Equal(t, "lemonade", item.Name())
	require.NoError(t, s.RecordSalesForToday(map[string]int{"lemonade": 1}))
}

func TestStand_AddMenuItemOverwrites(t *testing.T) {
	s := newLemonadeStand(t)
	s.AddMenuItem(NewMenuItem("lemonade", decimal.RequireFromString("1"), decimal.RequireFromString("3")))

	require.Len(t, s.Menu(), 1)
	item, _ := s.MenuItem("lemonade")
	assert.Equal(t, "3", item.SellingPrice().String())
}

func TestStand_MenuSortedByName(t *testing.T) {
	s := NewStand("S")
	for _, name := range []string{"tea", "cookie", "lemonade"} {
		s.AddMenuItem(NewMenuItem(name, decimal.Zero, decimal.NewFromInt(1)))
	}
	var names []string
	for _, item := range s.Menu() {
		names = append(names, item.Name())
	}
	assert.Equal(t, []string{"cookie", "lemonade", "tea"}, names)
}

func TestStand_RecordSalesAssignsSequentialDays(t *testing.T) {
	s := newLemonadeStand(t)
	const k = 5
	for i := 0; i < k; i++ {
		require.NoError(t, s.RecordSalesForToday(map[string]int{"lemonade": i}))
	}

	history := s.History()
	require.Len(t, history, k)
	for i, day := range history {
		assert.Equal(t, i, day.Day())
	}
	assert.Equal(t, k, s.Days())
}

func TestStand_RecordSalesRejectsUnknownItems(t *testing.T) {
	s := newLemonadeStand(t)
	require.NoError(t, s.RecordSalesForToday(map[string]int{"lemonade": 5}))
	before := s.History()

	err := s.RecordSalesForToday(map[string]int{"lemonade": 1, "nori": 3, "cookie": 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSalesItem))

	var invalid *InvalidSalesItemError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []string{"cookie", "nori"}, invalid.Items)
	assert.Contains(t, err.Error(), "cookie, nori")

	assert.Equal(t, before, s.History())
	assert.Equal(t, 1, s.Days())
}

func TestStand_RecordEmptyDay(t *testing.T) {
	s := newLemonadeStand(t)
	require.NoError(t, s.RecordSalesForToday(nil))

	units, err := s.UnitsSoldFor(0, "lemonade")
	require.NoError(t, err)
	assert.Equal(t, 0, units)
}

func TestStand_UnitsSoldFor(t *testing.T) {
	s := newLemonadeStand(t)
	s.AddMenuItem(NewMenuItem("cookie", decimal.RequireFromString("0.25"), decimal.RequireFromString("1")))
	require.NoError(t, s.RecordSalesForToday(map[string]int{"lemonade": 5}))
	require.NoError(t, s.RecordSalesForToday(map[string]int{"lemonade": 3, "cookie": 4}))

	cases := []struct {
		name    string
		day     int
		item    string
		want    int
		wantErr bool
	}{
		{name: "recorded", day: 0, item: "lemonade", want: 5},
		{name: "second day", day: 1, item: "cookie", want: 4},
		{name: "not sold that day", day: 0, item: "cookie", want: 0},
		{name: "unknown item", day: 1, item: "nori", want: 0},
		{name: "negative day", day: -1, item: "lemonade", wantErr: true},
		{name: "future day", day: 2, item: "lemonade", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.UnitsSoldFor(tc.day, tc.item)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrDayOutOfRange))
				var oor *DayOutOfRangeError
				require.True(t, errors.As(err, &oor))
				assert.Equal(t, tc.day, oor.Day)
				assert.Equal(t, 2, oor.Days)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStand_TotalUnitsSoldMatchesDailySum(t *testing.T) {
	s := newLemonadeStand(t)
	s.AddMenuItem(NewMenuItem("cookie", decimal.Zero, decimal.NewFromInt(1)))
	days := []map[string]int{
		{"lemonade": 5},
		{"cookie": 2},
		{"lemonade": 3, "cookie": 1},
	}
	for _, q := range days {
		require.NoError(t, s.RecordSalesForToday(q))
	}

	for _, item := range []string{"lemonade", "cookie", "nori"} {
		sum := 0
		for d := 0; d < s.Days(); d++ {
			units, err := s.UnitsSoldFor(d, item)
			require.NoError(t, err)
			sum += units
		}
		assert.Equal(t, sum, s.TotalUnitsSold(item), item)
	}
	assert.Equal(t, 0, s.TotalUnitsSold("nori"))
}

func TestStand_TotalProfitFor(t *testing.T) {
	s := newLemonadeStand(t)
	s.AddMenuItem(NewMenuItem("cookie", decimal.RequireFromString("1.25"), decimal.RequireFromString("1")))
	require.NoError(t, s.RecordSalesForToday(map[string]int{"lemonade": 5, "cookie": 4}))
	require.NoError(t, s.RecordSalesForToday(map[string]int{"lemonade": 3}))

	cases := []struct {
		item string
		want string
	}{
		{item: "lemonade", want: "8"},
		{item: "cookie", want: "-1"},
		{item: "nori", want: "0"},
	}
	for _, tc := range cases {
		t.Run(tc.item, func(t *testing.T) {
			assert.True(t, s.TotalProfitFor(tc.item).Equal(decimal.RequireFromString(tc.want)),
				"got %s", s.TotalProfitFor(tc.item))
		})
	}
	assert.True(t, s.TotalProfit().Equal(decimal.NewFromInt(7)), "got %s", s.TotalProfit())
}

func TestStand_TotalProfitUsesCurrentPrice(t *testing.T) {
	s := newLemonadeStand(t)
	require.NoError(t, s.RecordSalesForToday(map[string]int{"lemonade": 2}))
	s.AddMenuItem(NewMenuItem("lemonade", decimal.RequireFromString("1"), decimal.RequireFromString("4")))

	assert.True(t, s.TotalProfitFor("lemonade").Equal(decimal.NewFromInt(6)))
}

func TestStand_Scenario(t *testing.T) {
	s := newLemonadeStand(t)
	require.NoError(t, s.RecordSalesForToday(map[string]int{"lemonade": 5}))
	require.NoError(t, s.RecordSalesForToday(map[string]int{"lemonade": 3}))

	units, err := s.UnitsSoldFor(0, "lemonade")
	require.NoError(t, err)
	assert.Equal(t, 5, units)
	assert.Equal(t, 8, s.TotalUnitsSold("lemonade"))
	assert.True(t, s.TotalProfitFor("lemonade").Equal(decimal.RequireFromString("8.0")))

	err = s.RecordSalesForToday(map[string]int{"cookie": 2})
	assert.True(t, errors.Is(err, ErrInvalidSalesItem))
	assert.Len(t, s.History(), 2)
}
