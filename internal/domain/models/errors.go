package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSalesItem matches any *InvalidSalesItemError via errors.Is.
	ErrInvalidSalesItem = errors.New("sales reference items not on the menu")
	// ErrDayOutOfRange matches any *DayOutOfRangeError via errors.Is.
	ErrDayOutOfRange = errors.New("day out of range")
)

// InvalidSalesItemError is returned when a day's sales name items missing from the menu.
// Items is sorted so the message is stable.
type InvalidSalesItemError struct {
	Items []string
}

func (e *InvalidSalesItemError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidSalesItem.Error(), strings.Join(e.Items, ", "))
}

func (e *InvalidSalesItemError) Unwrap() error { return ErrInvalidSalesItem }

// DayOutOfRangeError is returned when a day index is not in [0, Days).
type DayOutOfRangeError struct {
	Day  int
	Days int
}

func (e *DayOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: day %d, %d day(s) recorded", ErrDayOutOfRange.Error(), e.Day, e.Days)
}

func (e *DayOutOfRangeError) Unwrap() error { return ErrDayOutOfRange }
