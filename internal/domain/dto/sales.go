package dto

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/guttosm/lemonstand/internal/domain/models"
)

// SalesRequest is the body of POST /api/v1/sales: units sold today per menu item.
type SalesRequest struct {
	Quantities map[string]int `json:"quantities"`
}

// Validate rejects negative counts and blank item names. An empty map records
// a day without sales.
func (r *SalesRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Quantities, validation.By(validQuantities)),
	)
}

func validQuantities(value interface{}) error {
	q, _ := value.(map[string]int)
	var bad []string
	for name, n := range q {
		if strings.TrimSpace(name) == "" {
			return errors.New("item names must not be blank")
		}
		if n < 0 {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return fmt.Errorf("negative quantity for %s", strings.Join(bad, ", "))
	}
	return nil
}

// RecordSalesResponse reports the day index assigned to the recorded sales.
type RecordSalesResponse struct {
	Day int `json:"day" example:"0"`
}

// DailySalesResponse is one day of history.
type DailySalesResponse struct {
	Day        int            `json:"day" example:"0"`
	Quantities map[string]int `json:"quantities"`
}

// NewHistoryResponse maps recorded days in order.
func NewHistoryResponse(history []models.DailySales) []DailySalesResponse {
	out := make([]DailySalesResponse, 0, len(history))
	for _, d := range history {
		out = append(out, DailySalesResponse{Day: d.Day(), Quantities: d.Quantities()})
	}
	return out
}

// UnitsResponse answers unit-count queries. Day is set only for single-day queries.
type UnitsResponse struct {
	Item  string `json:"item" example:"lemonade"`
	Day   *int   `json:"day,omitempty" example:"0"`
	Units int    `json:"units" example:"5"`
}

// ProfitResponse answers profit queries. Item is empty for the whole-menu total.
type ProfitResponse struct {
	Item   string          `json:"item,omitempty" example:"lemonade"`
	Profit decimal.Decimal `json:"profit" swaggertype:"string" example:"8"`
}

// StandResponse summarizes the stand.
type StandResponse struct {
	Name        string             `json:"name" example:"Lemons R Us"`
	Days        int                `json:"days" example:"2"`
	Menu        []MenuItemResponse `json:"menu"`
	TotalProfit decimal.Decimal    `json:"total_profit" swaggertype:"string" example:"8"`
}
