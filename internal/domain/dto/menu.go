package dto

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/guttosm/lemonstand/internal/domain/models"
)

var errNegativeCost = errors.New("must not be negative")

// MenuItemRequest is the body of POST /api/v1/menu.
type MenuItemRequest struct {
	Name          string          `json:"name" example:"lemonade"`
	WholesaleCost decimal.Decimal `json:"wholesale_cost" swaggertype:"string" example:"0.5"`
	SellingPrice  decimal.Decimal `json:"selling_price" swaggertype:"string" example:"1.5"`
}

// Validate checks the request before it reaches the stand. Any non-blank name
// is accepted, and the selling price may be below the wholesale cost.
func (r *MenuItemRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.WholesaleCost, validation.By(nonNegative)),
	)
}

// ToModel converts the request into a domain MenuItem.
func (r MenuItemRequest) ToModel() models.MenuItem {
	return models.NewMenuItem(r.Name, r.WholesaleCost, r.SellingPrice)
}

// MenuItemResponse is a menu entry as returned by the API.
type MenuItemResponse struct {
	Name          string          `json:"name" example:"lemonade"`
	WholesaleCost decimal.Decimal `json:"wholesale_cost" swaggertype:"string" example:"0.5"`
	SellingPrice  decimal.Decimal `json:"selling_price" swaggertype:"string" example:"1.5"`
	Margin        decimal.Decimal `json:"margin" swaggertype:"string" example:"1"`
}

// NewMenuItemResponse maps a domain item to its response shape.
func NewMenuItemResponse(item models.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		Name:          item.Name(),
		WholesaleCost: item.WholesaleCost(),
		SellingPrice:  item.SellingPrice(),
		Margin:        item.Margin(),
	}
}

// NewMenuResponse maps the whole menu, keeping its order.
func NewMenuResponse(items []models.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewMenuItemResponse(item))
	}
	return out
}

func nonNegative(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if d.IsNegative() {
		return errNegativeCost
	}
	return nil
}
