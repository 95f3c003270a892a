package models

import "github.com/shopspring/decimal"

// MenuItem is a product offered for sale at a stand.
//
// Fields:
//   - name: unique key of the item within a stand's menu (e.g., "lemonade").
//   - wholesaleCost: what the stand pays per unit.
//   - sellingPrice: what the customer pays per unit. It may be lower than the
//     wholesale cost; no relation between the two is enforced.
//
// A MenuItem is immutable once constructed.
type MenuItem struct {
	name          string
	wholesaleCost decimal.Decimal
	sellingPrice  decimal.Decimal
}

// NewMenuItem builds a MenuItem from its name, wholesale cost and selling price.
func NewMenuItem(name string, wholesaleCost, sellingPrice decimal.Decimal) MenuItem {
	return MenuItem{
		name:          name,
		wholesaleCost: wholesaleCost,
		sellingPrice:  sellingPrice,
	}
}

// Name returns the menu key of the item.
func (m MenuItem) Name() string { return m.name }

// WholesaleCost returns the per-unit cost paid by the stand.
func (m MenuItem) WholesaleCost() decimal.Decimal { return m.wholesaleCost }

// SellingPrice returns the per-unit price charged to customers.
func (m MenuItem) SellingPrice() decimal.Decimal { return m.sellingPrice }

// Margin is the profit made on a single unit. Negative when the item sells below cost.
func (m MenuItem) Margin() decimal.Decimal {
	return m.sellingPrice.Sub(m.wholesaleCost)
}
