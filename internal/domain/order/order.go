// Package order holds the read-side order snapshot the gateway consumes.
// Order persistence itself belongs to the store; the gateway only reads the
// snapshot and owns the correlation stamp, the paid flag and the
// notification retry counter.
package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is a decimal amount in a major currency unit.
type Price struct {
	Number   decimal.Decimal `json:"number"`
	Currency string          `json:"currency"`
}

func NewPrice(number, currency string) (Price, error) {
	d, err := decimal.NewFromString(number)
	if err != nil {
		return Price{}, err
	}
	return Price{Number: d, Currency: currency}, nil
}

// AdjustmentType distinguishes taxes from discount-like adjustments.
type AdjustmentType string

const (
	AdjustmentTax       AdjustmentType = "tax"
	AdjustmentPromotion AdjustmentType = "promotion"
)

// Adjustment modifies an order or line total: a tax with a percentage, or a
// promotion/gift-card with a (usually negative) amount.
type Adjustment struct {
	Type       AdjustmentType   `json:"type"`
	Label      string           `json:"label,omitempty"`
	Amount     Price            `json:"amount"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

func (a Adjustment) IsTax() bool {
	return a.Type == AdjustmentTax
}

func (a Adjustment) IsNegative() bool {
	return a.Amount.Number.IsNegative()
}

// Item is one purchasable line of the order.
type Item struct {
	SKU         string       `json:"sku,omitempty"`
	Title       string       `json:"title"`
	Quantity    int64        `json:"quantity"`
	UnitPrice   Price        `json:"unit_price"`
	Adjustments []Adjustment `json:"adjustments,omitempty"`
}

// VatPercentage is the percentage of the first tax adjustment on the line,
// or 0 when the line carries no tax.
func (i Item) VatPercentage() int {
	for _, a := range i.Adjustments {
		if a.IsTax() && a.Percentage != nil {
			return int(a.Percentage.IntPart())
		}
	}
	return 0
}

// Order is the snapshot of a store order as the gateway sees it.
type Order struct {
	ID            string       `json:"id"`
	Total         Price        `json:"total"`
	Items         []Item       `json:"items"`
	Adjustments   []Adjustment `json:"adjustments,omitempty"`
	CustomerEmail string       `json:"customer_email"`

	// Stamp is the correlation token stored when the latest create-payment
	// request was built; callbacks must echo it back.
	Stamp string `json:"stamp,omitempty"`

	Paid        bool      `json:"paid"`
	NotifyTries int       `json:"notify_tries"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasOrderLevelDiscount reports whether the order carries any negative
// non-tax adjustment (a gift card or promotion applied to the whole order).
// The provider does not support order-level discounts, so the checkout
// builder may have to drop the items array for such orders.
func (o Order) HasOrderLevelDiscount() bool {
	for _, a := range o.Adjustments {
		if !a.IsTax() && a.IsNegative() {
			return true
		}
	}
	return false
}
