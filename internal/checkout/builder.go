// Package checkout builds signed provider requests from order snapshots and
// drives the outbound payment operations: create, refund, legacy form and
// merchant-initiated token payments.
package checkout

import (
	"fmt"

	"github.com/google/uuid"

	"paytrailgw/internal/domain/order"
	"paytrailgw/internal/external/paytrail"
)

type BuilderConfig struct {
	// PublicBaseURL is where the provider sends the payer back and posts
	// webhooks.
	PublicBaseURL string
	Currency      string
	Language      string

	// RemoveItemsOnDiscount drops the items array for orders carrying an
	// order-level discount. The provider rejects requests whose line sum
	// disagrees with the total, so only the aggregate amount is sent.
	RemoveItemsOnDiscount bool

	LegacyMerchantID string
}

// Builder maps order snapshots onto provider request payloads.
type Builder struct {
	cfg BuilderConfig
}

func NewBuilder(cfg BuilderConfig) *Builder {
	return &Builder{cfg: cfg}
}

// BuildCreateRequest populates a create-payment request for the order. The
// returned stamp is freshly generated per attempt and must be persisted on
// the order before the request goes out, so the callback validator can
// detect replays of older attempts.
func (b *Builder) BuildCreateRequest(ord order.Order) (paytrail.CreatePaymentRequest, error) {
	amount, err := order.ToMinorUnits(ord.Total)
	if err != nil {
		return paytrail.CreatePaymentRequest{}, fmt.Errorf("order %s total: %w", ord.ID, err)
	}

	currency := ord.Total.Currency
	if currency == "" {
		currency = b.cfg.Currency
	}

	req := paytrail.CreatePaymentRequest{
		Stamp:        uuid.New().String(),
		Reference:    ord.ID,
		Amount:       amount,
		Currency:     currency,
		Language:     b.cfg.Language,
		Customer:     paytrail.Customer{Email: ord.CustomerEmail},
		RedirectURLs: b.urls("/payments/return", "/payments/cancel"),
		CallbackURLs: b.urls("/payments/notify", "/payments/notify"),
	}

	items, err := b.items(ord)
	if err != nil {
		return paytrail.CreatePaymentRequest{}, err
	}
	req.Items = items

	return req, nil
}

// items converts the order lines, or drops them entirely under the
// remove-items strategy. Without the strategy a discounted order is sent
// with items whose sum disagrees with the total and the provider may reject
// it; that mismatch is deliberately not reconciled client-side.
func (b *Builder) items(ord order.Order) ([]paytrail.Item, error) {
	if ord.HasOrderLevelDiscount() && b.cfg.RemoveItemsOnDiscount {
		return nil, nil
	}

	items := make([]paytrail.Item, 0, len(ord.Items))
	for _, line := range ord.Items {
		unitPrice, err := order.ToMinorUnits(line.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("order %s item %s: %w", ord.ID, line.Title, err)
		}
		items = append(items, paytrail.Item{
			UnitPrice:     unitPrice,
			Units:         line.Quantity,
			VatPercentage: line.VatPercentage(),
			ProductCode:   line.SKU,
		})
	}
	return items, nil
}

// BuildRefundRequest populates a refund of the given minor-unit amount with
// a refund-specific stamp.
func (b *Builder) BuildRefundRequest(ord order.Order, amount int64) paytrail.RefundRequest {
	return paytrail.RefundRequest{
		Amount:          amount,
		RefundStamp:     uuid.New().String(),
		RefundReference: ord.ID,
		CallbackURLs:    b.urls("/payments/notify", "/payments/notify"),
	}
}

// BuildLegacyForm populates the legacy E1 form submission. The legacy
// interface takes decimal amounts and supports EUR only.
func (b *Builder) BuildLegacyForm(ord order.Order) paytrail.LegacyForm {
	return paytrail.LegacyForm{
		MerchantID:    b.cfg.LegacyMerchantID,
		Amount:        ord.Total.Number.StringFixed(2),
		OrderNumber:   ord.ID,
		Currency:      paytrail.LegacyCurrency,
		ReturnAddress: b.cfg.PublicBaseURL + "/payments/legacy/notify",
		CancelAddress: b.cfg.PublicBaseURL + "/payments/cancel",
		NotifyAddress: b.cfg.PublicBaseURL + "/payments/legacy/notify",
		Type:          "S1",
		Culture:       "en_US",
	}
}

func (b *Builder) urls(successPath, cancelPath string) paytrail.URLPair {
	return paytrail.URLPair{
		Success: b.cfg.PublicBaseURL + successPath,
		Cancel:  b.cfg.PublicBaseURL + cancelPath,
	}
}
