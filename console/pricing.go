package console

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode040601 = e.Code0406 + "01"
	ECode040602 = e.Code0406 + "02"
	ECode040603 = e.Code0406 + "03"
)

// Pricing is the platform wide delivery pricing and commission
// configuration. Amounts are decimals; float binary representation is not
// acceptable for money
type Pricing struct {
	BaseFare          decimal.Decimal `json:"baseFare"`
	PerKilometerFare  decimal.Decimal `json:"perKilometerFare"`
	MinimumOrderValue decimal.Decimal `json:"minimumOrderValue"`
	CommissionPercent decimal.Decimal `json:"commissionPercent"`
}

// FetchPricing fetches the current pricing configuration
func (c *Client) FetchPricing(ctx context.Context) (p *Pricing, err error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/pricing", "", nil,
		http.StatusOK, ECode040601, e.MsgPricingFetchFailed)
	if err != nil {
		return nil, err
	}

	p = &Pricing{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, p); err != nil {
			return nil, e.WM(err, ECode040602, e.MsgPricingFetchFailed)
		}
	}

	return p, nil
}

// UpdatePricing replaces the pricing configuration
func (c *Client) UpdatePricing(ctx context.Context, p Pricing) (err error) {
	if _, err := c.call(ctx, http.MethodPut, "/admin/pricing", "", p,
		http.StatusOK, ECode040603, e.MsgPricingUpdateFailed); err != nil {
		return err
	}

	return nil
}
