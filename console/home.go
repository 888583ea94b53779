package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode040D01 = e.Code040D + "01"
	ECode040D02 = e.Code040D + "02"
	ECode040D03 = e.Code040D + "03"
	ECode040D04 = e.Code040D + "04"
)

// SaleSummary is the home screen sales rollup for a date range
type SaleSummary struct {
	TotalOrders      int             `json:"totalOrders"`
	TotalSales       decimal.Decimal `json:"totalSales"`
	TotalCommission  decimal.Decimal `json:"totalCommission"`
	TotalDeliveryFee decimal.Decimal `json:"totalDeliveryFee"`
}

func saleRangeQuery(start, end time.Time) string {
	q := url.Values{}
	q.Set("startDate", start.Format("2006-01-02"))
	q.Set("endDate", end.Format("2006-01-02"))
	return q.Encode()
}

// SaleData fetches the platform wide sales rollup. Admin and manager only
func (c *Client) SaleData(ctx context.Context, start, end time.Time) (s *SaleSummary, err error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/home/home-screen-sale-data",
		saleRangeQuery(start, end), nil,
		http.StatusOK, ECode040D01, e.MsgSaleDataFetchFailed)
	if err != nil {
		return nil, err
	}

	s = &SaleSummary{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, s); err != nil {
			return nil, e.WM(err, ECode040D02, e.MsgSaleDataFetchFailed)
		}
	}

	return s, nil
}

// MerchantSaleData fetches the sales rollup scoped to the signed in
// merchant
func (c *Client) MerchantSaleData(ctx context.Context, start, end time.Time) (s *SaleSummary, err error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/home/home-screen-sale-data-merchant",
		saleRangeQuery(start, end), nil,
		http.StatusOK, ECode040D03, e.MsgSaleDataFetchFailed)
	if err != nil {
		return nil, err
	}

	s = &SaleSummary{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, s); err != nil {
			return nil, e.WM(err, ECode040D04, e.MsgSaleDataFetchFailed)
		}
	}

	return s, nil
}
