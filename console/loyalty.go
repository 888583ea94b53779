package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode040C01 = e.Code040C + "01"
	ECode040C02 = e.Code040C + "02"
	ECode040C03 = e.Code040C + "03"
	ECode040C04 = e.Code040C + "04"
)

// LoyaltyRule converts order value into loyalty points and back
type LoyaltyRule struct {
	ID              string          `json:"id"`
	EarnPerUnit     decimal.Decimal `json:"earnPerUnit"`
	RedeemUnitValue decimal.Decimal `json:"redeemUnitValue"`
	MinimumOrder    decimal.Decimal `json:"minimumOrder"`
	Enabled         bool            `json:"enabled"`
}

// FetchLoyaltyRules fetches the loyalty point configuration
func (c *Client) FetchLoyaltyRules(ctx context.Context) (list []LoyaltyRule, err error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/loyalty-point", "", nil,
		http.StatusOK, ECode040C01, e.MsgLoyaltyFetchFailed)
	if err != nil {
		return nil, err
	}

	list = []LoyaltyRule{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, e.WM(err, ECode040C02, e.MsgLoyaltyFetchFailed)
		}
	}

	return list, nil
}

// CreateLoyaltyRule adds a loyalty rule
func (c *Client) CreateLoyaltyRule(ctx context.Context, r LoyaltyRule) (err error) {
	if _, err := c.call(ctx, http.MethodPost, "/admin/loyalty-point", "", r,
		http.StatusCreated, ECode040C03, e.MsgLoyaltyCreateFailed); err != nil {
		return err
	}

	return nil
}

// PatchLoyaltyRule updates only the passed fields of a loyalty rule
func (c *Client) PatchLoyaltyRule(ctx context.Context, ruleID string, fields map[string]interface{}) (err error) {
	path := fmt.Sprintf("/admin/loyalty-point/%s", url.PathEscape(ruleID))

	if _, err := c.call(ctx, http.MethodPatch, path, "", fields,
		http.StatusOK, ECode040C04, e.MsgLoyaltyUpdateFailed); err != nil {
		return err
	}

	return nil
}
