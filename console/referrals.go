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
	ECode040801 = e.Code0408 + "01"
	ECode040802 = e.Code0408 + "02"
	ECode040803 = e.Code0408 + "03"
	ECode040804 = e.Code0408 + "04"
)

// Referral is a refer-a-friend reward configuration
type Referral struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	ReferrerReward decimal.Decimal `json:"referrerReward"`
	RefereeReward  decimal.Decimal `json:"refereeReward"`
	Active         bool            `json:"active"`
}

// FetchReferrals fetches every referral configuration
func (c *Client) FetchReferrals(ctx context.Context) (list []Referral, err error) {
	data, err := c.call(ctx, http.MethodGet, "/referrals", "", nil,
		http.StatusOK, ECode040801, e.MsgReferralsFetchFailed)
	if err != nil {
		return nil, err
	}

	list = []Referral{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, e.WM(err, ECode040802, e.MsgReferralsFetchFailed)
		}
	}

	return list, nil
}

// CreateReferral adds a referral configuration
func (c *Client) CreateReferral(ctx context.Context, r Referral) (err error) {
	if _, err := c.call(ctx, http.MethodPost, "/referrals", "", r,
		http.StatusCreated, ECode040803, e.MsgReferralCreateFailed); err != nil {
		return err
	}

	return nil
}

// UpdateReferral replaces a referral configuration
func (c *Client) UpdateReferral(ctx context.Context, r Referral) (err error) {
	path := fmt.Sprintf("/referrals/%s", url.PathEscape(r.ID))

	if _, err := c.call(ctx, http.MethodPut, path, "", r,
		http.StatusOK, ECode040804, e.MsgReferralUpdateFailed); err != nil {
		return err
	}

	return nil
}
