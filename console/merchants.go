package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode040401 = e.Code0404 + "01"
	ECode040402 = e.Code0404 + "02"
	ECode040403 = e.Code0404 + "03"
	ECode040404 = e.Code0404 + "04"
	ECode040405 = e.Code0404 + "05"
	ECode040406 = e.Code0404 + "06"
	ECode040407 = e.Code0404 + "07"
	ECode040408 = e.Code0404 + "08"
)

// Merchant statuses as reported by the backend
const (
	MerchantStatusPending  = "pending"
	MerchantStatusApproved = "approved"
	MerchantStatusRejected = "rejected"
)

// Merchant is a store owner on the platform
type Merchant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
	Blocked    bool   `json:"blocked"`
	GeofenceID string `json:"geofenceId"`
}

// FetchAllMerchants fetches every merchant
func (c *Client) FetchAllMerchants(ctx context.Context) (list []Merchant, err error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/merchants", "", nil,
		http.StatusOK, ECode040401, e.MsgMerchantsFetchFailed)
	if err != nil {
		return nil, err
	}

	list = []Merchant{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, e.WM(err, ECode040402, e.MsgMerchantsFetchFailed)
		}
	}

	return list, nil
}

// FetchMerchant fetches one merchant by id
func (c *Client) FetchMerchant(ctx context.Context, merchantID string) (m *Merchant, err error) {
	path := fmt.Sprintf("/admin/merchants/%s", url.PathEscape(merchantID))

	data, err := c.call(ctx, http.MethodGet, path, "", nil,
		http.StatusOK, ECode040403, e.MsgMerchantFetchFailed)
	if err != nil {
		return nil, err
	}

	m = &Merchant{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, e.WM(err, ECode040404, e.MsgMerchantFetchFailed)
	}

	return m, nil
}

// ApproveMerchant approves a pending merchant application
func (c *Client) ApproveMerchant(ctx context.Context, merchantID string) (err error) {
	path := fmt.Sprintf("/admin/merchants/approve/%s", url.PathEscape(merchantID))

	if _, err := c.call(ctx, http.MethodPut, path, "", nil,
		http.StatusOK, ECode040405, e.MsgMerchantApproveFailed); err != nil {
		return err
	}

	return nil
}

// RejectMerchant rejects a pending merchant application
func (c *Client) RejectMerchant(ctx context.Context, merchantID string) (err error) {
	path := fmt.Sprintf("/admin/merchants/reject/%s", url.PathEscape(merchantID))

	if _, err := c.call(ctx, http.MethodPut, path, "", nil,
		http.StatusOK, ECode040406, e.MsgMerchantRejectFailed); err != nil {
		return err
	}

	return nil
}

// DeleteMerchant removes the merchant. The caller is responsible for
// navigating away from the merchant's detail view afterwards; see
// confirm.Dialog.Navigate
func (c *Client) DeleteMerchant(ctx context.Context, merchantID string) (err error) {
	path := fmt.Sprintf("/admin/merchants/%s", url.PathEscape(merchantID))

	if _, err := c.call(ctx, http.MethodDelete, path, "", nil,
		http.StatusOK, ECode040407, e.MsgMerchantDeleteFailed); err != nil {
		return err
	}

	return nil
}

// SetMerchantBlocked blocks or unblocks the merchant
func (c *Client) SetMerchantBlocked(ctx context.Context, merchantID string, blocked bool) (err error) {
	path := fmt.Sprintf("/admin/merchants/block/%s", url.PathEscape(merchantID))
	body := map[string]bool{
		"blocked": blocked,
	}

	if _, err := c.call(ctx, http.MethodPut, path, "", body,
		http.StatusOK, ECode040408, e.MsgMerchantBlockFailed); err != nil {
		return err
	}

	return nil
}
