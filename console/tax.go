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
	ECode040701 = e.Code0407 + "01"
	ECode040702 = e.Code0407 + "02"
	ECode040703 = e.Code0407 + "03"
	ECode040704 = e.Code0407 + "04"
	ECode040705 = e.Code0407 + "05"
)

// Tax is one tax rule applied at checkout
type Tax struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Percent decimal.Decimal `json:"percent"`
	Active  bool            `json:"active"`
}

// FetchTaxes fetches every tax rule
func (c *Client) FetchTaxes(ctx context.Context) (list []Tax, err error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/taxes", "", nil,
		http.StatusOK, ECode040701, e.MsgTaxesFetchFailed)
	if err != nil {
		return nil, err
	}

	list = []Tax{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, e.WM(err, ECode040702, e.MsgTaxesFetchFailed)
		}
	}

	return list, nil
}

// CreateTax adds a tax rule
func (c *Client) CreateTax(ctx context.Context, t Tax) (err error) {
	if _, err := c.call(ctx, http.MethodPost, "/admin/taxes", "", t,
		http.StatusCreated, ECode040703, e.MsgTaxCreateFailed); err != nil {
		return err
	}

	return nil
}

// UpdateTax replaces a tax rule
func (c *Client) UpdateTax(ctx context.Context, t Tax) (err error) {
	path := fmt.Sprintf("/admin/taxes/%s", url.PathEscape(t.ID))

	if _, err := c.call(ctx, http.MethodPut, path, "", t,
		http.StatusOK, ECode040704, e.MsgTaxUpdateFailed); err != nil {
		return err
	}

	return nil
}

// DeleteTax removes a tax rule
func (c *Client) DeleteTax(ctx context.Context, taxID string) (err error) {
	path := fmt.Sprintf("/admin/taxes/%s", url.PathEscape(taxID))

	if _, err := c.call(ctx, http.MethodDelete, path, "", nil,
		http.StatusOK, ECode040705, e.MsgTaxDeleteFailed); err != nil {
		return err
	}

	return nil
}
