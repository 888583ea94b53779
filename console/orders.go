package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode040501 = e.Code0405 + "01"
	ECode040502 = e.Code0405 + "02"
	ECode040503 = e.Code0405 + "03"
	ECode040504 = e.Code0405 + "04"
)

// Order statuses as reported by the backend
const (
	OrderStatusPending   = "pending"
	OrderStatusAccepted  = "accepted"
	OrderStatusRejected  = "rejected"
	OrderStatusDelivered = "delivered"
)

// Order is a customer order under moderation
type Order struct {
	ID         string          `json:"id"`
	MerchantID string          `json:"merchantId"`
	CustomerID string          `json:"customerId"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// OrderFilter narrows the order query. Zero values are omitted
type OrderFilter struct {
	MerchantID string
	GeofenceID string
	Status     string
	From       *time.Time
	To         *time.Time
}

func (f OrderFilter) encode() string {
	q := url.Values{}
	if f.MerchantID != "" {
		q.Set("merchantId", f.MerchantID)
	}
	if f.GeofenceID != "" {
		q.Set("geofenceId", f.GeofenceID)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.From != nil {
		q.Set("startDate", f.From.Format("2006-01-02"))
	}
	if f.To != nil {
		q.Set("endDate", f.To.Format("2006-01-02"))
	}
	return q.Encode()
}

// FetchOrders fetches the orders matching the filter
func (c *Client) FetchOrders(ctx context.Context, f OrderFilter) (list []Order, err error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/orders/filter", f.encode(), nil,
		http.StatusOK, ECode040501, e.MsgOrdersFetchFailed)
	if err != nil {
		return nil, err
	}

	list = []Order{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, e.WM(err, ECode040502, e.MsgOrdersFetchFailed)
		}
	}

	return list, nil
}

// AcceptOrder accepts a pending order
func (c *Client) AcceptOrder(ctx context.Context, orderID string) (err error) {
	path := fmt.Sprintf("/admin/orders/accept/%s", url.PathEscape(orderID))

	if _, err := c.call(ctx, http.MethodPut, path, "", nil,
		http.StatusOK, ECode040503, e.MsgOrderAcceptFailed); err != nil {
		return err
	}

	return nil
}

// RejectOrder rejects a pending order with a reason shown to the customer
func (c *Client) RejectOrder(ctx context.Context, orderID, reason string) (err error) {
	path := fmt.Sprintf("/admin/orders/reject/%s", url.PathEscape(orderID))
	body := map[string]string{
		"reason": reason,
	}

	if _, err := c.call(ctx, http.MethodPut, path, "", body,
		http.StatusOK, ECode040504, e.MsgOrderRejectFailed); err != nil {
		return err
	}

	return nil
}
