package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode040201 = e.Code0402 + "01"
	ECode040202 = e.Code0402 + "02"
	ECode040203 = e.Code0402 + "03"
	ECode040204 = e.Code0402 + "04"
)

// AccountLogEntry is one row of the account activity log
type AccountLogEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"createdAt"`
}

// AccountLogFilter narrows the account log query. Zero values are omitted
type AccountLogFilter struct {
	Role  string
	Date  *time.Time
	Query string
}

func (f AccountLogFilter) encode() string {
	q := url.Values{}
	if f.Role != "" {
		q.Set("role", f.Role)
	}
	if f.Date != nil {
		q.Set("date", f.Date.Format("2006-01-02"))
	}
	if f.Query != "" {
		q.Set("query", f.Query)
	}
	return q.Encode()
}

// FilterAccountLogs fetches the account log rows matching the filter
func (c *Client) FilterAccountLogs(ctx context.Context, f AccountLogFilter) (list []AccountLogEntry, err error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/account-log/filter", f.encode(),
		nil, http.StatusOK, ECode040201, e.MsgAccountLogsFetchFailed)
	if err != nil {
		return nil, err
	}

	list = []AccountLogEntry{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, e.WM(err, ECode040202, e.MsgAccountLogsFetchFailed)
		}
	}

	return list, nil
}

// UnblockUser lifts the block on the specified user
func (c *Client) UnblockUser(ctx context.Context, userID string) (err error) {
	path := fmt.Sprintf("/admin/account-log/unblock-user/%s", url.PathEscape(userID))

	if _, err := c.call(ctx, http.MethodPut, path, "", nil,
		http.StatusOK, ECode040203, e.MsgUnblockUserFailed); err != nil {
		return err
	}

	return nil
}

// AccountLogCSV downloads the account log export. The response is the raw
// CSV blob, not the usual envelope
func (c *Client) AccountLogCSV(ctx context.Context) (blob []byte, err error) {
	blob, err = c.raw(ctx, http.MethodGet, "/admin/account-log/csv", "",
		http.StatusOK, ECode040204, e.MsgAccountLogExportFailed)
	if err != nil {
		return nil, err
	}

	return blob, nil
}
