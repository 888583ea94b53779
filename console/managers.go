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
	ECode040301 = e.Code0403 + "01"
	ECode040302 = e.Code0403 + "02"
	ECode040303 = e.Code0403 + "03"
	ECode040304 = e.Code0403 + "04"
)

// Manager is an administrative user below the admin role
type Manager struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// FetchAllManagers fetches every manager account
func (c *Client) FetchAllManagers(ctx context.Context) (list []Manager, err error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/managers", "", nil,
		http.StatusOK, ECode040301, e.MsgManagersFetchFailed)
	if err != nil {
		return nil, err
	}

	list = []Manager{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, e.WM(err, ECode040302, e.MsgManagersFetchFailed)
		}
	}

	return list, nil
}

// DeleteManager removes the manager account
func (c *Client) DeleteManager(ctx context.Context, managerID string) (err error) {
	path := fmt.Sprintf("/admin/managers/%s", url.PathEscape(managerID))

	if _, err := c.call(ctx, http.MethodDelete, path, "", nil,
		http.StatusOK, ECode040303, e.MsgManagerDeleteFailed); err != nil {
		return err
	}

	return nil
}

// UpdateManagerRole changes the role of the manager account
func (c *Client) UpdateManagerRole(ctx context.Context, managerID, role string) (err error) {
	path := fmt.Sprintf("/admin/managers/role/%s", url.PathEscape(managerID))
	body := map[string]string{
		"role": role,
	}

	if _, err := c.call(ctx, http.MethodPut, path, "", body,
		http.StatusOK, ECode040304, e.MsgManagerRoleUpdateFailed); err != nil {
		return err
	}

	return nil
}
