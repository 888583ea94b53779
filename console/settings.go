package console

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode040901 = e.Code0409 + "01"
	ECode040902 = e.Code0409 + "02"
	ECode040903 = e.Code0409 + "03"
	ECode040904 = e.Code0409 + "04"
)

// Settings is the platform wide configuration surface
type Settings struct {
	Currency          string `json:"currency"`
	CurrencySymbol    string `json:"currencySymbol"`
	Timezone          string `json:"timezone"`
	OrderAutoAccept   bool   `json:"orderAutoAccept"`
	MaintenanceMode   bool   `json:"maintenanceMode"`
	SupportEmail      string `json:"supportEmail"`
	SupportPhone      string `json:"supportPhone"`
	DeliveryRadiusKM  int    `json:"deliveryRadiusKm"`
	SoundNotification bool   `json:"soundNotification"`
}

// FetchSettings fetches the platform settings
func (c *Client) FetchSettings(ctx context.Context) (s *Settings, err error) {
	data, err := c.call(ctx, http.MethodGet, "/settings", "", nil,
		http.StatusOK, ECode040901, e.MsgSettingsFetchFailed)
	if err != nil {
		return nil, err
	}

	s = &Settings{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, s); err != nil {
			return nil, e.WM(err, ECode040902, e.MsgSettingsFetchFailed)
		}
	}

	return s, nil
}

// UpdateSettings replaces the platform settings
func (c *Client) UpdateSettings(ctx context.Context, s Settings) (err error) {
	if _, err := c.call(ctx, http.MethodPut, "/settings", "", s,
		http.StatusOK, ECode040903, e.MsgSettingsUpdateFailed); err != nil {
		return err
	}

	return nil
}

// PatchSettings updates only the passed settings fields
func (c *Client) PatchSettings(ctx context.Context, fields map[string]interface{}) (err error) {
	if _, err := c.call(ctx, http.MethodPatch, "/settings", "", fields,
		http.StatusOK, ECode040904, e.MsgSettingsUpdateFailed); err != nil {
		return err
	}

	return nil
}
