package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode040B01 = e.Code040B + "01"
	ECode040B02 = e.Code040B + "02"
	ECode040B03 = e.Code040B + "03"
	ECode040B04 = e.Code040B + "04"
)

// App identifies one of the platform's mobile apps
type App string

const (
	AgentApp    App = "agent-app"
	CustomerApp App = "customer-app"
	MerchantApp App = "merchant-app"
)

func (a App) valid() bool {
	switch a {
	case AgentApp, CustomerApp, MerchantApp:
		return true
	}
	return false
}

// Customization holds the feature toggles and branding of one app
type Customization struct {
	SplashText     string          `json:"splashText"`
	PrimaryColor   string          `json:"primaryColor"`
	SecondaryColor string          `json:"secondaryColor"`
	Toggles        map[string]bool `json:"toggles"`
}

// GetAppCustomization fetches the customization of the given app
func (c *Client) GetAppCustomization(ctx context.Context, app App) (cu *Customization, err error) {
	if !app.valid() {
		return nil, e.N(ECode040B01, e.MsgCustomizationFetchFailed)
	}

	path := fmt.Sprintf("/admin/app-customization/%s", app)

	data, err := c.call(ctx, http.MethodGet, path, "", nil,
		http.StatusOK, ECode040B02, e.MsgCustomizationFetchFailed)
	if err != nil {
		return nil, err
	}

	cu = &Customization{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, cu); err != nil {
			return nil, e.WM(err, ECode040B03, e.MsgCustomizationFetchFailed)
		}
	}

	return cu, nil
}

// UpdateAppCustomization replaces the customization of the given app.
// The backend exposes this as a POST but it is an upsert of existing
// configuration, so 200 is the expected status
func (c *Client) UpdateAppCustomization(ctx context.Context, app App, cu Customization) (err error) {
	if !app.valid() {
		return e.N(ECode040B01, e.MsgCustomizationUpdateFailed)
	}

	path := fmt.Sprintf("/admin/app-customization/%s", app)

	if _, err := c.call(ctx, http.MethodPost, path, "", cu,
		http.StatusOK, ECode040B04, e.MsgCustomizationUpdateFailed); err != nil {
		return err
	}

	return nil
}
