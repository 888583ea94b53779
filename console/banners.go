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
	ECode040E01 = e.Code040E + "01"
	ECode040E02 = e.Code040E + "02"
	ECode040E03 = e.Code040E + "03"
	ECode040E04 = e.Code040E + "04"
)

// Banner is a promotional banner shown in the customer app
type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	Active   bool   `json:"active"`
}

// FetchBanners fetches every banner
func (c *Client) FetchBanners(ctx context.Context) (list []Banner, err error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/banners", "", nil,
		http.StatusOK, ECode040E01, e.MsgBannersFetchFailed)
	if err != nil {
		return nil, err
	}

	list = []Banner{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, e.WM(err, ECode040E02, e.MsgBannersFetchFailed)
		}
	}

	return list, nil
}

// CreateBanner adds a banner
func (c *Client) CreateBanner(ctx context.Context, b Banner) (err error) {
	if _, err := c.call(ctx, http.MethodPost, "/admin/banners", "", b,
		http.StatusCreated, ECode040E03, e.MsgBannerCreateFailed); err != nil {
		return err
	}

	return nil
}

// DeleteBanner removes a banner
func (c *Client) DeleteBanner(ctx context.Context, bannerID string) (err error) {
	path := fmt.Sprintf("/admin/banners/%s", url.PathEscape(bannerID))

	if _, err := c.call(ctx, http.MethodDelete, path, "", nil,
		http.StatusOK, ECode040E04, e.MsgBannerDeleteFailed); err != nil {
		return err
	}

	return nil
}
