package console

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ttacon/libphonenumber"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode040A01 = e.Code040A + "01"
	ECode040A02 = e.Code040A + "02"
	ECode040A03 = e.Code040A + "03"
	ECode040A04 = e.Code040A + "04"
)

// WhatsAppMessage is one message sent through the platform's WhatsApp
// integration
type WhatsAppMessage struct {
	ID     string    `json:"id"`
	To     string    `json:"to"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sentAt"`
}

// FetchWhatsAppMessages fetches the message history
func (c *Client) FetchWhatsAppMessages(ctx context.Context) (list []WhatsAppMessage, err error) {
	data, err := c.call(ctx, http.MethodGet, "/whatsapp/message", "", nil,
		http.StatusOK, ECode040A01, e.MsgWhatsAppFetchFailed)
	if err != nil {
		return nil, err
	}

	list = []WhatsAppMessage{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, e.WM(err, ECode040A02, e.MsgWhatsAppFetchFailed)
		}
	}

	return list, nil
}

// SendWhatsAppMessage sends a message to the recipient. The recipient must
// be a valid phone number in international format; validation happens
// before any network call
func (c *Client) SendWhatsAppMessage(ctx context.Context, to, body string) (err error) {
	num, err := libphonenumber.Parse(to, "")
	if err != nil {
		return e.WM(err, ECode040A03, e.MsgWhatsAppInvalidRecipient)
	}
	if !libphonenumber.IsValidNumber(num) {
		return e.N(ECode040A03, e.MsgWhatsAppInvalidRecipient)
	}

	payload := map[string]string{
		"to":   to,
		"body": body,
	}

	if _, err := c.call(ctx, http.MethodPost, "/whatsapp/message", "", payload,
		http.StatusCreated, ECode040A04, e.MsgWhatsAppSendFailed); err != nil {
		return err
	}

	return nil
}
