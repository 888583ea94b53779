package console

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode040101 = e.Code0401 + "01"
	ECode040102 = e.Code0401 + "02"
	ECode040103 = e.Code0401 + "03"
	ECode040104 = e.Code0401 + "04"
)

// SignInResult is the payload of a successful sign in
type SignInResult struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// SignIn authenticates the user and returns the session payload
func (c *Client) SignIn(ctx context.Context, email, password string) (r *SignInResult, err error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	data, err := c.call(ctx, http.MethodPost, "/auth/sign-in", "", body,
		http.StatusOK, ECode040101, e.MsgSignInFailed)
	if err != nil {
		return nil, err
	}

	r = &SignInResult{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, e.WM(err, ECode040102, e.MsgSignInFailed)
	}

	return r, nil
}

// ForgotPassword requests a password reset mail for the account
func (c *Client) ForgotPassword(ctx context.Context, email string) (err error) {
	body := map[string]string{
		"email": email,
	}

	if _, err := c.call(ctx, http.MethodPost, "/auth/forgot-password", "", body,
		http.StatusOK, ECode040103, e.MsgForgotPasswordFailed); err != nil {
		return err
	}

	return nil
}

// ResetPassword sets a new password using the token from the reset mail
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) (err error) {
	body := map[string]string{
		"token":    resetToken,
		"password": newPassword,
	}

	if _, err := c.call(ctx, http.MethodPost, "/auth/reset-password", "", body,
		http.StatusOK, ECode040104, e.MsgResetPasswordFailed); err != nil {
		return err
	}

	return nil
}
