package e

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// ExtendedError is our custom error
type ExtendedError struct {
	InnerError error
	Message    string
	original   error
	hasUserMsg bool
}

// Error returns the string of the inner error
func (e *ExtendedError) Error() string {
	return fmt.Sprintf("%+v", e.InnerError)
}

// IsError checks if the originating error is the specified target
func (e *ExtendedError) IsError(tgt error) bool {
	return errors.Is(e.original, tgt)
}

// AsError calls errors.As on the original error with the specified target error.
// If it is the target error, it will set the target as the original error value
// and return true, otherwise it returns false
func (e *ExtendedError) AsError(tgt interface{}) bool {
	return errors.As(e.original, tgt)
}

// N creates a new error with the specified code and sets the user facing
// message to the passed message
func N(code, msg string) (err error) {
	ee := W(nil, code, msg)
	ee.Message = msg
	ee.hasUserMsg = true
	return ee
}

// NewStr creates a new error string based on the code and messages
func NewStr(code string, msgList ...string) (s string) {
	if len(msgList) == 0 {
		return code
	}
	return fmt.Sprintf("%s: %s", code, strings.Join(msgList, "|"))
}

// AsExtendedError helper function that returns the error as an ExtendedError
// if it is one. Otherwise it returns nil
func AsExtendedError(err error) (ee *ExtendedError) {
	if errors.As(err, &ee) {
		return ee
	}
	return nil
}

// ContainsError checks if the error contains the specified error message
func ContainsError(err error, msg string) bool {
	return strings.Contains(err.Error(), msg)
}

// Contains checks if the error contains the code
func Contains(code string, err error) bool {
	return ContainsError(err, code)
}

// WM calls W, then sets the extended error's user facing message to
// the passed message. If the error already carries a user facing message,
// that message is preserved (the first message set wins, because it was
// assigned closest to the failure)
func WM(err error, code, msg string, debugMessages ...string) error {
	ee := W(err, code, debugMessages...)
	if !ee.hasUserMsg {
		ee.Message = msg
		ee.hasUserMsg = true
	}
	return ee
}

// W checks if the passed error has been wrapped before by this func
// and either wraps the original error as an ExtendedError or adds the
// debug message to the already existing ExtendedError's InnerError.
// This function always returns an extended error
func W(err error, code string, debugMessages ...string) (ee *ExtendedError) {
	msg := NewStr(code, debugMessages...)

	// If the error is already an extended error, then just update the
	// inner error
	if ee = AsExtendedError(err); ee != nil {
		ee.InnerError = fmt.Errorf("[%s]%+v", msg, ee)
		return ee
	}

	ee = &ExtendedError{
		original: err,
	}

	if err == nil {
		ee.InnerError = pkgerrors.New(msg)
	} else {
		ee.InnerError = fmt.Errorf("[%s]%+v", msg, pkgerrors.Wrap(err, ""))
	}
	ee.Message = MsgUnknownInternalServerError

	return ee
}

// UserMessage returns the user facing message of the error. If the error is
// not an ExtendedError or no message was set, it returns the unknown
// internal server error message. The returned string is safe to surface
// directly in a notification
func UserMessage(err error) string {
	if ee := AsExtendedError(err); ee != nil && ee.Message != "" {
		return ee.Message
	}
	return MsgUnknownInternalServerError
}
