package resource

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// StatusError is returned by HTTPLoader when a metadata server responds with
// an unexpected HTTP status. It retains the status code so that callers can
// tell server-side failures apart from missing resources.
type StatusError struct {
	err    error
	status int
}

func NewStatusError(err error, status int) *StatusError {
	return &StatusError{
		err:    err,
		status: status,
	}
}

// FromResponse builds an error from an HTTP response status and body. The
// body, if any, becomes the error message.
func FromResponse(status int, body []byte) error {
	var err error
	text := strings.TrimSpace(string(body))
	if text != "" {
		err = errors.New(text)
	}
	if status == 0 {
		return err
	}
	return NewStatusError(err, status)
}

func (e *StatusError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	if e.status == 0 {
		return ""
	}
	if text := http.StatusText(e.status); text != "" {
		return fmt.Sprintf("%d %s", e.status, text)
	}
	return fmt.Sprintf("%d", e.status)
}

func (e *StatusError) Status() int {
	return e.status
}

func (e *StatusError) Unwrap() error {
	return e.err
}
