package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Ahcene43/WAW/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &HTTPError{
		StatusCode: resp.StatusCode(),
		Message:    hostMessage(resp.Body()),
		Err:        statusSentinel(resp.StatusCode()),
	}
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}

// hostMessage extracts the "message" field of a contents API error body.
// Bodies that are not JSON, such as a proxy's HTML error page or the raw
// host's plain text, yield "".
func hostMessage(body []byte) string {
	var apiErr models.APIErrorBody
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return ""
	}

	return strings.TrimSpace(apiErr.Message)
}
