package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds the response body copied into error messages.
const maxErrorBody = 512

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &NetworkError{
		Status:  resp.StatusCode(),
		Message: body,
		Err:     statusSentinel(resp.StatusCode(), resp.Header()),
	}
}

func statusSentinel(code int, header http.Header) error {
	switch {
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusForbidden:
		// GitHub reports primary rate limits as 403 with an exhausted quota
		if header.Get("X-RateLimit-Remaining") == "0" {
			return ErrRateLimited
		}
		return ErrForbidden
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code >= http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrUnexpected
	}
}

func transportError(step string, err error) error {
	return &NetworkError{
		Message: step,
		Err:     fmt.Errorf("%w: %w", ErrTransport, err),
	}
}
