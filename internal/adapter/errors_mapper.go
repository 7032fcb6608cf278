package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/channel-console/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp.StatusCode(), resp.Body()),
		sentinel:   statusSentinel(resp.StatusCode()),
	}
}

func statusSentinel(status int) error {
	switch status {
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
		return ErrValidation
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

// errorMessage normalizes an error body:
//   - {"detail": "text"} gives the text;
//   - {"detail": [{loc, msg, type}, ...]} gives "loc.joined: msg" pairs
//     joined by ", ";
//   - a JSON string gives the string;
//   - any other JSON gives its compact text;
//   - a body that is not JSON gives "HTTP error! status: N".
func errorMessage(status int, body []byte) string {
	fallback := fmt.Sprintf("HTTP error! status: %d", status)

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return fallback
	}

	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		return text
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Detail) > 0 && string(envelope.Detail) != "null" {
		if err = json.Unmarshal(envelope.Detail, &text); err == nil {
			return text
		}

		var details []models.ValidationError
		dec := json.NewDecoder(bytes.NewReader(envelope.Detail))
		dec.UseNumber()
		if err = dec.Decode(&details); err == nil && len(details) > 0 {
			return joinValidationErrors(details)
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return fallback
	}
	return compact.String()
}

func joinValidationErrors(details []models.ValidationError) string {
	parts := make([]string, 0, len(details))
	for _, d := range details {
		loc := make([]string, 0, len(d.Loc))
		for _, l := range d.Loc {
			loc = append(loc, fmt.Sprint(l))
		}
		parts = append(parts, strings.Join(loc, ".")+": "+d.Msg)
	}
	return strings.Join(parts, ", ")
}
