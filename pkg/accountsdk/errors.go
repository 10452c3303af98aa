package accountsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []FieldError
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("accounts: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("accounts: HTTP %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse turns an error body into an *APIError. It understands
// the plain {message} envelope and both validation shapes.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope struct {
		Message  string       `json:"message"`
		Messages []FieldError `json:"messages"`
		Errors   []FieldError `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	apiErr.Message = envelope.Message
	apiErr.Fields = append(envelope.Messages, envelope.Errors...)
	if apiErr.Message == "" && len(apiErr.Fields) > 0 {
		apiErr.Message = apiErr.Fields[0].Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
