package atlas

import (
	"encoding/json"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// ErrorResponse is returned for any non-2xx answer from Atlas.
type ErrorResponse struct {
	Method     string `json:"-"`
	URL        string `json:"-"`
	StatusCode int    `json:"error"`
	ErrorCode  string `json:"errorCode"`
	Detail     string `json:"detail"`
	Reason     string `json:"reason"`
}

func (e *ErrorResponse) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Reason
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.ErrorCode != "" {
		return fmt.Sprintf("%s %s: %d (request %q) %s", e.Method, e.URL, e.StatusCode, e.ErrorCode, msg)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, msg)
}

// newErrorResponse decodes the Atlas error envelope. Bodies that are not JSON
// still produce an error carrying the HTTP status.
func newErrorResponse(resp *http.Response, body []byte) *ErrorResponse {
	e := &ErrorResponse{}
	_ = json.Unmarshal(body, e)
	e.StatusCode = resp.StatusCode
	if resp.Request != nil {
		e.Method = resp.Request.Method
		e.URL = resp.Request.URL.String()
	}
	if e.Detail == "" && e.Reason == "" && len(body) > 0 && !json.Valid(body) {
		e.Detail = truncate(string(body), 200)
	}
	return e
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
