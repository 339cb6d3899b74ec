package memetree

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transport executes one wire call and reports the raw outcome. A non-nil
// error means the call produced no interpretable server response at all;
// every received response, whatever its status, comes back as (status, body).
type Transport interface {
	Do(method, path string, params url.Values) (status int, body []byte, err error)
}

// HTTPTransport is the default Transport. Parameters travel in the query
// string for GET and DELETE and as a form-encoded body for everything else;
// response bodies are JSON. Each request carries a fresh X-Request-ID.
type HTTPTransport struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPTransport returns a transport for the service at baseURL with a
// default 10 second timeout.
func NewHTTPTransport(baseURL string) *HTTPTransport {
	return &HTTPTransport{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *HTTPTransport) Do(method, path string, params url.Values) (int, []byte, error) {
	var req *http.Request
	var err error
	switch method {
	case http.MethodGet, http.MethodDelete:
		u := t.BaseURL + path
		if len(params) > 0 {
			u += "?" + params.Encode()
		}
		req, err = http.NewRequest(method, u, nil)
	default:
		req, err = http.NewRequest(method, t.BaseURL+path, strings.NewReader(params.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := t.Client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
