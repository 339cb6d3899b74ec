package memetree

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/memetree/memetree.go/pkg/memes"
)

// request accumulates one outbound call: verb, escaped path, and named
// parameters. Terminal methods execute it and decode the response in one of
// four shapes (single entity, typed list, polymorphic node list, void).
type request struct {
	c      *Client
	op     string
	method string
	path   string
	params url.Values
}

func (c *Client) newRequest(op, method string, parts ...string) *request {
	var b strings.Builder
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	return &request{c: c, op: op, method: method, path: b.String(), params: url.Values{}}
}

func (r *request) set(key, value string) *request {
	r.params.Set(key, value)
	return r
}

// optional skips blank values entirely so the server sees the field as
// omitted rather than cleared; the two have different server-side effects.
// Use set with an empty value to clear a field explicitly.
func (r *request) optional(key, value string) *request {
	if value != "" {
		r.params.Set(key, value)
	}
	return r
}

// run executes the call, attaching the session credential when present, and
// routes every non-2xx outcome through the error translator. kind names the
// entity shape a conflict's duplicate payload would carry; "" disables
// duplicate decoding.
func (r *request) run(kind memes.Kind) ([]byte, error) {
	if s := r.c.Session(); s != "" {
		r.params.Set("auth", s)
	}
	r.c.logger.Debug().Str("op", r.op).Str("method", r.method).Str("path", r.path).Msg("issuing request")
	status, body, err := r.c.transport.Do(r.method, r.path, r.params)
	if err != nil {
		return nil, &TransportError{Op: r.op, Err: err}
	}
	if status < 200 || status >= 300 {
		return nil, translate(r.op, status, body, kind)
	}
	return body, nil
}

// single executes r and decodes the body as one entity of a statically
// known kind.
func single[T any](r *request, kind memes.Kind, decode func(memes.Raw) (T, error)) (T, error) {
	var zero T
	body, err := r.run(kind)
	if err != nil {
		return zero, err
	}
	var raw memes.Raw
	if err := json.Unmarshal(body, &raw); err != nil {
		return zero, &TransportError{Op: r.op, Message: "response body is not a record", Err: err}
	}
	return decode(raw)
}

// listOf executes r and decodes the body as an array of one statically
// known kind. Unlike the polymorphic path, a record that fails to decode
// fails the whole call.
func listOf[T any](r *request, kind memes.Kind, decode func(memes.Raw) (T, error)) ([]T, error) {
	body, err := r.run(kind)
	if err != nil {
		return nil, err
	}
	var raws []memes.Raw
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, &TransportError{Op: r.op, Message: "response body is not an array of records", Err: err}
	}
	out := make([]T, 0, len(raws))
	for _, rec := range raws {
		v, err := decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// nodes executes r and runs the discriminated decoder over the raw array,
// skipping records this client version cannot decode.
func (r *request) nodes() ([]memes.Node, error) {
	body, err := r.run("")
	if err != nil {
		return nil, err
	}
	var raws []memes.Raw
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, &TransportError{Op: r.op, Message: "response body is not an array of records", Err: err}
	}
	return memes.DecodeNodes(raws, r.c.logger), nil
}

// void executes r and discards the body.
func (r *request) void() error {
	_, err := r.run("")
	return err
}

// text executes r and returns the body as a trimmed string; used by the
// slugify and uuid utility endpoints.
func (r *request) text() (string, error) {
	body, err := r.run("")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}
