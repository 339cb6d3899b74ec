package memetree_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memetree "github.com/memetree/memetree.go"
	"github.com/memetree/memetree.go/pkg/memes"
)

// stubTransport answers every call with a canned outcome and records what
// it was asked to do.
type stubTransport struct {
	status int
	body   string
	err    error

	lastMethod string
	lastPath   string
	lastParams url.Values
}

func (t *stubTransport) Do(method, path string, params url.Values) (int, []byte, error) {
	t.lastMethod = method
	t.lastPath = path
	t.lastParams = clone(params)
	if t.err != nil {
		return 0, nil, t.err
	}
	return t.status, []byte(t.body), nil
}

func clone(params url.Values) url.Values {
	out := url.Values{}
	for k, vs := range params {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

func stubClient(t *stubTransport) *memetree.Client {
	return memetree.New("http://stub.invalid", memetree.WithTransport(t))
}

func TestNotFound(t *testing.T) {
	c := stubClient(&stubTransport{status: 404, body: `{"error":"no such category tacos"}`})
	_, err := c.Categories.Get("pkt", "tacos")
	require.Error(t, err)
	assert.True(t, memetree.IsNotFound(err))
	assert.False(t, memetree.IsConflict(err))
	assert.Equal(t, "no such category tacos", err.Error())
}

func TestConflictCarriesDuplicate(t *testing.T) {
	c := stubClient(&stubTransport{status: 409, body: `{
		"error": "category tacos already exists",
		"duplicate": {"definition":"category","opco":"pkt","slug":"tacos","name":"Tacos","version":"v1"}
	}`})
	_, err := c.Categories.Create("pkt", "Tacos", memetree.CreateOpts{})
	require.Error(t, err)
	require.True(t, memetree.IsConflict(err))

	dup, ok := memetree.Duplicate(err)
	require.True(t, ok, "the conflicting entity should have been recovered")
	assert.Equal(t, "category:pkt:tacos", dup.Key())
	assert.Equal(t, "v1", dup.VersionToken())
}

func TestConflictWithUndecodableDuplicate(t *testing.T) {
	c := stubClient(&stubTransport{status: 409, body: `{
		"error": "category tacos already exists",
		"duplicate": {"definition":"category","opco":"pkt"}
	}`})
	_, err := c.Categories.Create("pkt", "Tacos", memetree.CreateOpts{})
	require.True(t, memetree.IsConflict(err), "a bad duplicate payload must not mask the conflict")
	_, ok := memetree.Duplicate(err)
	assert.False(t, ok)
}

func TestStaleVersion(t *testing.T) {
	c := stubClient(&stubTransport{status: 412, body: `{"error":"stale version token"}`})
	cat, err := memes.DecodeCategory(memes.Raw{"opco": "pkt", "slug": "tacos", "name": "Tacos", "version": "old"})
	require.NoError(t, err)
	err = c.Categories.Delete(cat)
	require.Error(t, err)
	assert.True(t, memetree.IsStaleVersion(err))
}

func TestValidationFailure(t *testing.T) {
	c := stubClient(&stubTransport{status: 406, body: `{"error":"name is required"}`})
	_, err := c.Categories.Create("pkt", "", memetree.CreateOpts{})
	assert.True(t, memetree.IsInvalid(err))
}

func TestMalformedErrorBody(t *testing.T) {
	c := stubClient(&stubTransport{status: 500, body: "<html>bad gateway</html>"})
	_, err := c.Categories.Get("pkt", "tacos")
	var te *memetree.TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Message, "bad gateway", "the raw body must not be lost")
	var se *memetree.ServerError
	assert.False(t, errors.As(err, &se))
}

func TestTransportFailure(t *testing.T) {
	boom := errors.New("connection refused")
	c := stubClient(&stubTransport{err: boom})
	_, err := c.Categories.Get("pkt", "tacos")
	var te *memetree.TransportError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, boom)
}

func TestSingleEntityDecodeFailureSurfaces(t *testing.T) {
	c := stubClient(&stubTransport{status: http.StatusOK, body: `{"definition":"category","opco":"pkt"}`})
	_, err := c.Categories.Get("pkt", "tacos")
	var de *memes.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "slug", de.Field)
}
