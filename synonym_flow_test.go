package memetree_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memetree "github.com/memetree/memetree.go"
	"github.com/memetree/memetree.go/pkg/memes"
)

type scriptedCall struct {
	method string
	path   string
	status int
	body   string
}

// scriptedTransport asserts the exact sequence of wire calls an operation
// makes.
type scriptedTransport struct {
	t     *testing.T
	calls []scriptedCall
	next  int
}

func (s *scriptedTransport) Do(method, path string, _ url.Values) (int, []byte, error) {
	require.Less(s.t, s.next, len(s.calls), "unexpected call %s %s", method, path)
	call := s.calls[s.next]
	s.next++
	assert.Equal(s.t, call.method, method)
	assert.Equal(s.t, call.path, path)
	return call.status, []byte(call.body), nil
}

func (s *scriptedTransport) done() bool { return s.next == len(s.calls) }

func synonymParent(t *testing.T) *memes.Category {
	t.Helper()
	cat, err := memes.DecodeCategory(memes.Raw{"opco": "PKT", "slug": "bars", "name": "Bars", "version": "v1"})
	require.NoError(t, err)
	return cat
}

func TestAddSynonymSequenceWhenMissing(t *testing.T) {
	st := &scriptedTransport{t: t, calls: []scriptedCall{
		{"GET", "/slugify", 200, "taco-joints"},
		{"GET", "/PKT/synonyms/taco-joints", 404, `{"error":"no such synonym taco-joints"}`},
		{"POST", "/PKT/synonyms", 201, `{"definition":"synonym","opco":"PKT","slug":"taco-joints","name":"Taco Joints","language":"en","version":"v1"}`},
		{"POST", "/PKT/categories/bars/synonyms/taco-joints", 200, `{}`},
	}}
	c := memetree.New("http://stub.invalid", memetree.WithTransport(st))

	syn, err := c.Categories.AddSynonym(synonymParent(t), "Taco Joints", "en")
	require.NoError(t, err)
	assert.True(t, st.done(), "not-found must lead straight to create and attach")
	assert.Equal(t, "synonym:PKT:taco-joints", syn.Key())
}

func TestAddSynonymSequenceWhenPresent(t *testing.T) {
	st := &scriptedTransport{t: t, calls: []scriptedCall{
		{"GET", "/slugify", 200, "taco-joints"},
		{"GET", "/PKT/synonyms/taco-joints", 200, `{"definition":"synonym","opco":"PKT","slug":"taco-joints","name":"Taco Joints","external":"seed","version":"v7"}`},
		{"POST", "/PKT/categories/bars/synonyms/taco-joints", 200, `{}`},
	}}
	c := memetree.New("http://stub.invalid", memetree.WithTransport(st))

	syn, err := c.Categories.AddSynonym(synonymParent(t), "Taco Joints", "en")
	require.NoError(t, err)
	assert.True(t, st.done(), "an existing synonym must be attached, never re-created")
	assert.Equal(t, "seed", syn.External)
	assert.Equal(t, "v7", syn.Version)
}

func TestAddSynonymStopsOnOtherGetErrors(t *testing.T) {
	st := &scriptedTransport{t: t, calls: []scriptedCall{
		{"GET", "/slugify", 200, "taco-joints"},
		{"GET", "/PKT/synonyms/taco-joints", 500, `{"error":"backing store unavailable"}`},
	}}
	c := memetree.New("http://stub.invalid", memetree.WithTransport(st))

	_, err := c.Categories.AddSynonym(synonymParent(t), "Taco Joints", "en")
	require.Error(t, err)
	assert.True(t, st.done(), "a non-404 lookup failure must propagate without creating anything")
	var se *memetree.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 500, se.Status)
	assert.Equal(t, "backing store unavailable", se.Message)
}
