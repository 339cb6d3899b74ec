package memes_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memetree/memetree.go/pkg/memes"
)

func reencode(t *testing.T, r memes.Raw) memes.Raw {
	t.Helper()
	data, err := json.Marshal(r)
	require.NoError(t, err)
	var out memes.Raw
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestDecodeRoundTrip(t *testing.T) {
	records := []memes.Raw{
		{"definition": "opco", "slug": "pkt", "name": "Pocket", "language": "en", "version": "v1"},
		{"definition": "taxonomy", "opco": "pkt", "slug": "places", "name": "Places", "language": "en", "version": "v1"},
		{"definition": "category", "opco": "pkt", "slug": "restaurants", "name": "Restaurants", "external": "r-1", "language": "en", "version": "v1"},
		{"definition": "heading", "opco": "pkt", "pid": "10021", "name": "Restaurants, Mexican", "version": "v2"},
		{"definition": "superheading", "opco": "pkt", "slug": "eating-out", "name": "Eating Out", "version": "v1"},
		{"definition": "property", "opco": "pkt", "slug": "cuisine", "name": "Cuisine", "version": "v1"},
		{"definition": "option", "opco": "pkt", "slug": "mexican", "name": "Mexican", "version": "v3"},
		{"definition": "synonym", "opco": "pkt", "slug": "tex-mex", "name": "Tex-Mex", "version": "v1"},
		{"definition": "user", "login": "root", "email": "root@example.com", "roles": []string{"admin"}},
	}
	for _, record := range records {
		name := record["definition"].(string)
		t.Run(name, func(t *testing.T) {
			first, err := memes.DecodeNode(record)
			require.NoError(t, err)

			type recorder interface {
				Record() memes.Raw
			}
			second, err := memes.DecodeNode(reencode(t, first.(recorder).Record()))
			require.NoError(t, err)
			assert.True(t, memes.Same(first, second), "round trip changed identity: %q vs %q", first.Key(), second.Key())
		})
	}
}

func TestIdentityKeys(t *testing.T) {
	a, err := memes.DecodeCategory(memes.Raw{"opco": "pkt", "slug": "bars", "name": "Bars", "version": "v1"})
	require.NoError(t, err)
	b, err := memes.DecodeCategory(memes.Raw{"opco": "pkt", "slug": "bars", "name": "Renamed", "version": "v9"})
	require.NoError(t, err)

	// Identity ignores name and version.
	assert.Equal(t, "category:pkt:bars", a.Key())
	assert.True(t, memes.Same(a, b))

	// A heading sharing the natural-key string is a different node.
	h, err := memes.DecodeHeading(memes.Raw{"opco": "pkt", "pid": "bars", "name": "Bars"})
	require.NoError(t, err)
	assert.False(t, memes.Same(a, h))

	// Same slug in another opco is a different node too.
	c, err := memes.DecodeCategory(memes.Raw{"opco": "zap", "slug": "bars", "name": "Bars"})
	require.NoError(t, err)
	assert.False(t, memes.Same(a, c))
}

func TestKeyIsComputedOnce(t *testing.T) {
	cat, err := memes.DecodeCategory(memes.Raw{"opco": "pkt", "slug": "bars", "name": "Bars"})
	require.NoError(t, err)
	cat.Slug = "mutated"
	cat.Opco = "zzz"
	assert.Equal(t, "category:pkt:bars", cat.Key(), "identity must not drift when fields are mutated")
}

func TestDecodeMissingField(t *testing.T) {
	_, err := memes.DecodeCategory(memes.Raw{"opco": "pkt", "name": "No Slug"})
	var de *memes.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, memes.KindCategory, de.Kind)
	assert.Equal(t, "slug", de.Field)

	_, err = memes.DecodeCategory(memes.Raw{"opco": "pkt", "slug": "x", "name": 7})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "name", de.Field)
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := memes.DecodeNode(memes.Raw{"definition": "hologram", "opco": "pkt", "slug": "x", "name": "X"})
	var uk *memes.UnknownKindError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "hologram", uk.Definition)
}

func TestDecodePropertyOptions(t *testing.T) {
	plain, err := memes.DecodeProperty(memes.Raw{"opco": "pkt", "slug": "cuisine", "name": "Cuisine"})
	require.NoError(t, err)
	assert.Nil(t, plain.Options, "a plain property record must not grow an options list")

	loaded, err := memes.DecodeProperty(memes.Raw{
		"opco": "pkt", "slug": "cuisine", "name": "Cuisine",
		"options": []any{
			map[string]any{"opco": "pkt", "slug": "mexican", "name": "Mexican"},
			map[string]any{"opco": "pkt", "slug": "thai", "name": "Thai"},
		},
	})
	require.NoError(t, err)
	require.Len(t, loaded.Options, 2)
	assert.Equal(t, "option:pkt:mexican", loaded.Options[0].Key())

	_, err = memes.DecodeProperty(memes.Raw{
		"opco": "pkt", "slug": "cuisine", "name": "Cuisine",
		"options": []any{map[string]any{"opco": "pkt", "name": "slugless"}},
	})
	var de *memes.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, memes.KindOption, de.Kind)
}

func TestDecodeNodesSkipsBadRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	log := zerolog.New(buf)

	nodes := memes.DecodeNodes([]memes.Raw{
		{"definition": "category", "opco": "pkt", "slug": "bars", "name": "Bars"},
		{"definition": "wormhole", "opco": "pkt", "slug": "x", "name": "X"},
		{"definition": "category", "opco": "pkt", "name": "slug missing"},
		{"definition": "option", "opco": "pkt", "slug": "mexican", "name": "Mexican"},
	}, log)

	require.Len(t, nodes, 2)
	assert.Equal(t, "category:pkt:bars", nodes[0].Key())
	assert.Equal(t, "option:pkt:mexican", nodes[1].Key())
	assert.Contains(t, buf.String(), "wormhole", "the skipped record should be logged")
}

func TestDecodeNodesEmpty(t *testing.T) {
	nodes := memes.DecodeNodes(nil, zerolog.Nop())
	assert.Empty(t, nodes)
	assert.NotNil(t, nodes)
}
