// Package memes models the node kinds served by the memetree taxonomy
// service and decodes wire records into typed values.
//
// The server represents every taxonomy node ("meme") as a flat JSON record
// carrying a `definition` tag that names its kind. This package provides one
// concrete type per kind, a per-kind decoder, and a discriminated decoder
// that dispatches on the tag for endpoints returning mixed-kind collections.
package memes

// Kind is the definition tag the server attaches to every record.
type Kind string

const (
	KindOperatingCompany Kind = "opco"
	KindTaxonomy         Kind = "taxonomy"
	KindCategory         Kind = "category"
	KindHeading          Kind = "heading"
	KindSuperheading     Kind = "superheading"
	KindProperty         Kind = "property"
	KindOption           Kind = "option"
	KindSynonym          Kind = "synonym"
	KindUser             Kind = "user"
)

// Raw is a wire record as decoded from the server's JSON, before it is
// turned into a typed entity.
type Raw map[string]any

// Node is anything with a stable identity key. The key embeds the kind tag,
// so two nodes of different kinds never compare equal even when their
// natural keys collide.
type Node interface {
	// Key returns the identity key, "<kind>:<opco>:<naturalKey>". It is
	// computed once at decode time and is not affected by later mutation
	// of the value's exported fields.
	Key() string
}

// Meme is a Node that lives inside an operating company and is uniquely
// identified by its (opco, definition, natural key) triple.
type Meme interface {
	Node
	Definition() Kind
	OpcoCode() string
	NaturalKey() string
	// VersionToken returns the opaque optimistic-concurrency token issued
	// by the server. It must be sent back on update and delete.
	VersionToken() string
}

// Same reports whether two nodes denote the same server-side entity.
// Equality is by identity key only; field values do not participate.
func Same(a, b Node) bool {
	return a != nil && b != nil && a.Key() == b.Key()
}

func identityKey(kind Kind, opco, natural string) string {
	return string(kind) + ":" + opco + ":" + natural
}
