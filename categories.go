package memetree

import (
	"net/http"

	"github.com/memetree/memetree.go/pkg/memes"
)

// CategoriesService operates on the category tree of an operating company.
type CategoriesService struct {
	c *Client
}

// All lists every category in the opco.
func (s *CategoriesService) All(opco string) ([]*memes.Category, error) {
	r := s.c.newRequest("categories.all", http.MethodGet, opco, "categories")
	return listOf(r, memes.KindCategory, memes.DecodeCategory)
}

// Get fetches one category; a missing slug yields a 404 ServerError
// (IsNotFound).
func (s *CategoriesService) Get(opco, slug string) (*memes.Category, error) {
	r := s.c.newRequest("categories.get", http.MethodGet, opco, "categories", slug)
	return single(r, memes.KindCategory, memes.DecodeCategory)
}

// Create makes a new category. A 409 ServerError (IsConflict) carries the
// pre-existing category as its Duplicate.
func (s *CategoriesService) Create(opco, name string, opts CreateOpts) (*memes.Category, error) {
	r := s.c.newRequest("categories.create", http.MethodPost, opco, "categories")
	r.set("name", name).
		optional("slug", opts.Slug).
		optional("external", opts.External).
		optional("language", opts.Language)
	return single(r, memes.KindCategory, memes.DecodeCategory)
}

// Update submits the full record under the category's version token and
// returns a new detached instance; cat itself is never mutated. Empty
// fields are sent as empty, clearing them server-side. A concurrent change
// since cat was read yields a 412 ServerError (IsStaleVersion).
func (s *CategoriesService) Update(cat *memes.Category) (*memes.Category, error) {
	r := s.c.newRequest("categories.update", http.MethodPut, cat.Opco, "categories", cat.Slug)
	r.set("name", cat.Name).
		set("external", cat.External).
		set("language", cat.Language).
		set("version", cat.Version)
	return single(r, memes.KindCategory, memes.DecodeCategory)
}

// Delete removes the category under its version token (412 when stale).
// Orphaned children and relations are the server's concern.
func (s *CategoriesService) Delete(cat *memes.Category) error {
	r := s.c.newRequest("categories.delete", http.MethodDelete, cat.Opco, "categories", cat.Slug)
	r.set("version", cat.Version)
	return r.void()
}

// AddChild makes child a child of parent.
func (s *CategoriesService) AddChild(parent, child *memes.Category) error {
	return s.c.relate("categories.addChild", http.MethodPost, parent, "children", child, nil)
}

func (s *CategoriesService) RemoveChild(parent, child *memes.Category) error {
	return s.c.relate("categories.removeChild", http.MethodDelete, parent, "children", child, nil)
}

// Map records a mapping edge from one category onto another; inheritance
// flows along it.
func (s *CategoriesService) Map(from, to *memes.Category) error {
	return s.c.relate("categories.map", http.MethodPost, from, "mappings", to, nil)
}

func (s *CategoriesService) Unmap(from, to *memes.Category) error {
	return s.c.relate("categories.unmap", http.MethodDelete, from, "mappings", to, nil)
}

// AddProperty attaches a property to the category.
func (s *CategoriesService) AddProperty(cat *memes.Category, prop *memes.Property) error {
	return s.c.relate("categories.addProperty", http.MethodPost, cat, "properties", prop, nil)
}

func (s *CategoriesService) RemoveProperty(cat *memes.Category, prop *memes.Property) error {
	return s.c.relate("categories.removeProperty", http.MethodDelete, cat, "properties", prop, nil)
}

// AddOption attaches an option to the category under the given property
// verb.
func (s *CategoriesService) AddOption(cat *memes.Category, prop *memes.Property, opt *memes.Option) error {
	return s.c.relate("categories.addOption", http.MethodPost, cat, "options", opt,
		map[string]string{"property": prop.Slug})
}

func (s *CategoriesService) RemoveOption(cat *memes.Category, prop *memes.Property, opt *memes.Option) error {
	return s.c.relate("categories.removeOption", http.MethodDelete, cat, "options", opt,
		map[string]string{"property": prop.Slug})
}

// AttachSynonym links an existing synonym to the category.
func (s *CategoriesService) AttachSynonym(cat *memes.Category, syn *memes.Synonym) error {
	return s.c.relate("categories.attachSynonym", http.MethodPost, cat, "synonyms", syn, nil)
}

func (s *CategoriesService) DetachSynonym(cat *memes.Category, syn *memes.Synonym) error {
	return s.c.relate("categories.detachSynonym", http.MethodDelete, cat, "synonyms", syn, nil)
}

// AddSynonym derives a slug from name server-side, reuses an existing
// synonym under that slug or creates one, attaches it to the category, and
// returns the attached instance.
func (s *CategoriesService) AddSynonym(cat *memes.Category, name, language string) (*memes.Synonym, error) {
	return s.c.addSynonym("categories.attachSynonym", cat, name, language)
}

// Children lists the category's direct children.
func (s *CategoriesService) Children(cat *memes.Category) ([]*memes.Category, error) {
	r := s.c.newRequest("categories.children", http.MethodGet, cat.Opco, "categories", cat.Slug, "children")
	return listOf(r, memes.KindCategory, memes.DecodeCategory)
}

// Parents lists everything the category hangs under. The result mixes
// kinds (parent categories, taxonomies, headings), so undecodable records
// are skipped rather than failing the call.
func (s *CategoriesService) Parents(cat *memes.Category) ([]memes.Node, error) {
	r := s.c.newRequest("categories.parents", http.MethodGet, cat.Opco, "categories", cat.Slug, "parents")
	return r.nodes()
}

// Options returns the properties directly attached to the category, each
// carrying the options attached under it.
func (s *CategoriesService) Options(cat *memes.Category) ([]*memes.Property, error) {
	r := s.c.newRequest("categories.options", http.MethodGet, cat.Opco, "categories", cat.Slug, "options")
	return listOf(r, memes.KindProperty, memes.DecodeProperty)
}

// Inheritance returns the server-computed aggregate of properties and
// options reachable transitively over parent and mapping edges. The shape
// matches Options; only the traversal differs, and it runs server-side.
func (s *CategoriesService) Inheritance(cat *memes.Category) ([]*memes.Property, error) {
	r := s.c.newRequest("categories.inheritance", http.MethodGet, cat.Opco, "categories", cat.Slug, "inheritance")
	return listOf(r, memes.KindProperty, memes.DecodeProperty)
}
