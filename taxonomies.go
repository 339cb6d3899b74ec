package memetree

import (
	"net/http"

	"github.com/memetree/memetree.go/pkg/memes"
)

// TaxonomiesService operates on the taxonomy containers of an operating
// company.
type TaxonomiesService struct {
	c *Client
}

func (s *TaxonomiesService) All(opco string) ([]*memes.Taxonomy, error) {
	r := s.c.newRequest("taxonomies.all", http.MethodGet, opco, "taxonomies")
	return listOf(r, memes.KindTaxonomy, memes.DecodeTaxonomy)
}

func (s *TaxonomiesService) Get(opco, slug string) (*memes.Taxonomy, error) {
	r := s.c.newRequest("taxonomies.get", http.MethodGet, opco, "taxonomies", slug)
	return single(r, memes.KindTaxonomy, memes.DecodeTaxonomy)
}

// Create makes a new taxonomy; taxonomies carry no external id. Conflicts
// behave as in CategoriesService.Create.
func (s *TaxonomiesService) Create(opco, name string, opts CreateOpts) (*memes.Taxonomy, error) {
	r := s.c.newRequest("taxonomies.create", http.MethodPost, opco, "taxonomies")
	r.set("name", name).
		optional("slug", opts.Slug).
		optional("language", opts.Language)
	return single(r, memes.KindTaxonomy, memes.DecodeTaxonomy)
}

// Update returns a new detached instance; tax is never mutated. 412 when
// the version token is stale.
func (s *TaxonomiesService) Update(tax *memes.Taxonomy) (*memes.Taxonomy, error) {
	r := s.c.newRequest("taxonomies.update", http.MethodPut, tax.Opco, "taxonomies", tax.Slug)
	r.set("name", tax.Name).
		set("language", tax.Language).
		set("version", tax.Version)
	return single(r, memes.KindTaxonomy, memes.DecodeTaxonomy)
}

func (s *TaxonomiesService) Delete(tax *memes.Taxonomy) error {
	r := s.c.newRequest("taxonomies.delete", http.MethodDelete, tax.Opco, "taxonomies", tax.Slug)
	r.set("version", tax.Version)
	return r.void()
}

// AddCategory hangs a category at the taxonomy root.
func (s *TaxonomiesService) AddCategory(tax *memes.Taxonomy, cat *memes.Category) error {
	return s.c.relate("taxonomies.addCategory", http.MethodPost, tax, "categories", cat, nil)
}

func (s *TaxonomiesService) RemoveCategory(tax *memes.Taxonomy, cat *memes.Category) error {
	return s.c.relate("taxonomies.removeCategory", http.MethodDelete, tax, "categories", cat, nil)
}

// Categories lists the taxonomy's root categories.
func (s *TaxonomiesService) Categories(tax *memes.Taxonomy) ([]*memes.Category, error) {
	r := s.c.newRequest("taxonomies.categories", http.MethodGet, tax.Opco, "taxonomies", tax.Slug, "categories")
	return listOf(r, memes.KindCategory, memes.DecodeCategory)
}

func (s *TaxonomiesService) AddProperty(tax *memes.Taxonomy, prop *memes.Property) error {
	return s.c.relate("taxonomies.addProperty", http.MethodPost, tax, "properties", prop, nil)
}

func (s *TaxonomiesService) RemoveProperty(tax *memes.Taxonomy, prop *memes.Property) error {
	return s.c.relate("taxonomies.removeProperty", http.MethodDelete, tax, "properties", prop, nil)
}

// Options returns the properties attached directly to the taxonomy, with
// their options populated.
func (s *TaxonomiesService) Options(tax *memes.Taxonomy) ([]*memes.Property, error) {
	r := s.c.newRequest("taxonomies.options", http.MethodGet, tax.Opco, "taxonomies", tax.Slug, "options")
	return listOf(r, memes.KindProperty, memes.DecodeProperty)
}

// Inheritance returns the server-computed aggregate of properties and
// options for the taxonomy; for a container with no parents this matches
// Options, but mapping edges still contribute.
func (s *TaxonomiesService) Inheritance(tax *memes.Taxonomy) ([]*memes.Property, error) {
	r := s.c.newRequest("taxonomies.inheritance", http.MethodGet, tax.Opco, "taxonomies", tax.Slug, "inheritance")
	return listOf(r, memes.KindProperty, memes.DecodeProperty)
}

func (s *TaxonomiesService) AddSynonym(tax *memes.Taxonomy, name, language string) (*memes.Synonym, error) {
	return s.c.addSynonym("taxonomies.attachSynonym", tax, name, language)
}

func (s *TaxonomiesService) AttachSynonym(tax *memes.Taxonomy, syn *memes.Synonym) error {
	return s.c.relate("taxonomies.attachSynonym", http.MethodPost, tax, "synonyms", syn, nil)
}

func (s *TaxonomiesService) DetachSynonym(tax *memes.Taxonomy, syn *memes.Synonym) error {
	return s.c.relate("taxonomies.detachSynonym", http.MethodDelete, tax, "synonyms", syn, nil)
}
