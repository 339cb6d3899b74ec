package memetree

import (
	"net/http"

	"github.com/memetree/memetree.go/pkg/memes"
)

// PropertiesService operates on properties, the relation verbs that link
// categories and taxonomies to options.
type PropertiesService struct {
	c *Client
}

func (s *PropertiesService) All(opco string) ([]*memes.Property, error) {
	r := s.c.newRequest("properties.all", http.MethodGet, opco, "properties")
	return listOf(r, memes.KindProperty, memes.DecodeProperty)
}

// Get fetches one property. The Options field of the result is nil; only
// the options and inheritance listings populate it.
func (s *PropertiesService) Get(opco, slug string) (*memes.Property, error) {
	r := s.c.newRequest("properties.get", http.MethodGet, opco, "properties", slug)
	return single(r, memes.KindProperty, memes.DecodeProperty)
}

func (s *PropertiesService) Create(opco, name string, opts CreateOpts) (*memes.Property, error) {
	r := s.c.newRequest("properties.create", http.MethodPost, opco, "properties")
	r.set("name", name).
		optional("slug", opts.Slug).
		optional("external", opts.External).
		optional("language", opts.Language)
	return single(r, memes.KindProperty, memes.DecodeProperty)
}

// Update returns a new detached instance; p is never mutated. 412 when the
// version token is stale.
func (s *PropertiesService) Update(p *memes.Property) (*memes.Property, error) {
	r := s.c.newRequest("properties.update", http.MethodPut, p.Opco, "properties", p.Slug)
	r.set("name", p.Name).
		set("external", p.External).
		set("language", p.Language).
		set("version", p.Version)
	return single(r, memes.KindProperty, memes.DecodeProperty)
}

func (s *PropertiesService) Delete(p *memes.Property) error {
	r := s.c.newRequest("properties.delete", http.MethodDelete, p.Opco, "properties", p.Slug)
	r.set("version", p.Version)
	return r.void()
}

// AddOption attaches an option directly to the property, making it part of
// the property's value domain.
func (s *PropertiesService) AddOption(p *memes.Property, opt *memes.Option) error {
	return s.c.relate("properties.addOption", http.MethodPost, p, "options", opt, nil)
}

func (s *PropertiesService) RemoveOption(p *memes.Property, opt *memes.Option) error {
	return s.c.relate("properties.removeOption", http.MethodDelete, p, "options", opt, nil)
}

// Options lists the options directly attached to the property.
func (s *PropertiesService) Options(p *memes.Property) ([]*memes.Option, error) {
	r := s.c.newRequest("properties.options", http.MethodGet, p.Opco, "properties", p.Slug, "options")
	return listOf(r, memes.KindOption, memes.DecodeOption)
}

func (s *PropertiesService) AddSynonym(p *memes.Property, name, language string) (*memes.Synonym, error) {
	return s.c.addSynonym("properties.attachSynonym", p, name, language)
}

func (s *PropertiesService) AttachSynonym(p *memes.Property, syn *memes.Synonym) error {
	return s.c.relate("properties.attachSynonym", http.MethodPost, p, "synonyms", syn, nil)
}

func (s *PropertiesService) DetachSynonym(p *memes.Property, syn *memes.Synonym) error {
	return s.c.relate("properties.detachSynonym", http.MethodDelete, p, "synonyms", syn, nil)
}
