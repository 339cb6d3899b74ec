package memetree

import (
	"net/http"

	"github.com/memetree/memetree.go/pkg/memes"
)

// SuperheadingsService operates on superheadings, the grouping level above
// headings.
type SuperheadingsService struct {
	c *Client
}

func (s *SuperheadingsService) All(opco string) ([]*memes.Superheading, error) {
	r := s.c.newRequest("superheadings.all", http.MethodGet, opco, "superheadings")
	return listOf(r, memes.KindSuperheading, memes.DecodeSuperheading)
}

func (s *SuperheadingsService) Get(opco, slug string) (*memes.Superheading, error) {
	r := s.c.newRequest("superheadings.get", http.MethodGet, opco, "superheadings", slug)
	return single(r, memes.KindSuperheading, memes.DecodeSuperheading)
}

func (s *SuperheadingsService) Create(opco, name string, opts CreateOpts) (*memes.Superheading, error) {
	r := s.c.newRequest("superheadings.create", http.MethodPost, opco, "superheadings")
	r.set("name", name).
		optional("slug", opts.Slug).
		optional("external", opts.External).
		optional("language", opts.Language)
	return single(r, memes.KindSuperheading, memes.DecodeSuperheading)
}

// Update returns a new detached instance; sh is never mutated. 412 when
// the version token is stale.
func (s *SuperheadingsService) Update(sh *memes.Superheading) (*memes.Superheading, error) {
	r := s.c.newRequest("superheadings.update", http.MethodPut, sh.Opco, "superheadings", sh.Slug)
	r.set("name", sh.Name).
		set("external", sh.External).
		set("language", sh.Language).
		set("version", sh.Version)
	return single(r, memes.KindSuperheading, memes.DecodeSuperheading)
}

func (s *SuperheadingsService) Delete(sh *memes.Superheading) error {
	r := s.c.newRequest("superheadings.delete", http.MethodDelete, sh.Opco, "superheadings", sh.Slug)
	r.set("version", sh.Version)
	return r.void()
}

func (s *SuperheadingsService) AddHeading(sh *memes.Superheading, h *memes.Heading) error {
	return s.c.relate("superheadings.addHeading", http.MethodPost, sh, "headings", h, nil)
}

func (s *SuperheadingsService) RemoveHeading(sh *memes.Superheading, h *memes.Heading) error {
	return s.c.relate("superheadings.removeHeading", http.MethodDelete, sh, "headings", h, nil)
}

func (s *SuperheadingsService) AddSynonym(sh *memes.Superheading, name, language string) (*memes.Synonym, error) {
	return s.c.addSynonym("superheadings.attachSynonym", sh, name, language)
}

func (s *SuperheadingsService) AttachSynonym(sh *memes.Superheading, syn *memes.Synonym) error {
	return s.c.relate("superheadings.attachSynonym", http.MethodPost, sh, "synonyms", syn, nil)
}

func (s *SuperheadingsService) DetachSynonym(sh *memes.Superheading, syn *memes.Synonym) error {
	return s.c.relate("superheadings.detachSynonym", http.MethodDelete, sh, "synonyms", syn, nil)
}
