package memetree

import (
	"net/http"

	"github.com/memetree/memetree.go/pkg/memes"
)

// HeadingsService operates on headings, which are keyed by pid rather than
// slug.
type HeadingsService struct {
	c *Client
}

// HeadingCreateOpts mirrors CreateOpts with the heading's pid in place of a
// slug. A blank Pid makes the server derive one from the name.
type HeadingCreateOpts struct {
	Pid      string
	External string
	Language string
}

func (s *HeadingsService) All(opco string) ([]*memes.Heading, error) {
	r := s.c.newRequest("headings.all", http.MethodGet, opco, "headings")
	return listOf(r, memes.KindHeading, memes.DecodeHeading)
}

func (s *HeadingsService) Get(opco, pid string) (*memes.Heading, error) {
	r := s.c.newRequest("headings.get", http.MethodGet, opco, "headings", pid)
	return single(r, memes.KindHeading, memes.DecodeHeading)
}

func (s *HeadingsService) Create(opco, name string, opts HeadingCreateOpts) (*memes.Heading, error) {
	r := s.c.newRequest("headings.create", http.MethodPost, opco, "headings")
	r.set("name", name).
		optional("pid", opts.Pid).
		optional("external", opts.External).
		optional("language", opts.Language)
	return single(r, memes.KindHeading, memes.DecodeHeading)
}

// Update returns a new detached instance; h is never mutated. 412 when the
// version token is stale.
func (s *HeadingsService) Update(h *memes.Heading) (*memes.Heading, error) {
	r := s.c.newRequest("headings.update", http.MethodPut, h.Opco, "headings", h.Pid)
	r.set("name", h.Name).
		set("external", h.External).
		set("language", h.Language).
		set("version", h.Version)
	return single(r, memes.KindHeading, memes.DecodeHeading)
}

func (s *HeadingsService) Delete(h *memes.Heading) error {
	r := s.c.newRequest("headings.delete", http.MethodDelete, h.Opco, "headings", h.Pid)
	r.set("version", h.Version)
	return r.void()
}

// AddCategory marks the heading as heading-for the category.
func (s *HeadingsService) AddCategory(h *memes.Heading, cat *memes.Category) error {
	return s.c.relate("headings.addCategory", http.MethodPost, h, "categories", cat, nil)
}

func (s *HeadingsService) RemoveCategory(h *memes.Heading, cat *memes.Category) error {
	return s.c.relate("headings.removeCategory", http.MethodDelete, h, "categories", cat, nil)
}

func (s *HeadingsService) AddSynonym(h *memes.Heading, name, language string) (*memes.Synonym, error) {
	return s.c.addSynonym("headings.attachSynonym", h, name, language)
}

func (s *HeadingsService) AttachSynonym(h *memes.Heading, syn *memes.Synonym) error {
	return s.c.relate("headings.attachSynonym", http.MethodPost, h, "synonyms", syn, nil)
}

func (s *HeadingsService) DetachSynonym(h *memes.Heading, syn *memes.Synonym) error {
	return s.c.relate("headings.detachSynonym", http.MethodDelete, h, "synonyms", syn, nil)
}
