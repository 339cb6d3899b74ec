package memetree

import (
	"net/http"

	"github.com/memetree/memetree.go/pkg/memes"
)

// OptionsService operates on options, the values properties can take.
type OptionsService struct {
	c *Client
}

func (s *OptionsService) All(opco string) ([]*memes.Option, error) {
	r := s.c.newRequest("options.all", http.MethodGet, opco, "options")
	return listOf(r, memes.KindOption, memes.DecodeOption)
}

func (s *OptionsService) Get(opco, slug string) (*memes.Option, error) {
	r := s.c.newRequest("options.get", http.MethodGet, opco, "options", slug)
	return single(r, memes.KindOption, memes.DecodeOption)
}

func (s *OptionsService) Create(opco, name string, opts CreateOpts) (*memes.Option, error) {
	r := s.c.newRequest("options.create", http.MethodPost, opco, "options")
	r.set("name", name).
		optional("slug", opts.Slug).
		optional("external", opts.External).
		optional("language", opts.Language)
	return single(r, memes.KindOption, memes.DecodeOption)
}

// Update returns a new detached instance; o is never mutated. 412 when the
// version token is stale.
func (s *OptionsService) Update(o *memes.Option) (*memes.Option, error) {
	r := s.c.newRequest("options.update", http.MethodPut, o.Opco, "options", o.Slug)
	r.set("name", o.Name).
		set("external", o.External).
		set("language", o.Language).
		set("version", o.Version)
	return single(r, memes.KindOption, memes.DecodeOption)
}

func (s *OptionsService) Delete(o *memes.Option) error {
	r := s.c.newRequest("options.delete", http.MethodDelete, o.Opco, "options", o.Slug)
	r.set("version", o.Version)
	return r.void()
}

// AddSuboption nests child under parent.
func (s *OptionsService) AddSuboption(parent, child *memes.Option) error {
	return s.c.relate("options.addSuboption", http.MethodPost, parent, "suboptions", child, nil)
}

func (s *OptionsService) RemoveSuboption(parent, child *memes.Option) error {
	return s.c.relate("options.removeSuboption", http.MethodDelete, parent, "suboptions", child, nil)
}

// Suboptions lists the options nested directly under parent.
func (s *OptionsService) Suboptions(parent *memes.Option) ([]*memes.Option, error) {
	r := s.c.newRequest("options.suboptions", http.MethodGet, parent.Opco, "options", parent.Slug, "suboptions")
	return listOf(r, memes.KindOption, memes.DecodeOption)
}

func (s *OptionsService) AddSynonym(o *memes.Option, name, language string) (*memes.Synonym, error) {
	return s.c.addSynonym("options.attachSynonym", o, name, language)
}

func (s *OptionsService) AttachSynonym(o *memes.Option, syn *memes.Synonym) error {
	return s.c.relate("options.attachSynonym", http.MethodPost, o, "synonyms", syn, nil)
}

func (s *OptionsService) DetachSynonym(o *memes.Option, syn *memes.Synonym) error {
	return s.c.relate("options.detachSynonym", http.MethodDelete, o, "synonyms", syn, nil)
}
