package memetree

import (
	"net/http"

	"github.com/memetree/memetree.go/pkg/memes"
)

// SynonymsService operates on synonyms directly. The usual entry point is
// the AddSynonym convenience on the parent's service, which wraps Get and
// Create here.
type SynonymsService struct {
	c *Client
}

func (s *SynonymsService) All(opco string) ([]*memes.Synonym, error) {
	r := s.c.newRequest("synonyms.all", http.MethodGet, opco, "synonyms")
	return listOf(r, memes.KindSynonym, memes.DecodeSynonym)
}

func (s *SynonymsService) Get(opco, slug string) (*memes.Synonym, error) {
	r := s.c.newRequest("synonyms.get", http.MethodGet, opco, "synonyms", slug)
	return single(r, memes.KindSynonym, memes.DecodeSynonym)
}

func (s *SynonymsService) Create(opco, name string, opts CreateOpts) (*memes.Synonym, error) {
	r := s.c.newRequest("synonyms.create", http.MethodPost, opco, "synonyms")
	r.set("name", name).
		optional("slug", opts.Slug).
		optional("external", opts.External).
		optional("language", opts.Language)
	return single(r, memes.KindSynonym, memes.DecodeSynonym)
}

// Update returns a new detached instance; syn is never mutated. 412 when
// the version token is stale.
func (s *SynonymsService) Update(syn *memes.Synonym) (*memes.Synonym, error) {
	r := s.c.newRequest("synonyms.update", http.MethodPut, syn.Opco, "synonyms", syn.Slug)
	r.set("name", syn.Name).
		set("external", syn.External).
		set("language", syn.Language).
		set("version", syn.Version)
	return single(r, memes.KindSynonym, memes.DecodeSynonym)
}

func (s *SynonymsService) Delete(syn *memes.Synonym) error {
	r := s.c.newRequest("synonyms.delete", http.MethodDelete, syn.Opco, "synonyms", syn.Slug)
	r.set("version", syn.Version)
	return r.void()
}
