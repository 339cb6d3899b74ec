package memetree

import (
	"net/http"

	"github.com/memetree/memetree.go/pkg/memes"
)

// OpcosService operates on operating companies, the tenant scopes
// everything else lives in. Opcos are not nested under another opco, so
// their paths sit at the root.
type OpcosService struct {
	c *Client
}

func (s *OpcosService) All() ([]*memes.OperatingCompany, error) {
	r := s.c.newRequest("opcos.all", http.MethodGet, "opcos")
	return listOf(r, memes.KindOperatingCompany, memes.DecodeOperatingCompany)
}

func (s *OpcosService) Get(slug string) (*memes.OperatingCompany, error) {
	r := s.c.newRequest("opcos.get", http.MethodGet, "opcos", slug)
	return single(r, memes.KindOperatingCompany, memes.DecodeOperatingCompany)
}

// Create makes a new operating company. The slug is required here — it is
// the 3-4 letter tenant code, never derived from the name — and the server
// validates its shape (406 on a bad one).
func (s *OpcosService) Create(slug, name, defaultLanguage string) (*memes.OperatingCompany, error) {
	r := s.c.newRequest("opcos.create", http.MethodPost, "opcos")
	r.set("slug", slug).
		set("name", name).
		optional("language", defaultLanguage)
	return single(r, memes.KindOperatingCompany, memes.DecodeOperatingCompany)
}

// Update returns a new detached instance; o is never mutated. 412 when the
// version token is stale.
func (s *OpcosService) Update(o *memes.OperatingCompany) (*memes.OperatingCompany, error) {
	r := s.c.newRequest("opcos.update", http.MethodPut, "opcos", o.Slug)
	r.set("name", o.Name).
		set("language", o.DefaultLanguage).
		set("version", o.Version)
	return single(r, memes.KindOperatingCompany, memes.DecodeOperatingCompany)
}

func (s *OpcosService) Delete(o *memes.OperatingCompany) error {
	r := s.c.newRequest("opcos.delete", http.MethodDelete, "opcos", o.Slug)
	r.set("version", o.Version)
	return r.void()
}
