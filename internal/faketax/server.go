// Package faketax provides an in-memory fake of the memetree taxonomy
// service for tests. It speaks the same HTTP surface as the real service:
// form/query parameters in, JSON records out, with the error protocol
// (error message, duplicate payload on slug conflicts, 412 on stale version
// tokens) the client's translator expects.
//
// There is no executable for this package; tests mount a Server on
// httptest.NewServer and point a client at it.
package faketax

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/memetree/memetree.go/pkg/memes"
)

type memeKey struct {
	opco string
	kind memes.Kind
	slug string
}

type edge struct {
	kind memes.Kind
	slug string
	// verb is the property slug qualifying an option attachment; empty for
	// every other relation.
	verb string
}

type rec struct {
	kind     memes.Kind
	opco     string
	slug     string
	name     string
	external string
	language string
	version  string
}

func (r *rec) record() memes.Raw {
	out := memes.Raw{
		"definition": string(r.kind),
		"name":       r.name,
	}
	if r.kind == memes.KindOperatingCompany {
		out["slug"] = r.slug
	} else {
		out["opco"] = r.opco
		if r.kind == memes.KindHeading {
			out["pid"] = r.slug
		} else {
			out["slug"] = r.slug
		}
	}
	if r.external != "" {
		out["external"] = r.external
	}
	if r.language != "" {
		out["language"] = r.language
	}
	out["version"] = r.version
	return out
}

type user struct {
	login    string
	email    string
	password string
	roles    []string
	disabled bool
}

func (u *user) record(session string) memes.Raw {
	out := memes.Raw{
		"definition": string(memes.KindUser),
		"login":      u.login,
	}
	if u.email != "" {
		out["email"] = u.email
	}
	if len(u.roles) > 0 {
		out["roles"] = append([]string(nil), u.roles...)
	}
	if u.disabled {
		out["disabled"] = true
	}
	if session != "" {
		out["session"] = session
	}
	return out
}

// Server is the fake service. It implements http.Handler and is safe for
// concurrent use.
type Server struct {
	mu          sync.Mutex
	requireAuth bool
	users       map[string]*user
	sessions    map[string]string
	opcos       map[string]*rec
	memes       map[memeKey]*rec
	edges       map[memeKey]map[string][]edge
}

func New() *Server {
	return &Server{
		users:    map[string]*user{},
		sessions: map[string]string{},
		opcos:    map[string]*rec{},
		memes:    map[memeKey]*rec{},
		edges:    map[memeKey]map[string][]edge{},
	}
}

// AddUser seeds a service account that Signin will accept.
func (s *Server) AddUser(login, password string, roles ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[login] = &user{login: login, password: password, roles: roles}
}

// AddOpco seeds an operating company.
func (s *Server) AddOpco(slug, name, language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opcos[slug] = &rec{
		kind: memes.KindOperatingCompany, slug: slug, name: name,
		language: language, version: uuid.NewString(),
	}
}

// RequireAuth makes every call except signin demand a valid session
// credential in the auth parameter.
func (s *Server) RequireAuth() {
	s.mu.Lock()
	s.requireAuth = true
	s.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, memes.Raw{"error": msg})
}

func failDuplicate(w http.ResponseWriter, msg string, dup memes.Raw) {
	writeJSON(w, http.StatusConflict, memes.Raw{"error": msg, "duplicate": dup})
}

// slugify mirrors the real server's transform: lowercase, non-alphanumeric
// runs collapsed to single dashes.
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteRune(c)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func kindForResource(res string) (memes.Kind, bool) {
	switch res {
	case "taxonomies":
		return memes.KindTaxonomy, true
	case "categories":
		return memes.KindCategory, true
	case "headings":
		return memes.KindHeading, true
	case "superheadings":
		return memes.KindSuperheading, true
	case "properties":
		return memes.KindProperty, true
	case "options":
		return memes.KindOption, true
	case "synonyms":
		return memes.KindSynonym, true
	default:
		return "", false
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fail(w, http.StatusNotAcceptable, "unreadable parameters")
		return
	}
	// r.URL.Path is already unescaped by net/http.
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(parts) == 1 && parts[0] == "signin" && r.Method == http.MethodPost {
		s.signin(w, r)
		return
	}
	if s.requireAuth {
		if _, ok := s.sessions[r.Form.Get("auth")]; !ok {
			fail(w, http.StatusUnauthorized, "invalid session")
			return
		}
	}

	switch parts[0] {
	case "slugify":
		_, _ = w.Write([]byte(slugify(r.Form.Get("name"))))
		return
	case "uuid":
		_, _ = w.Write([]byte(uuid.NewString()))
		return
	case "users":
		s.serveUsers(w, r, parts)
		return
	case "opcos":
		s.serveOpcos(w, r, parts)
		return
	}

	// Everything else is scoped by an operating company.
	opco := parts[0]
	if _, ok := s.opcos[opco]; !ok {
		fail(w, http.StatusNotFound, "no such operating company "+opco)
		return
	}
	if len(parts) < 2 {
		fail(w, http.StatusNotFound, "no such resource")
		return
	}
	switch parts[1] {
	case "search":
		s.search(w, opco, r.Form.Get("q"))
		return
	case "traverse":
		s.traverse(w, opco, r.Form.Get("from"), r.Form.Get("relation"))
		return
	}
	kind, ok := kindForResource(parts[1])
	if !ok {
		fail(w, http.StatusNotFound, "no such resource "+parts[1])
		return
	}
	switch len(parts) {
	case 2:
		s.serveCollection(w, r, opco, kind)
	case 3:
		s.serveOne(w, r, memeKey{opco, kind, parts[2]})
	case 4:
		s.serveListing(w, memeKey{opco, kind, parts[2]}, parts[3])
	case 5:
		s.serveRelation(w, r, memeKey{opco, kind, parts[2]}, parts[3], parts[4])
	default:
		fail(w, http.StatusNotFound, "no such resource")
	}
}
