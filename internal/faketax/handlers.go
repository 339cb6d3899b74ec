package faketax

import (
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/memetree/memetree.go/pkg/memes"
)

func (s *Server) signin(w http.ResponseWriter, r *http.Request) {
	u, ok := s.users[r.Form.Get("login")]
	if !ok || u.password != r.Form.Get("password") {
		fail(w, http.StatusNotAcceptable, "invalid credentials")
		return
	}
	if u.disabled {
		fail(w, http.StatusNotAcceptable, "account is disabled")
		return
	}
	token := uuid.NewString()
	s.sessions[token] = u.login
	writeJSON(w, http.StatusOK, u.record(token))
}

func splitRoles(raw string) []string {
	var roles []string
	for _, role := range strings.Split(raw, ",") {
		if role = strings.TrimSpace(role); role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}

func (s *Server) serveUsers(w http.ResponseWriter, r *http.Request, parts []string) {
	switch len(parts) {
	case 1:
		switch r.Method {
		case http.MethodGet:
			logins := make([]string, 0, len(s.users))
			for login := range s.users {
				logins = append(logins, login)
			}
			sort.Strings(logins)
			out := make([]memes.Raw, len(logins))
			for i, login := range logins {
				out[i] = s.users[login].record("")
			}
			writeJSON(w, http.StatusOK, out)
		case http.MethodPost:
			login := r.Form.Get("login")
			if login == "" {
				fail(w, http.StatusNotAcceptable, "login is required")
				return
			}
			if existing, ok := s.users[login]; ok {
				failDuplicate(w, "user "+login+" already exists", existing.record(""))
				return
			}
			u := &user{
				login:    login,
				email:    r.Form.Get("email"),
				password: r.Form.Get("password"),
				roles:    splitRoles(r.Form.Get("roles")),
			}
			s.users[login] = u
			writeJSON(w, http.StatusCreated, u.record(""))
		default:
			fail(w, http.StatusNotFound, "no such operation")
		}
	case 2:
		u, ok := s.users[parts[1]]
		if !ok {
			fail(w, http.StatusNotFound, "no such user "+parts[1])
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, u.record(""))
		case http.MethodPut:
			if _, sent := r.Form["email"]; sent {
				u.email = r.Form.Get("email")
			}
			if _, sent := r.Form["roles"]; sent {
				u.roles = splitRoles(r.Form.Get("roles"))
			}
			if _, sent := r.Form["disabled"]; sent {
				u.disabled = r.Form.Get("disabled") == "true"
			}
			writeJSON(w, http.StatusOK, u.record(""))
		case http.MethodDelete:
			delete(s.users, u.login)
			writeJSON(w, http.StatusOK, memes.Raw{})
		default:
			fail(w, http.StatusNotFound, "no such operation")
		}
	case 3:
		u, ok := s.users[parts[1]]
		if !ok {
			fail(w, http.StatusNotFound, "no such user "+parts[1])
			return
		}
		switch parts[2] {
		case "disable":
			u.disabled = true
		case "enable":
			u.disabled = false
		default:
			fail(w, http.StatusNotFound, "no such operation")
			return
		}
		writeJSON(w, http.StatusOK, u.record(""))
	default:
		fail(w, http.StatusNotFound, "no such resource")
	}
}

func validOpcoSlug(slug string) bool {
	if len(slug) < 3 || len(slug) > 4 {
		return false
	}
	for _, c := range slug {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func (s *Server) serveOpcos(w http.ResponseWriter, r *http.Request, parts []string) {
	switch len(parts) {
	case 1:
		switch r.Method {
		case http.MethodGet:
			slugs := make([]string, 0, len(s.opcos))
			for slug := range s.opcos {
				slugs = append(slugs, slug)
			}
			sort.Strings(slugs)
			out := make([]memes.Raw, len(slugs))
			for i, slug := range slugs {
				out[i] = s.opcos[slug].record()
			}
			writeJSON(w, http.StatusOK, out)
		case http.MethodPost:
			slug, name := r.Form.Get("slug"), r.Form.Get("name")
			if !validOpcoSlug(slug) {
				fail(w, http.StatusNotAcceptable, "opco slug must be 3-4 letters")
				return
			}
			if name == "" {
				fail(w, http.StatusNotAcceptable, "name is required")
				return
			}
			if existing, ok := s.opcos[slug]; ok {
				failDuplicate(w, "opco "+slug+" already exists", existing.record())
				return
			}
			o := &rec{
				kind: memes.KindOperatingCompany, slug: slug, name: name,
				language: r.Form.Get("language"), version: uuid.NewString(),
			}
			s.opcos[slug] = o
			writeJSON(w, http.StatusCreated, o.record())
		default:
			fail(w, http.StatusNotFound, "no such operation")
		}
	case 2:
		o, ok := s.opcos[parts[1]]
		if !ok {
			fail(w, http.StatusNotFound, "no such opco "+parts[1])
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, o.record())
		case http.MethodPut:
			if r.Form.Get("version") != o.version {
				fail(w, http.StatusPreconditionFailed, "stale version token")
				return
			}
			if _, sent := r.Form["name"]; sent {
				if r.Form.Get("name") == "" {
					fail(w, http.StatusNotAcceptable, "name is required")
					return
				}
				o.name = r.Form.Get("name")
			}
			if _, sent := r.Form["language"]; sent {
				o.language = r.Form.Get("language")
			}
			o.version = uuid.NewString()
			writeJSON(w, http.StatusOK, o.record())
		case http.MethodDelete:
			if r.Form.Get("version") != o.version {
				fail(w, http.StatusPreconditionFailed, "stale version token")
				return
			}
			delete(s.opcos, o.slug)
			writeJSON(w, http.StatusOK, memes.Raw{})
		default:
			fail(w, http.StatusNotFound, "no such operation")
		}
	default:
		fail(w, http.StatusNotFound, "no such resource")
	}
}

func (s *Server) sortedMemes(opco string, kind memes.Kind) []*rec {
	var recs []*rec
	for k, r := range s.memes {
		if k.opco == opco && k.kind == kind {
			recs = append(recs, r)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].slug < recs[j].slug })
	return recs
}

func (s *Server) serveCollection(w http.ResponseWriter, r *http.Request, opco string, kind memes.Kind) {
	switch r.Method {
	case http.MethodGet:
		recs := s.sortedMemes(opco, kind)
		out := make([]memes.Raw, len(recs))
		for i, rc := range recs {
			out[i] = rc.record()
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		name := r.Form.Get("name")
		if name == "" {
			fail(w, http.StatusNotAcceptable, "name is required")
			return
		}
		keyField := "slug"
		if kind == memes.KindHeading {
			keyField = "pid"
		}
		slug := r.Form.Get(keyField)
		if slug == "" {
			slug = slugify(name)
		}
		if slug == "" {
			fail(w, http.StatusNotAcceptable, "cannot derive a "+keyField+" from the name")
			return
		}
		key := memeKey{opco, kind, slug}
		if existing, ok := s.memes[key]; ok {
			failDuplicate(w, string(kind)+" "+slug+" already exists", existing.record())
			return
		}
		language := r.Form.Get("language")
		if language == "" {
			language = s.opcos[opco].language
		}
		rc := &rec{
			kind: kind, opco: opco, slug: slug, name: name,
			external: r.Form.Get("external"), language: language,
			version: uuid.NewString(),
		}
		s.memes[key] = rc
		writeJSON(w, http.StatusCreated, rc.record())
	default:
		fail(w, http.StatusNotFound, "no such operation")
	}
}

func (s *Server) serveOne(w http.ResponseWriter, r *http.Request, key memeKey) {
	rc, ok := s.memes[key]
	if !ok {
		fail(w, http.StatusNotFound, "no such "+string(key.kind)+" "+key.slug)
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, rc.record())
	case http.MethodPut:
		if r.Form.Get("version") != rc.version {
			fail(w, http.StatusPreconditionFailed, "stale version token")
			return
		}
		if _, sent := r.Form["name"]; sent {
			if r.Form.Get("name") == "" {
				fail(w, http.StatusNotAcceptable, "name is required")
				return
			}
			rc.name = r.Form.Get("name")
		}
		// Present-but-empty clears the field; absent leaves it alone.
		if _, sent := r.Form["external"]; sent {
			rc.external = r.Form.Get("external")
		}
		if _, sent := r.Form["language"]; sent {
			rc.language = r.Form.Get("language")
		}
		rc.version = uuid.NewString()
		writeJSON(w, http.StatusOK, rc.record())
	case http.MethodDelete:
		if r.Form.Get("version") != rc.version {
			fail(w, http.StatusPreconditionFailed, "stale version token")
			return
		}
		delete(s.memes, key)
		delete(s.edges, key)
		writeJSON(w, http.StatusOK, memes.Raw{})
	default:
		fail(w, http.StatusNotFound, "no such operation")
	}
}
