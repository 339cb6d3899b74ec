package faketax

import (
	"net/http"
	"sort"
	"strings"

	"github.com/memetree/memetree.go/pkg/memes"
)

func objectKind(rel string) (memes.Kind, bool) {
	switch rel {
	case "children", "mappings", "categories":
		return memes.KindCategory, true
	case "properties":
		return memes.KindProperty, true
	case "options", "suboptions":
		return memes.KindOption, true
	case "synonyms":
		return memes.KindSynonym, true
	case "headings":
		return memes.KindHeading, true
	default:
		return "", false
	}
}

func (s *Server) addEdge(key memeKey, rel string, e edge) {
	rels := s.edges[key]
	if rels == nil {
		rels = map[string][]edge{}
		s.edges[key] = rels
	}
	for _, have := range rels[rel] {
		if have == e {
			return
		}
	}
	rels[rel] = append(rels[rel], e)
}

func (s *Server) removeEdge(key memeKey, rel string, e edge) {
	rels := s.edges[key]
	for i, have := range rels[rel] {
		if have == e {
			rels[rel] = append(rels[rel][:i], rels[rel][i+1:]...)
			return
		}
	}
}

func (s *Server) serveRelation(w http.ResponseWriter, r *http.Request, key memeKey, rel, obj string) {
	subject, ok := s.memes[key]
	if !ok {
		fail(w, http.StatusNotFound, "no such "+string(key.kind)+" "+key.slug)
		return
	}
	objKind, ok := objectKind(rel)
	if !ok {
		fail(w, http.StatusNotFound, "no such relation "+rel)
		return
	}
	if _, ok := s.memes[memeKey{key.opco, objKind, obj}]; !ok {
		fail(w, http.StatusNotFound, "no such "+string(objKind)+" "+obj)
		return
	}
	e := edge{kind: objKind, slug: obj}
	if rel == "options" && key.kind != memes.KindProperty {
		verb := r.Form.Get("property")
		if verb == "" {
			fail(w, http.StatusNotAcceptable, "property is required for option attachments")
			return
		}
		if _, ok := s.memes[memeKey{key.opco, memes.KindProperty, verb}]; !ok {
			fail(w, http.StatusNotFound, "no such property "+verb)
			return
		}
		e.verb = verb
	}

	// Child-style edges get a reverse "parents" edge so parent listings and
	// the inheritance walk can go upward.
	var reverseOf memeKey
	reverse := false
	if rel == "children" || rel == "categories" {
		reverseOf = memeKey{key.opco, e.kind, e.slug}
		reverse = true
	}

	switch r.Method {
	case http.MethodPost:
		s.addEdge(key, rel, e)
		if reverse {
			s.addEdge(reverseOf, "parents", edge{kind: subject.kind, slug: subject.slug})
		}
	case http.MethodDelete:
		s.removeEdge(key, rel, e)
		if reverse {
			s.removeEdge(reverseOf, "parents", edge{kind: subject.kind, slug: subject.slug})
		}
	default:
		fail(w, http.StatusNotFound, "no such operation")
		return
	}
	writeJSON(w, http.StatusOK, memes.Raw{})
}

func (s *Server) serveListing(w http.ResponseWriter, key memeKey, rel string) {
	if _, ok := s.memes[key]; !ok {
		fail(w, http.StatusNotFound, "no such "+string(key.kind)+" "+key.slug)
		return
	}
	switch rel {
	case "options":
		writeJSON(w, http.StatusOK, s.optionsPayload(key))
	case "inheritance":
		writeJSON(w, http.StatusOK, s.inheritancePayload(key))
	case "children", "parents", "categories", "headings", "suboptions", "synonyms", "properties", "mappings":
		out := []memes.Raw{}
		for _, e := range s.edges[key][rel] {
			if rc, ok := s.memes[memeKey{key.opco, e.kind, e.slug}]; ok {
				out = append(out, rc.record())
			}
		}
		writeJSON(w, http.StatusOK, out)
	default:
		fail(w, http.StatusNotFound, "no such relation "+rel)
	}
}

// optionsPayload renders the properties attached to a node, each with the
// options attached under it, matching the shape of the real service's
// options and inheritance listings.
func (s *Server) optionsPayload(key memeKey) []memes.Raw {
	props := map[string][]string{}
	for _, e := range s.edges[key]["properties"] {
		if _, seen := props[e.slug]; !seen {
			props[e.slug] = nil
		}
	}
	for _, e := range s.edges[key]["options"] {
		props[e.verb] = append(props[e.verb], e.slug)
	}
	// The property's own direct option attachments count as well.
	for verb := range props {
		for _, e := range s.edges[memeKey{key.opco, memes.KindProperty, verb}]["options"] {
			props[verb] = append(props[verb], e.slug)
		}
	}
	return s.renderProperties(key.opco, props)
}

func (s *Server) renderProperties(opco string, props map[string][]string) []memes.Raw {
	verbs := make([]string, 0, len(props))
	for verb := range props {
		verbs = append(verbs, verb)
	}
	sort.Strings(verbs)
	out := []memes.Raw{}
	for _, verb := range verbs {
		prec, ok := s.memes[memeKey{opco, memes.KindProperty, verb}]
		if !ok {
			continue
		}
		pr := prec.record()
		opts := []memes.Raw{}
		seen := map[string]bool{}
		for _, slug := range props[verb] {
			if seen[slug] {
				continue
			}
			seen[slug] = true
			if orec, ok := s.memes[memeKey{opco, memes.KindOption, slug}]; ok {
				opts = append(opts, orec.record())
			}
		}
		pr["options"] = opts
		out = append(out, pr)
	}
	return out
}

// inheritancePayload aggregates property/option attachments transitively
// over parent-category and mapping edges, the way the real engine does
// server-side.
func (s *Server) inheritancePayload(start memeKey) []memes.Raw {
	merged := map[string][]string{}
	seen := map[memeKey]bool{start: true}
	queue := []memeKey{start}
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		for _, e := range s.edges[key]["properties"] {
			if _, have := merged[e.slug]; !have {
				merged[e.slug] = nil
			}
		}
		for _, e := range s.edges[key]["options"] {
			merged[e.verb] = append(merged[e.verb], e.slug)
		}
		for _, rel := range []string{"parents", "mappings"} {
			for _, e := range s.edges[key][rel] {
				if e.kind != memes.KindCategory {
					continue
				}
				next := memeKey{key.opco, e.kind, e.slug}
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}
	}
	for verb := range merged {
		for _, e := range s.edges[memeKey{start.opco, memes.KindProperty, verb}]["options"] {
			merged[verb] = append(merged[verb], e.slug)
		}
	}
	return s.renderProperties(start.opco, merged)
}

func (s *Server) search(w http.ResponseWriter, opco, query string) {
	query = strings.ToLower(query)
	var matched []*rec
	for key, rc := range s.memes {
		if key.opco == opco && strings.Contains(strings.ToLower(rc.name), query) {
			matched = append(matched, rc)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].kind != matched[j].kind {
			return matched[i].kind < matched[j].kind
		}
		return matched[i].slug < matched[j].slug
	})
	out := make([]memes.Raw, len(matched))
	for i, rc := range matched {
		out[i] = rc.record()
	}
	writeJSON(w, http.StatusOK, out)
}

// traverse walks one relation from a "<kind>:<slug>" starting point.
func (s *Server) traverse(w http.ResponseWriter, opco, from, relation string) {
	kindStr, slug, ok := strings.Cut(from, ":")
	if !ok {
		fail(w, http.StatusNotAcceptable, "from must be <kind>:<key>")
		return
	}
	key := memeKey{opco, memes.Kind(kindStr), slug}
	if _, exists := s.memes[key]; !exists {
		fail(w, http.StatusNotFound, "no such "+kindStr+" "+slug)
		return
	}
	out := []memes.Raw{}
	for _, e := range s.edges[key][relation] {
		if rc, ok := s.memes[memeKey{opco, e.kind, e.slug}]; ok {
			out = append(out, rc.record())
		}
	}
	writeJSON(w, http.StatusOK, out)
}
