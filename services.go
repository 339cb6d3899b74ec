package memetree

import (
	"net/http"

	"github.com/memetree/memetree.go/pkg/memes"
)

// CreateOpts carries the optional fields of a Create call. Blank fields are
// omitted from the wire payload: a blank Slug makes the server derive one
// from the name, a blank Language makes it fall back to the operating
// company's default.
type CreateOpts struct {
	Slug     string
	External string
	Language string
}

func resourceOf(kind memes.Kind) string {
	switch kind {
	case memes.KindOperatingCompany:
		return "opcos"
	case memes.KindTaxonomy:
		return "taxonomies"
	case memes.KindCategory:
		return "categories"
	case memes.KindHeading:
		return "headings"
	case memes.KindSuperheading:
		return "superheadings"
	case memes.KindProperty:
		return "properties"
	case memes.KindOption:
		return "options"
	case memes.KindSynonym:
		return "synonyms"
	case memes.KindUser:
		return "users"
	default:
		return string(kind)
	}
}

// relate issues a void relation call: POST attaches, DELETE detaches. The
// edge is identified by the subject's path plus the relation segment and
// the object's natural key; direction matters to server-side inheritance
// but is not validated here.
func (c *Client) relate(op, method string, subject memes.Meme, rel string, object memes.Meme, extra map[string]string) error {
	r := c.newRequest(op, method,
		subject.OpcoCode(), resourceOf(subject.Definition()), subject.NaturalKey(), rel, object.NaturalKey())
	for k, v := range extra {
		r.set(k, v)
	}
	return r.void()
}

// addSynonym is the get-or-create-then-attach pattern shared by every kind
// that accepts synonyms: derive the slug server-side, fetch an existing
// synonym under it, create one only when the fetch reports not-found, then
// attach whichever instance we ended up with. Any other fetch error
// propagates unchanged.
func (c *Client) addSynonym(op string, parent memes.Meme, name, language string) (*memes.Synonym, error) {
	slug, err := c.Slugify(name)
	if err != nil {
		return nil, err
	}
	syn, err := c.Synonyms.Get(parent.OpcoCode(), slug)
	switch {
	case err == nil:
	case IsNotFound(err):
		syn, err = c.Synonyms.Create(parent.OpcoCode(), name, CreateOpts{Slug: slug, Language: language})
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	if err := c.relate(op, http.MethodPost, parent, "synonyms", syn, nil); err != nil {
		return nil, err
	}
	return syn, nil
}
