package memetree

import (
	"net/http"

	"github.com/memetree/memetree.go/pkg/memes"
)

// Slugify asks the server to derive a slug from a human-readable name. The
// client never slugifies locally; the server's transform is the only
// authority on the mapping, and it is versioned with the server.
func (c *Client) Slugify(name string) (string, error) {
	r := c.newRequest("slugify", http.MethodGet, "slugify")
	r.set("name", name)
	return r.text()
}

// UUID fetches a server-issued identifier.
func (c *Client) UUID() (string, error) {
	r := c.newRequest("uuid", http.MethodGet, "uuid")
	return r.text()
}

// Search runs a free-text search across every kind in the opco. The result
// mixes kinds; records this client version cannot decode are skipped, so a
// newer server never breaks an older client here.
func (c *Client) Search(opco, query string) ([]memes.Node, error) {
	r := c.newRequest("search", http.MethodGet, opco, "search")
	r.set("q", query)
	return r.nodes()
}

// Traverse walks the named relation from a starting node and returns
// whatever the server reaches, with the same decode tolerance as Search.
func (c *Client) Traverse(opco, from, relation string) ([]memes.Node, error) {
	r := c.newRequest("traverse", http.MethodGet, opco, "traverse")
	r.set("from", from).set("relation", relation)
	return r.nodes()
}
