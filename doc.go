// Package memetree is a client for the memetree taxonomy service: a graph
// of operating companies, taxonomies, categories, headings, superheadings,
// properties, options and synonyms related by parent/child, mapping and
// property/option edges.
//
// The server owns all mutation logic, validation and inheritance
// computation. This client models the graph, translates typed calls into
// wire requests and decodes the server's heterogeneous responses back into
// typed entities:
//
//	c := memetree.New("https://taxonomy.example.com")
//	if _, err := c.Signin("root", "secret"); err != nil {
//		// ...
//	}
//	cat, err := c.Categories.Create("PKT", "Mexican Restaurants", memetree.CreateOpts{})
//
// Mutations follow an optimistic-concurrency discipline: every entity
// carries an opaque version token issued by the server, update and delete
// send it back, and a concurrent change surfaces as a 412 ServerError
// (IsStaleVersion). Update never mutates the value passed in; it returns a
// fresh instance reflecting the server's post-mutation state.
package memetree
