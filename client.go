package memetree

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/memetree/memetree.go/pkg/memes"
)

// Client is the entry point to the memetree service. One service value per
// resource hangs off it; all of them share the client's transport, logger
// and session credential.
//
// A Client is safe for concurrent use. The only shared mutable state is the
// session credential, which Signin replaces wholesale.
type Client struct {
	transport Transport
	logger    zerolog.Logger

	mu      sync.RWMutex
	session string

	Opcos         *OpcosService
	Taxonomies    *TaxonomiesService
	Categories    *CategoriesService
	Headings      *HeadingsService
	Superheadings *SuperheadingsService
	Properties    *PropertiesService
	Options       *OptionsService
	Synonyms      *SynonymsService
	Users         *UsersService
}

// ClientOption configures a Client at construction time.
type ClientOption func(*Client)

// WithTransport replaces the default HTTP transport.
func WithTransport(t Transport) ClientOption {
	return func(c *Client) { c.transport = t }
}

// WithLogger installs a logger. The default discards everything, including
// the per-record warnings emitted when a polymorphic listing contains
// records this client version cannot decode.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// WithHTTPClient swaps the *http.Client used by the default transport. It
// has no effect when WithTransport installed a custom one.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if t, ok := c.transport.(*HTTPTransport); ok {
			t.Client = hc
		}
	}
}

// New returns a client for the service at baseURL.
func New(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		transport: NewHTTPTransport(baseURL),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Opcos = &OpcosService{c: c}
	c.Taxonomies = &TaxonomiesService{c: c}
	c.Categories = &CategoriesService{c: c}
	c.Headings = &HeadingsService{c: c}
	c.Superheadings = &SuperheadingsService{c: c}
	c.Properties = &PropertiesService{c: c}
	c.Options = &OptionsService{c: c}
	c.Synonyms = &SynonymsService{c: c}
	c.Users = &UsersService{c: c}
	return c
}

// Signin authenticates against the service and stores the opaque session
// credential carried by the returned user. Every later request sends it as
// the auth parameter until the next Signin or Invalidate.
func (c *Client) Signin(login, password string) (*memes.User, error) {
	r := c.newRequest("signin", http.MethodPost, "signin")
	r.set("login", login).set("password", password)
	u, err := single(r, memes.KindUser, memes.DecodeUser)
	if err != nil {
		return nil, err
	}
	c.setSession(u.Session)
	return u, nil
}

// Invalidate drops the stored session credential.
func (c *Client) Invalidate() {
	c.setSession("")
}

// Session returns the current opaque credential, or "" when signed out.
func (c *Client) Session() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *Client) setSession(s string) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}
