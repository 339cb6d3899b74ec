package memes

// Category is the workhorse meme kind: categories form the parent/child
// tree inside a taxonomy and carry the property/option attachments that
// inheritance aggregates over.
type Category struct {
	Opco     string
	Slug     string
	Name     string
	External string
	Language string
	Version  string

	key string
}

func DecodeCategory(r Raw) (*Category, error) {
	c, err := decodeCore(r, KindCategory, "slug")
	if err != nil {
		return nil, err
	}
	return &Category{
		Opco:     c.opco,
		Slug:     c.natural,
		Name:     c.name,
		External: c.external,
		Language: c.language,
		Version:  c.version,
		key:      identityKey(KindCategory, c.opco, c.natural),
	}, nil
}

func (c *Category) Key() string          { return c.key }
func (c *Category) Definition() Kind     { return KindCategory }
func (c *Category) OpcoCode() string     { return c.Opco }
func (c *Category) NaturalKey() string   { return c.Slug }
func (c *Category) VersionToken() string { return c.Version }

func (c *Category) Record() Raw {
	return core{
		opco:     c.Opco,
		natural:  c.Slug,
		name:     c.Name,
		external: c.External,
		language: c.Language,
		version:  c.Version,
	}.record(KindCategory, "slug")
}
