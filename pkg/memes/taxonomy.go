package memes

// Taxonomy is the root container a category tree hangs off. Unlike the
// other meme kinds it carries no external id.
type Taxonomy struct {
	Opco     string
	Slug     string
	Name     string
	Language string
	Version  string

	key string
}

func DecodeTaxonomy(r Raw) (*Taxonomy, error) {
	c, err := decodeCore(r, KindTaxonomy, "slug")
	if err != nil {
		return nil, err
	}
	return &Taxonomy{
		Opco:     c.opco,
		Slug:     c.natural,
		Name:     c.name,
		Language: c.language,
		Version:  c.version,
		key:      identityKey(KindTaxonomy, c.opco, c.natural),
	}, nil
}

func (t *Taxonomy) Key() string          { return t.key }
func (t *Taxonomy) Definition() Kind     { return KindTaxonomy }
func (t *Taxonomy) OpcoCode() string     { return t.Opco }
func (t *Taxonomy) NaturalKey() string   { return t.Slug }
func (t *Taxonomy) VersionToken() string { return t.Version }

func (t *Taxonomy) Record() Raw {
	return core{
		opco:     t.Opco,
		natural:  t.Slug,
		name:     t.Name,
		language: t.Language,
		version:  t.Version,
	}.record(KindTaxonomy, "slug")
}
