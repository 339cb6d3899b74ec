package memes

// Property is the relation verb linking categories and taxonomies to
// options ("cuisine", "price-range", ...).
//
// Options is populated only when the property arrives from an options or
// inheritance listing; a property fetched via Get or All leaves it nil.
// Callers must not assume it is present.
type Property struct {
	Opco     string
	Slug     string
	Name     string
	External string
	Language string
	Version  string
	Options  []*Option

	key string
}

func DecodeProperty(r Raw) (*Property, error) {
	c, err := decodeCore(r, KindProperty, "slug")
	if err != nil {
		return nil, err
	}
	p := &Property{
		Opco:     c.opco,
		Slug:     c.natural,
		Name:     c.name,
		External: c.external,
		Language: c.language,
		Version:  c.version,
		key:      identityKey(KindProperty, c.opco, c.natural),
	}
	items, err := listField(r, KindProperty, "options")
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		or, ok := rawItem(item)
		if !ok {
			return nil, &DecodeError{Kind: KindProperty, Field: "options", Reason: "contains a non-record element"}
		}
		opt, err := DecodeOption(or)
		if err != nil {
			return nil, err
		}
		p.Options = append(p.Options, opt)
	}
	return p, nil
}

func (p *Property) Key() string          { return p.key }
func (p *Property) Definition() Kind     { return KindProperty }
func (p *Property) OpcoCode() string     { return p.Opco }
func (p *Property) NaturalKey() string   { return p.Slug }
func (p *Property) VersionToken() string { return p.Version }

func (p *Property) Record() Raw {
	r := core{
		opco:     p.Opco,
		natural:  p.Slug,
		name:     p.Name,
		external: p.External,
		language: p.Language,
		version:  p.Version,
	}.record(KindProperty, "slug")
	if p.Options != nil {
		opts := make([]Raw, len(p.Options))
		for i, o := range p.Options {
			opts[i] = o.Record()
		}
		r["options"] = opts
	}
	return r
}
