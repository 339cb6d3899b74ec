package memes

// Option is a value a property can take; options may nest via suboption
// edges, but the nesting is a server-side relation and is not reflected in
// the record shape.
type Option struct {
	Opco     string
	Slug     string
	Name     string
	External string
	Language string
	Version  string

	key string
}

func DecodeOption(r Raw) (*Option, error) {
	c, err := decodeCore(r, KindOption, "slug")
	if err != nil {
		return nil, err
	}
	return &Option{
		Opco:     c.opco,
		Slug:     c.natural,
		Name:     c.name,
		External: c.external,
		Language: c.language,
		Version:  c.version,
		key:      identityKey(KindOption, c.opco, c.natural),
	}, nil
}

func (o *Option) Key() string          { return o.key }
func (o *Option) Definition() Kind     { return KindOption }
func (o *Option) OpcoCode() string     { return o.Opco }
func (o *Option) NaturalKey() string   { return o.Slug }
func (o *Option) VersionToken() string { return o.Version }

func (o *Option) Record() Raw {
	return core{
		opco:     o.Opco,
		natural:  o.Slug,
		name:     o.Name,
		external: o.External,
		language: o.Language,
		version:  o.Version,
	}.record(KindOption, "slug")
}
