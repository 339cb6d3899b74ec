package memes

// Superheading groups headings.
type Superheading struct {
	Opco     string
	Slug     string
	Name     string
	External string
	Language string
	Version  string

	key string
}

func DecodeSuperheading(r Raw) (*Superheading, error) {
	c, err := decodeCore(r, KindSuperheading, "slug")
	if err != nil {
		return nil, err
	}
	return &Superheading{
		Opco:     c.opco,
		Slug:     c.natural,
		Name:     c.name,
		External: c.external,
		Language: c.language,
		Version:  c.version,
		key:      identityKey(KindSuperheading, c.opco, c.natural),
	}, nil
}

func (s *Superheading) Key() string          { return s.key }
func (s *Superheading) Definition() Kind     { return KindSuperheading }
func (s *Superheading) OpcoCode() string     { return s.Opco }
func (s *Superheading) NaturalKey() string   { return s.Slug }
func (s *Superheading) VersionToken() string { return s.Version }

func (s *Superheading) Record() Raw {
	return core{
		opco:     s.Opco,
		natural:  s.Slug,
		name:     s.Name,
		external: s.External,
		language: s.Language,
		version:  s.Version,
	}.record(KindSuperheading, "slug")
}
