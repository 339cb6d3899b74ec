package memes

// Synonym is an alternative name attachable to most other meme kinds.
type Synonym struct {
	Opco     string
	Slug     string
	Name     string
	External string
	Language string
	Version  string

	key string
}

func DecodeSynonym(r Raw) (*Synonym, error) {
	c, err := decodeCore(r, KindSynonym, "slug")
	if err != nil {
		return nil, err
	}
	return &Synonym{
		Opco:     c.opco,
		Slug:     c.natural,
		Name:     c.name,
		External: c.external,
		Language: c.language,
		Version:  c.version,
		key:      identityKey(KindSynonym, c.opco, c.natural),
	}, nil
}

func (s *Synonym) Key() string          { return s.key }
func (s *Synonym) Definition() Kind     { return KindSynonym }
func (s *Synonym) OpcoCode() string     { return s.Opco }
func (s *Synonym) NaturalKey() string   { return s.Slug }
func (s *Synonym) VersionToken() string { return s.Version }

func (s *Synonym) Record() Raw {
	return core{
		opco:     s.Opco,
		natural:  s.Slug,
		name:     s.Name,
		external: s.External,
		language: s.Language,
		version:  s.Version,
	}.record(KindSynonym, "slug")
}
