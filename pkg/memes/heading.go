package memes

// Heading is keyed by a pid rather than a slug; everything else matches the
// other meme kinds.
type Heading struct {
	Opco     string
	Pid      string
	Name     string
	External string
	Language string
	Version  string

	key string
}

func DecodeHeading(r Raw) (*Heading, error) {
	c, err := decodeCore(r, KindHeading, "pid")
	if err != nil {
		return nil, err
	}
	return &Heading{
		Opco:     c.opco,
		Pid:      c.natural,
		Name:     c.name,
		External: c.external,
		Language: c.language,
		Version:  c.version,
		key:      identityKey(KindHeading, c.opco, c.natural),
	}, nil
}

func (h *Heading) Key() string          { return h.key }
func (h *Heading) Definition() Kind     { return KindHeading }
func (h *Heading) OpcoCode() string     { return h.Opco }
func (h *Heading) NaturalKey() string   { return h.Pid }
func (h *Heading) VersionToken() string { return h.Version }

func (h *Heading) Record() Raw {
	return core{
		opco:     h.Opco,
		natural:  h.Pid,
		name:     h.Name,
		external: h.External,
		language: h.Language,
		version:  h.Version,
	}.record(KindHeading, "pid")
}
