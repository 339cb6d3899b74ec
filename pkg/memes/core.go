package memes

// core carries the fields shared by every meme record. keyField is "slug"
// for all kinds except Heading, which the server keys by "pid".
type core struct {
	opco     string
	natural  string
	name     string
	external string
	language string
	version  string
}

func decodeCore(r Raw, kind Kind, keyField string) (core, error) {
	var c core
	var err error
	if c.opco, err = strField(r, kind, "opco"); err != nil {
		return c, err
	}
	if c.natural, err = strField(r, kind, keyField); err != nil {
		return c, err
	}
	if c.name, err = strField(r, kind, "name"); err != nil {
		return c, err
	}
	if c.external, err = optField(r, kind, "external"); err != nil {
		return c, err
	}
	if c.language, err = optField(r, kind, "language"); err != nil {
		return c, err
	}
	if c.version, err = optField(r, kind, "version"); err != nil {
		return c, err
	}
	return c, nil
}

func (c core) record(kind Kind, keyField string) Raw {
	r := Raw{
		"definition": string(kind),
		"opco":       c.opco,
		keyField:     c.natural,
		"name":       c.name,
	}
	if c.external != "" {
		r["external"] = c.external
	}
	if c.language != "" {
		r["language"] = c.language
	}
	if c.version != "" {
		r["version"] = c.version
	}
	return r
}
