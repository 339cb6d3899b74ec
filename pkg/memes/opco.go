package memes

// OperatingCompany is the tenant scope every other meme lives in. Its slug
// is a 3-4 letter code and doubles as its natural key; the identity key
// leaves the opco segment empty because an operating company is not scoped
// by another one.
type OperatingCompany struct {
	Slug            string
	Name            string
	DefaultLanguage string
	Version         string

	key string
}

func DecodeOperatingCompany(r Raw) (*OperatingCompany, error) {
	slug, err := strField(r, KindOperatingCompany, "slug")
	if err != nil {
		return nil, err
	}
	name, err := strField(r, KindOperatingCompany, "name")
	if err != nil {
		return nil, err
	}
	lang, err := optField(r, KindOperatingCompany, "language")
	if err != nil {
		return nil, err
	}
	version, err := optField(r, KindOperatingCompany, "version")
	if err != nil {
		return nil, err
	}
	return &OperatingCompany{
		Slug:            slug,
		Name:            name,
		DefaultLanguage: lang,
		Version:         version,
		key:             identityKey(KindOperatingCompany, "", slug),
	}, nil
}

func (o *OperatingCompany) Key() string        { return o.key }
func (o *OperatingCompany) Definition() Kind   { return KindOperatingCompany }
func (o *OperatingCompany) OpcoCode() string   { return o.Slug }
func (o *OperatingCompany) NaturalKey() string { return o.Slug }
func (o *OperatingCompany) VersionToken() string {
	return o.Version
}

// Record renders the entity back into wire shape.
func (o *OperatingCompany) Record() Raw {
	r := Raw{
		"definition": string(KindOperatingCompany),
		"slug":       o.Slug,
		"name":       o.Name,
	}
	if o.DefaultLanguage != "" {
		r["language"] = o.DefaultLanguage
	}
	if o.Version != "" {
		r["version"] = o.Version
	}
	return r
}
