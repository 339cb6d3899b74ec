package memes

import "github.com/rs/zerolog"

// DecodeMeme decodes a record known to be of the given meme kind. The kind
// normally comes from context (the endpoint that produced the record) rather
// than from the record itself.
func DecodeMeme(kind Kind, r Raw) (Meme, error) {
	switch kind {
	case KindOperatingCompany:
		return DecodeOperatingCompany(r)
	case KindTaxonomy:
		return DecodeTaxonomy(r)
	case KindCategory:
		return DecodeCategory(r)
	case KindHeading:
		return DecodeHeading(r)
	case KindSuperheading:
		return DecodeSuperheading(r)
	case KindProperty:
		return DecodeProperty(r)
	case KindOption:
		return DecodeOption(r)
	case KindSynonym:
		return DecodeSynonym(r)
	default:
		return nil, &UnknownKindError{Definition: string(kind)}
	}
}

// DecodeNode decodes a record of unknown kind by dispatching on its
// definition tag.
func DecodeNode(r Raw) (Node, error) {
	def, err := strField(r, "", "definition")
	if err != nil {
		return nil, err
	}
	if Kind(def) == KindUser {
		return DecodeUser(r)
	}
	return DecodeMeme(Kind(def), r)
}

// DecodeNodes decodes a heterogeneous listing. Records that fail to decode,
// including ones with definition tags this client version does not know,
// are logged and skipped; the rest of the batch still comes back. Search and
// traversal endpoints may return shapes introduced after this client was
// built, and a partial result beats none.
func DecodeNodes(records []Raw, log zerolog.Logger) []Node {
	nodes := make([]Node, 0, len(records))
	for i, r := range records {
		n, err := DecodeNode(r)
		if err != nil {
			log.Warn().Err(err).Int("index", i).Msg("skipping record in polymorphic listing")
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}
