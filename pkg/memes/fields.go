package memes

import "fmt"

func strField(r Raw, kind Kind, field string) (string, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", &DecodeError{Kind: kind, Field: field, Reason: "is missing"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &DecodeError{Kind: kind, Field: field, Reason: fmt.Sprintf("is not a string (%T)", v)}
	}
	return s, nil
}

func optField(r Raw, kind Kind, field string) (string, error) {
	if v, ok := r[field]; !ok || v == nil {
		return "", nil
	}
	return strField(r, kind, field)
}

func boolField(r Raw, kind Kind, field string) (bool, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, &DecodeError{Kind: kind, Field: field, Reason: fmt.Sprintf("is not a bool (%T)", v)}
	}
	return b, nil
}

// listField accepts both []any (what encoding/json produces) and typed
// slices handed over by in-process callers such as test fixtures.
func listField(r Raw, kind Kind, field string) ([]any, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, nil
	}
	switch vs := v.(type) {
	case []any:
		return vs, nil
	case []string:
		out := make([]any, len(vs))
		for i, s := range vs {
			out[i] = s
		}
		return out, nil
	case []Raw:
		out := make([]any, len(vs))
		for i, m := range vs {
			out[i] = m
		}
		return out, nil
	default:
		return nil, &DecodeError{Kind: kind, Field: field, Reason: fmt.Sprintf("is not a list (%T)", v)}
	}
}

func rawItem(v any) (Raw, bool) {
	switch m := v.(type) {
	case Raw:
		return m, true
	case map[string]any:
		return Raw(m), true
	default:
		return nil, false
	}
}
