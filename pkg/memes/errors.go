package memes

import "fmt"

// DecodeError reports a wire record that does not match the shape expected
// for its kind. Single-entity calls surface it to the caller; polymorphic
// list calls skip the offending record instead.
type DecodeError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("memes: field %q %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("memes: decoding %s: field %q %s", e.Kind, e.Field, e.Reason)
}

// UnknownKindError reports a record whose definition tag this client version
// does not recognize. List decoding treats it the same as a DecodeError so
// that newer server record shapes do not break older clients.
type UnknownKindError struct {
	Definition string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("memes: unknown definition tag %q", e.Definition)
}
