package detail

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check which kind of decode failure occurred.
var (
	// ErrMalformedJSON — буфер не является валидным JSON, либо на месте объекта/массива лежит что-то другое.
	ErrMalformedJSON = errors.New("malformed json")

	// ErrUnknownField indicates a key outside the closed schema of an object.
	ErrUnknownField = errors.New("unknown field")

	// ErrDuplicateField indicates a recognized key appeared twice in one object.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrMissingField indicates a required key was absent after the full scan.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidDiscriminator indicates an unrecognized type code.
	ErrInvalidDiscriminator = errors.New("invalid discriminator")

	// ErrTypeMismatch indicates a key held a JSON value of the wrong kind.
	ErrTypeMismatch = errors.New("type mismatch")
)

// JSONKind names the kind of JSON value a key is expected to hold.
type JSONKind string

const (
	JSONString JSONKind = "string"
	JSONObject JSONKind = "object"
	JSONArray  JSONKind = "array"
)

// DecodeError represents the first problem found in a detail document.
// It wraps one of the sentinel errors with the location of the problem.
type DecodeError struct {
	Err      error    // Underlying sentinel error (ErrUnknownField, etc.)
	Path     string   // Path of the object being decoded, e.g. "fields[2]"; empty for the document root
	Key      string   // Offending key for unknown/duplicate/missing/mismatch errors
	Value    string   // Rejected discriminator for ErrInvalidDiscriminator
	Expected JSONKind // Expected kind for ErrTypeMismatch
	Reason   string   // Extra detail for ErrMalformedJSON
}

func (e *DecodeError) Error() string {
	var msg string
	switch {
	case errors.Is(e.Err, ErrTypeMismatch):
		msg = fmt.Sprintf("%s: %q must be %s", e.Err, e.Key, e.Expected)
	case errors.Is(e.Err, ErrInvalidDiscriminator):
		msg = fmt.Sprintf("%s %q for %q", e.Err, e.Value, e.Key)
	case e.Key != "":
		msg = fmt.Sprintf("%s %q", e.Err, e.Key)
	case e.Reason != "":
		msg = fmt.Sprintf("%s: %s", e.Err, e.Reason)
	default:
		msg = e.Err.Error()
	}
	if e.Path != "" {
		msg += " (at " + e.Path + ")"
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Kind returns a stable snake_case name of the error kind, suitable for API responses.
func (e *DecodeError) Kind() string {
	switch e.Err {
	case ErrMalformedJSON:
		return "malformed_json"
	case ErrUnknownField:
		return "unknown_field"
	case ErrDuplicateField:
		return "duplicate_field"
	case ErrMissingField:
		return "missing_field"
	case ErrInvalidDiscriminator:
		return "invalid_discriminator"
	case ErrTypeMismatch:
		return "type_mismatch"
	default:
		return "decode_error"
	}
}

func malformed(path, reason string) error {
	return &DecodeError{Err: ErrMalformedJSON, Path: path, Reason: reason}
}

func keyError(sentinel error, path, key string) error {
	return &DecodeError{Err: sentinel, Path: path, Key: key}
}

func mismatch(path, key string, expected JSONKind) error {
	return &DecodeError{Err: ErrTypeMismatch, Path: path, Key: key, Expected: expected}
}

func invalidDiscriminator(path, key, value string) error {
	return &DecodeError{Err: ErrInvalidDiscriminator, Path: path, Key: key, Value: value}
}
