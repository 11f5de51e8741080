package detail

import (
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// keySpec declares one recognized key of a closed object schema.
type keySpec struct {
	name     string
	kind     JSONKind
	required bool
}

func required(name string, kind JSONKind) keySpec {
	return keySpec{name: name, kind: kind, required: true}
}

func optional(name string, kind JSONKind) keySpec {
	return keySpec{name: name, kind: kind}
}

// objectSchema — закрытая схема JSON-объекта: только перечисленные ключи, каждый не более одного раза.
type objectSchema []keySpec

func (s objectSchema) lookup(name string) (keySpec, bool) {
	for _, k := range s {
		if k.name == name {
			return k, true
		}
	}
	return keySpec{}, false
}

// slots holds the values collected for one object by objectSchema.scan.
// A slot is filled only after the whole object has been validated.
type slots struct {
	path string
	vals map[string]gjson.Result
}

// scan walks every key/value pair of obj once, in input order, and fills the slots.
// Unknown keys, repeated keys and values of the wrong kind stop the scan immediately;
// required keys are checked after the scan, in schema order.
func (s objectSchema) scan(path string, obj gjson.Result) (slots, error) {
	if !obj.IsObject() {
		return slots{}, malformed(path, "expected an object")
	}
	found := make(map[string]gjson.Result, len(s))
	var scanErr error
	obj.ForEach(func(k, v gjson.Result) bool {
		name := k.String()
		spec, ok := s.lookup(name)
		if !ok {
			scanErr = keyError(ErrUnknownField, path, name)
			return false
		}
		if _, seen := found[name]; seen {
			scanErr = keyError(ErrDuplicateField, path, name)
			return false
		}
		if !spec.accepts(v) {
			scanErr = mismatch(path, name, spec.kind)
			return false
		}
		found[name] = v
		return true
	})
	if scanErr != nil {
		return slots{}, scanErr
	}
	for _, spec := range s {
		if !spec.required {
			continue
		}
		if _, ok := found[spec.name]; !ok {
			return slots{}, keyError(ErrMissingField, path, spec.name)
		}
	}
	return slots{path: path, vals: found}, nil
}

// accepts reports whether v has the declared kind. null is accepted only for optional keys.
func (k keySpec) accepts(v gjson.Result) bool {
	if v.Type == gjson.Null {
		return !k.required
	}
	switch k.kind {
	case JSONString:
		return v.Type == gjson.String
	case JSONObject:
		return v.IsObject()
	case JSONArray:
		return v.IsArray()
	}
	return false
}

// get returns the value of key; absent and null are both reported as missing.
func (s slots) get(key string) (gjson.Result, bool) {
	v, ok := s.vals[key]
	if !ok || v.Type == gjson.Null {
		return gjson.Result{}, false
	}
	return v, true
}

// str returns a required string value. Callers only use it for keys the schema marks required.
func (s slots) str(key string) string {
	v, _ := s.get(key)
	return v.Str
}

// optStr returns nil when key is absent or null.
func (s slots) optStr(key string) *string {
	v, ok := s.get(key)
	if !ok {
		return nil
	}
	str := v.Str
	return &str
}

// child builds the path of a nested object.
func (s slots) child(key string) string {
	if s.path == "" {
		return key
	}
	return s.path + "." + key
}

// parseDocument validates the whole buffer and returns its top-level object.
// gjson does not check encoding, so raw bytes that are not UTF-8 are rejected here.
func parseDocument(data []byte) (gjson.Result, error) {
	if !utf8.Valid(data) {
		return gjson.Result{}, malformed("", "invalid utf-8")
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, malformed("", "invalid json")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return gjson.Result{}, malformed("", "top level must be an object")
	}
	return doc, nil
}

// decodeEach decodes every element of a JSON array in order and stops at the first error.
func decodeEach[T any](path string, arr gjson.Result, decode func(path string, v gjson.Result) (T, error)) ([]T, error) {
	elems := arr.Array()
	out := make([]T, 0, len(elems))
	for i, v := range elems {
		item, err := decode(fmt.Sprintf("%s[%d]", path, i), v)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
