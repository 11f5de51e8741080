package detail

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// EncodeLogin writes r in its canonical wire form: htmlForm only when present,
// optional keys only when set, fields in record order.
func EncodeLogin(r LoginRecord) ([]byte, error) {
	out := []byte(`{}`)
	var err error
	if form, ok := r.HTMLForm(); ok {
		obj, err := encodeObject(
			pair{"htmlId", form.id},
			pair{"htmlName", form.name},
			pair{"htmlMethod", &form.method},
		)
		if err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, "htmlForm", obj); err != nil {
			return nil, fmt.Errorf("encode htmlForm: %w", err)
		}
	}
	if out, err = sjson.SetRawBytes(out, "fields", []byte(`[]`)); err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	for i, f := range r.fields {
		code, value, name := f.Kind().Code(), f.Value(), f.Name()
		var designation *string
		if d, ok := f.Designation(); ok {
			designation = &d
		}
		obj, err := encodeObject(
			pair{"type", &code},
			pair{"value", &value},
			pair{"name", &name},
			pair{"designation", designation},
		)
		if err != nil {
			return nil, err
		}
		// "-1" дописывает элемент в конец массива
		if out, err = sjson.SetRawBytes(out, "fields.-1", obj); err != nil {
			return nil, fmt.Errorf("encode fields[%d]: %w", i, err)
		}
	}
	return out, nil
}

type pair struct {
	key   string
	value *string
}

// encodeObject builds a JSON object from pairs in order, skipping nil values.
func encodeObject(pairs ...pair) ([]byte, error) {
	obj := []byte(`{}`)
	for _, p := range pairs {
		if p.value == nil {
			continue
		}
		var err error
		if obj, err = sjson.SetBytes(obj, p.key, *p.value); err != nil {
			return nil, fmt.Errorf("encode %s: %w", p.key, err)
		}
	}
	return obj, nil
}
