package detail

import (
	"slices"

	"github.com/tidwall/gjson"
)

// FieldKind is the discriminator of a login field, as stored in the "type" key.
type FieldKind byte

const (
	FieldText     FieldKind = 'T'
	FieldPassword FieldKind = 'P'
	FieldInfo     FieldKind = 'I'
	FieldCheckbox FieldKind = 'C'
	FieldButton   FieldKind = 'B'
)

// Code returns the wire discriminator, e.g. "P".
func (k FieldKind) Code() string { return string(rune(k)) }

func (k FieldKind) String() string {
	switch k {
	case FieldText:
		return "text"
	case FieldPassword:
		return "password"
	case FieldInfo:
		return "info"
	case FieldCheckbox:
		return "checkbox"
	case FieldButton:
		return "button"
	default:
		return "unknown"
	}
}

// LoginField is one field of a login form. The set of implementations is closed:
// TextField, PasswordField, InfoField, CheckboxField and ButtonField.
type LoginField interface {
	Kind() FieldKind
	// Value returns the raw field value. For secret fields callers must not display or log it.
	Value() string
	// Name returns the underlying form-field identifier.
	Name() string
	// Designation returns the human-facing label, if the vault supplied one.
	Designation() (string, bool)

	loginField()
}

type field struct {
	value       string
	name        string
	designation *string
}

func (f field) Value() string { return f.value }
func (f field) Name() string  { return f.name }

func (f field) Designation() (string, bool) {
	if f.designation == nil {
		return "", false
	}
	return *f.designation, true
}

func (field) loginField() {}

type (
	TextField     struct{ field }
	PasswordField struct{ field }
	InfoField     struct{ field }
	CheckboxField struct{ field }
	ButtonField   struct{ field }
)

func (TextField) Kind() FieldKind     { return FieldText }
func (PasswordField) Kind() FieldKind { return FieldPassword }
func (InfoField) Kind() FieldKind     { return FieldInfo }
func (CheckboxField) Kind() FieldKind { return FieldCheckbox }
func (ButtonField) Kind() FieldKind   { return FieldButton }

// NewLoginField builds the variant selected by code ("T", "P", "I", "C" or "B").
// Any other code is rejected with ErrInvalidDiscriminator.
func NewLoginField(code, value, name string, designation *string) (LoginField, error) {
	return newLoginField("", code, value, name, designation)
}

func newLoginField(path, code, value, name string, designation *string) (LoginField, error) {
	f := field{value: value, name: name, designation: cloneString(designation)}
	switch code {
	case "T":
		return TextField{f}, nil
	case "P":
		return PasswordField{f}, nil
	case "I":
		return InfoField{f}, nil
	case "C":
		return CheckboxField{f}, nil
	case "B":
		return ButtonField{f}, nil
	default:
		return nil, invalidDiscriminator(path, "type", code)
	}
}

// HTMLForm describes the HTML form a login was captured from.
type HTMLForm struct {
	id     *string
	name   *string
	method string
}

// NewHTMLForm creates a form descriptor; id and name may be nil.
func NewHTMLForm(method string, id, name *string) HTMLForm {
	return HTMLForm{id: cloneString(id), name: cloneString(name), method: method}
}

func (f HTMLForm) ID() (string, bool)   { return deref(f.id) }
func (f HTMLForm) Name() (string, bool) { return deref(f.name) }
func (f HTMLForm) Method() string       { return f.method }

// LoginRecord — расшифрованная деталь login-записи: необязательная форма и поля в исходном порядке.
type LoginRecord struct {
	form   *HTMLForm
	fields []LoginField
}

// NewLoginRecord creates a record; form may be nil. The fields slice is copied.
func NewLoginRecord(form *HTMLForm, fields ...LoginField) LoginRecord {
	r := LoginRecord{fields: append(make([]LoginField, 0, len(fields)), fields...)}
	if form != nil {
		f := *form
		r.form = &f
	}
	return r
}

// HTMLForm returns the form descriptor, if present.
func (r LoginRecord) HTMLForm() (HTMLForm, bool) {
	if r.form == nil {
		return HTMLForm{}, false
	}
	return *r.form, true
}

// Fields returns a copy of the fields in document order.
func (r LoginRecord) Fields() []LoginField { return slices.Clone(r.fields) }

// Len returns the number of fields.
func (r LoginRecord) Len() int { return len(r.fields) }

// Field returns the i-th field.
func (r LoginRecord) Field(i int) LoginField { return r.fields[i] }

func (LoginRecord) isDetail() {}

var (
	loginSchema = objectSchema{
		optional("htmlForm", JSONObject),
		required("fields", JSONArray),
	}
	htmlFormSchema = objectSchema{
		optional("htmlId", JSONString),
		optional("htmlName", JSONString),
		required("htmlMethod", JSONString),
	}
	loginFieldSchema = objectSchema{
		required("type", JSONString),
		required("value", JSONString),
		required("name", JSONString),
		optional("designation", JSONString),
	}
)

// DecodeLogin parses a login detail document. Decoding is closed-schema and fail-fast:
// the first problem aborts the decode and is returned as a *DecodeError.
func DecodeLogin(data []byte) (LoginRecord, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return LoginRecord{}, err
	}
	return decodeLogin(doc)
}

func decodeLogin(doc gjson.Result) (LoginRecord, error) {
	s, err := loginSchema.scan("", doc)
	if err != nil {
		return LoginRecord{}, err
	}
	var rec LoginRecord
	if v, ok := s.get("htmlForm"); ok {
		form, err := decodeHTMLForm(s.child("htmlForm"), v)
		if err != nil {
			return LoginRecord{}, err
		}
		rec.form = &form
	}
	fields, _ := s.get("fields")
	rec.fields, err = decodeEach(s.child("fields"), fields, decodeLoginField)
	if err != nil {
		return LoginRecord{}, err
	}
	return rec, nil
}

func decodeHTMLForm(path string, v gjson.Result) (HTMLForm, error) {
	s, err := htmlFormSchema.scan(path, v)
	if err != nil {
		return HTMLForm{}, err
	}
	return HTMLForm{
		id:     s.optStr("htmlId"),
		name:   s.optStr("htmlName"),
		method: s.str("htmlMethod"),
	}, nil
}

func decodeLoginField(path string, v gjson.Result) (LoginField, error) {
	s, err := loginFieldSchema.scan(path, v)
	if err != nil {
		return nil, err
	}
	return newLoginField(path, s.str("type"), s.str("value"), s.str("name"), s.optStr("designation"))
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
