package detail

import (
	"slices"

	"github.com/tidwall/gjson"
)

// SectionKind is the two-way discriminator of a section field ("k" key).
type SectionKind int

const (
	SectionString SectionKind = iota
	SectionConcealed
)

func (k SectionKind) String() string {
	if k == SectionConcealed {
		return "concealed"
	}
	return "string"
}

func parseSectionKind(path, code string) (SectionKind, error) {
	switch code {
	case "string":
		return SectionString, nil
	case "concealed":
		return SectionConcealed, nil
	default:
		return 0, invalidDiscriminator(path, "k", code)
	}
}

// SectionField is a key/value entry of a section.
type SectionField struct {
	kind  SectionKind
	name  string
	title *string
	value *string
}

// NewSectionField creates a section field; title and value may be nil.
func NewSectionField(kind SectionKind, name string, title, value *string) SectionField {
	return SectionField{kind: kind, name: name, title: cloneString(title), value: cloneString(value)}
}

func (f SectionField) Kind() SectionKind     { return f.kind }
func (f SectionField) Name() string          { return f.name }
func (f SectionField) Title() (string, bool) { return deref(f.title) }
func (f SectionField) Value() (string, bool) { return deref(f.value) }

// Section is a named, titled group of fields of a generic item.
type Section struct {
	name   string
	title  *string
	fields []SectionField
}

// NewSection creates a section; title may be nil.
func NewSection(name string, title *string, fields ...SectionField) Section {
	return Section{name: name, title: cloneString(title), fields: append(make([]SectionField, 0, len(fields)), fields...)}
}

func (s Section) Name() string           { return s.name }
func (s Section) Title() (string, bool)  { return deref(s.title) }
func (s Section) Fields() []SectionField { return slices.Clone(s.fields) }

// GenericRecord is the detail of every category without a dedicated layout.
type GenericRecord struct {
	sections []Section
	notes    *string
}

// NewGenericRecord creates a generic record; notes may be nil.
func NewGenericRecord(notes *string, sections ...Section) GenericRecord {
	return GenericRecord{sections: append(make([]Section, 0, len(sections)), sections...), notes: cloneString(notes)}
}

func (r GenericRecord) Sections() []Section   { return slices.Clone(r.sections) }
func (r GenericRecord) Notes() (string, bool) { return deref(r.notes) }

func (GenericRecord) isDetail() {}

// PasswordRecord is the detail of a standalone password item.
type PasswordRecord struct {
	password string
	notes    *string
}

// NewPasswordRecord creates a password record; notes may be nil.
func NewPasswordRecord(password string, notes *string) PasswordRecord {
	return PasswordRecord{password: password, notes: cloneString(notes)}
}

// Password returns the raw password. Callers must not display or log it.
func (r PasswordRecord) Password() string      { return r.password }
func (r PasswordRecord) Notes() (string, bool) { return deref(r.notes) }

func (PasswordRecord) isDetail() {}

var (
	genericSchema = objectSchema{
		optional("sections", JSONArray),
		optional("notesPlain", JSONString),
	}
	sectionSchema = objectSchema{
		required("name", JSONString),
		optional("title", JSONString),
		optional("fields", JSONArray),
	}
	sectionFieldSchema = objectSchema{
		required("k", JSONString),
		required("n", JSONString),
		optional("t", JSONString),
		optional("v", JSONString),
	}
	passwordSchema = objectSchema{
		required("password", JSONString),
		optional("notesPlain", JSONString),
	}
)

// DecodeGeneric parses a sectioned detail document with the same closed-schema rules as DecodeLogin.
func DecodeGeneric(data []byte) (GenericRecord, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return GenericRecord{}, err
	}
	return decodeGeneric(doc)
}

func decodeGeneric(doc gjson.Result) (GenericRecord, error) {
	s, err := genericSchema.scan("", doc)
	if err != nil {
		return GenericRecord{}, err
	}
	rec := GenericRecord{notes: s.optStr("notesPlain"), sections: []Section{}}
	if v, ok := s.get("sections"); ok {
		rec.sections, err = decodeEach(s.child("sections"), v, decodeSection)
		if err != nil {
			return GenericRecord{}, err
		}
	}
	return rec, nil
}

func decodeSection(path string, v gjson.Result) (Section, error) {
	s, err := sectionSchema.scan(path, v)
	if err != nil {
		return Section{}, err
	}
	sec := Section{name: s.str("name"), title: s.optStr("title"), fields: []SectionField{}}
	if arr, ok := s.get("fields"); ok {
		sec.fields, err = decodeEach(s.child("fields"), arr, decodeSectionField)
		if err != nil {
			return Section{}, err
		}
	}
	return sec, nil
}

func decodeSectionField(path string, v gjson.Result) (SectionField, error) {
	s, err := sectionFieldSchema.scan(path, v)
	if err != nil {
		return SectionField{}, err
	}
	kind, err := parseSectionKind(path, s.str("k"))
	if err != nil {
		return SectionField{}, err
	}
	return SectionField{kind: kind, name: s.str("n"), title: s.optStr("t"), value: s.optStr("v")}, nil
}

// DecodePassword parses the detail of a password item.
func DecodePassword(data []byte) (PasswordRecord, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return PasswordRecord{}, err
	}
	s, err := passwordSchema.scan("", doc)
	if err != nil {
		return PasswordRecord{}, err
	}
	return PasswordRecord{password: s.str("password"), notes: s.optStr("notesPlain")}, nil
}
