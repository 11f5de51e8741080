package classify

import "Sekkrit/internal/detail"

// ClassifySection returns the directive for a field of a generic item section.
// Fields without a value are not shown.
func ClassifySection(f detail.SectionField) Directive {
	d := pairDirective
	if f.Kind() == detail.SectionConcealed {
		d = secretDirective
	}
	if _, ok := f.Value(); !ok {
		d = hiddenDirective
	}
	d.Label = f.Name()
	if t, ok := f.Title(); ok && t != "" {
		d.Label = t
	}
	return d
}

// SectionHeading returns the heading of a section. Unnamed or empty sections have none.
func SectionHeading(s detail.Section) (string, bool) {
	if s.Name() == "" || len(s.Fields()) == 0 {
		return "", false
	}
	if t, ok := s.Title(); ok && t != "" {
		return t, true
	}
	return s.Name(), true
}

// ClassifyPassword returns the directive for the value of a password item.
func ClassifyPassword(detail.PasswordRecord) Directive {
	d := secretDirective
	d.Label = passwordFieldName
	return d
}
