// Package classify decides how each decoded detail field may be presented:
// its label, whether its value is secret, and which kind of row shows it.
package classify

import "Sekkrit/internal/detail"

// Sensitivity tells whether a value may be displayed.
type Sensitivity int

const (
	Public Sensitivity = iota
	Secret
)

func (s Sensitivity) String() string {
	if s == Secret {
		return "secret"
	}
	return "public"
}

// DisplayKind is the presentation a renderer must use for a field.
type DisplayKind int

const (
	// Pair is a plain label/value row.
	Pair DisplayKind = iota
	// Masked is a label with a hidden value that can only be copied.
	Masked
	// Hidden fields are structural only and are not rendered as rows.
	Hidden
)

func (k DisplayKind) String() string {
	switch k {
	case Pair:
		return "pair"
	case Masked:
		return "masked"
	default:
		return "hidden"
	}
}

// Directive is the presentation decision for one field.
type Directive struct {
	Label       string
	Sensitivity Sensitivity
	Kind        DisplayKind
}

// passwordFieldName — имя текстового поля, которое хранит пароль в некоторых экспортах.
// Сравнение точное и регистрозависимое.
const passwordFieldName = "password"

var (
	secretDirective = Directive{Sensitivity: Secret, Kind: Masked}
	pairDirective   = Directive{Sensitivity: Public, Kind: Pair}
	hiddenDirective = Directive{Sensitivity: Public, Kind: Hidden}
)

// Classify returns the directive for a login field. It is pure and total.
func Classify(f detail.LoginField) Directive {
	var d Directive
	switch f.Kind() {
	case detail.FieldPassword:
		d = secretDirective
	case detail.FieldText:
		if f.Name() == passwordFieldName {
			d = secretDirective
		} else {
			d = pairDirective
		}
	case detail.FieldInfo:
		d = pairDirective
	case detail.FieldCheckbox, detail.FieldButton:
		d = hiddenDirective
	default:
		// LoginField is sealed; fail closed anyway.
		d = secretDirective
	}
	d.Label = Label(f)
	return d
}

// Label returns the designation when it is present and non-empty, else the field name.
func Label(f detail.LoginField) string {
	if d, ok := f.Designation(); ok && d != "" {
		return d
	}
	return f.Name()
}
