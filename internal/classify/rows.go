package classify

import (
	"Sekkrit/internal/detail"
	"Sekkrit/internal/secret"
)

// Row is one rendered line of an item detail. Public rows carry Text; secret rows
// carry only Secret. Headings are section titles without a value.
type Row struct {
	Directive
	Text    string
	Secret  *secret.Value
	Heading bool
}

const notesLabel = "notes"

// Rows flattens a decoded detail into display rows, in document order.
// Hidden fields produce no row.
func Rows(d detail.Detail) []Row {
	var rows []Row
	switch rec := d.(type) {
	case detail.LoginRecord:
		for _, f := range rec.Fields() {
			rows = appendRow(rows, Classify(f), f.Value())
		}
	case detail.PasswordRecord:
		rows = appendRow(rows, ClassifyPassword(rec), rec.Password())
		rows = appendNotes(rows, rec.Notes)
	case detail.GenericRecord:
		for _, s := range rec.Sections() {
			if h, ok := SectionHeading(s); ok {
				rows = append(rows, Row{Directive: Directive{Label: h, Kind: Pair}, Heading: true})
			}
			for _, f := range s.Fields() {
				v, _ := f.Value()
				rows = appendRow(rows, ClassifySection(f), v)
			}
		}
		rows = appendNotes(rows, rec.Notes)
	}
	return rows
}

func appendRow(rows []Row, d Directive, value string) []Row {
	switch d.Kind {
	case Hidden:
		return rows
	case Masked:
		s := secret.New(value)
		return append(rows, Row{Directive: d, Secret: &s})
	default:
		return append(rows, Row{Directive: d, Text: value})
	}
}

func appendNotes(rows []Row, notes func() (string, bool)) []Row {
	n, ok := notes()
	if !ok || n == "" {
		return rows
	}
	return appendRow(rows, Directive{Label: notesLabel, Sensitivity: Public, Kind: Pair}, n)
}
