package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGeneric(t *testing.T) {
	in := `{"sections":[
		{"name":"","title":"","fields":[]},
		{"name":"admin","title":"Admin Console","fields":[
			{"k":"string","n":"console_user","t":"console user","v":"root"},
			{"k":"concealed","n":"console_pw","t":"console password","v":"toor"},
			{"k":"string","n":"empty"}
		]},
		{"name":"extra"}
	],"notesPlain":"rotate monthly"}`

	rec, err := DecodeGeneric([]byte(in))
	require.NoError(t, err)

	secs := rec.Sections()
	require.Len(t, secs, 3)
	assert.Equal(t, "admin", secs[1].Name())
	title, ok := secs[1].Title()
	assert.True(t, ok)
	assert.Equal(t, "Admin Console", title)

	fields := secs[1].Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, SectionString, fields[0].Kind())
	assert.Equal(t, SectionConcealed, fields[1].Kind())
	v, ok := fields[1].Value()
	assert.True(t, ok)
	assert.Equal(t, "toor", v)
	_, ok = fields[2].Value()
	assert.False(t, ok)
	_, ok = fields[2].Title()
	assert.False(t, ok)

	assert.Empty(t, secs[2].Fields())
	_, ok = secs[2].Title()
	assert.False(t, ok)

	notes, ok := rec.Notes()
	assert.True(t, ok)
	assert.Equal(t, "rotate monthly", notes)
}

func TestDecodeGeneric_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		sentinel error
		key      string
		path     string
	}{
		{"bad kind", `{"sections":[{"name":"s","fields":[{"k":"date","n":"x"}]}]}`, ErrInvalidDiscriminator, "k", "sections[0].fields[0]"},
		{"missing n", `{"sections":[{"name":"s","fields":[{"k":"string"}]}]}`, ErrMissingField, "n", "sections[0].fields[0]"},
		{"duplicate v", `{"sections":[{"name":"s","fields":[{"k":"string","n":"a","v":"1","v":"2"}]}]}`, ErrDuplicateField, "v", "sections[0].fields[0]"},
		{"unknown section key", `{"sections":[{"name":"s","hidden":true}]}`, ErrUnknownField, "hidden", "sections[0]"},
		{"section name required", `{"sections":[{"title":"t"}]}`, ErrMissingField, "name", "sections[0]"},
		{"numeric value", `{"sections":[{"name":"s","fields":[{"k":"string","n":"a","v":5}]}]}`, ErrTypeMismatch, "v", "sections[0].fields[0]"},
		{"unknown top-level key", `{"sections":[],"fields":[]}`, ErrUnknownField, "fields", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeGeneric([]byte(tt.in))
			assert.ErrorIs(t, err, tt.sentinel)
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.key, de.Key)
			assert.Equal(t, tt.path, de.Path)
		})
	}
}

func TestDecodePassword(t *testing.T) {
	rec, err := DecodePassword([]byte(`{"password":"p@ss"}`))
	require.NoError(t, err)
	assert.Equal(t, "p@ss", rec.Password())
	_, ok := rec.Notes()
	assert.False(t, ok)

	_, err = DecodePassword([]byte(`{}`))
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = DecodePassword([]byte(`{"password":"a","password":"b"}`))
	assert.ErrorIs(t, err, ErrDuplicateField)
}

func TestDecodeDetail_DispatchesByCategory(t *testing.T) {
	d, err := DecodeDetail(CategoryLogin, []byte(`{"fields":[]}`))
	require.NoError(t, err)
	assert.IsType(t, LoginRecord{}, d)

	d, err = DecodeDetail(CategoryPassword, []byte(`{"password":"x"}`))
	require.NoError(t, err)
	assert.IsType(t, PasswordRecord{}, d)

	d, err = DecodeDetail(CategoryServer, []byte(`{"sections":[]}`))
	require.NoError(t, err)
	assert.IsType(t, GenericRecord{}, d)

	d, err = DecodeDetail(Category("777"), []byte(`{}`))
	assert.ErrorIs(t, err, ErrInvalidDiscriminator)
	assert.Nil(t, d)

	d, err = DecodeDetail(CategoryLogin, []byte(`{"sections":[]}`))
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Nil(t, d)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("001")
	require.NoError(t, err)
	assert.Equal(t, CategoryLogin, c)

	c, err = ParseCategory(" Bank-Account ")
	require.NoError(t, err)
	assert.Equal(t, CategoryBankAccount, c)
	assert.Equal(t, "bank-account", c.String())

	_, err = ParseCategory("wallet")
	assert.ErrorIs(t, err, ErrInvalidDiscriminator)
}

func TestCategory_Icon(t *testing.T) {
	assert.Equal(t, "dialog-password", CategoryLogin.Icon())
	assert.Equal(t, "dialog-password", CategoryPassword.Icon())
	assert.Equal(t, "vcard", CategoryIdentity.Icon())
	assert.Equal(t, "edit-delete", CategoryTombstone.Icon())
	assert.Equal(t, "drive-multidisk", CategoryDatabase.Icon())
	assert.Equal(t, "mail-read", CategoryEmail.Icon())
	assert.Equal(t, "pda", CategoryRouter.Icon())
}
