package classify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sekkrit/internal/detail"
)

func strPtr(s string) *string { return &s }

func mustField(t *testing.T, code, value, name string, designation *string) detail.LoginField {
	t.Helper()
	f, err := detail.NewLoginField(code, value, name, designation)
	require.NoError(t, err)
	return f
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		field func(t *testing.T) detail.LoginField
		want  Directive
	}{
		{
			name:  "password variant",
			field: func(t *testing.T) detail.LoginField { return mustField(t, "P", "s3cr3t", "pwd", strPtr("Password")) },
			want:  Directive{Label: "Password", Sensitivity: Secret, Kind: Masked},
		},
		{
			name:  "text named password is secret",
			field: func(t *testing.T) detail.LoginField { return mustField(t, "T", "hunter2", "password", nil) },
			want:  Directive{Label: "password", Sensitivity: Secret, Kind: Masked},
		},
		{
			name:  "text named password with designation",
			field: func(t *testing.T) detail.LoginField { return mustField(t, "T", "hunter2", "password", strPtr("Login")) },
			want:  Directive{Label: "Login", Sensitivity: Secret, Kind: Masked},
		},
		{
			name:  "match is case sensitive",
			field: func(t *testing.T) detail.LoginField { return mustField(t, "T", "x", "Password", nil) },
			want:  Directive{Label: "Password", Sensitivity: Public, Kind: Pair},
		},
		{
			name:  "match is not a substring check",
			field: func(t *testing.T) detail.LoginField { return mustField(t, "T", "x", "password_confirm", nil) },
			want:  Directive{Label: "password_confirm", Sensitivity: Public, Kind: Pair},
		},
		{
			name:  "plain text",
			field: func(t *testing.T) detail.LoginField { return mustField(t, "T", "bob", "email", strPtr("username")) },
			want:  Directive{Label: "username", Sensitivity: Public, Kind: Pair},
		},
		{
			name:  "info",
			field: func(t *testing.T) detail.LoginField { return mustField(t, "I", "hint", "info", nil) },
			want:  Directive{Label: "info", Sensitivity: Public, Kind: Pair},
		},
		{
			name:  "info named password stays public",
			field: func(t *testing.T) detail.LoginField { return mustField(t, "I", "x", "password", nil) },
			want:  Directive{Label: "password", Sensitivity: Public, Kind: Pair},
		},
		{
			name:  "checkbox",
			field: func(t *testing.T) detail.LoginField { return mustField(t, "C", "Y", "remember", strPtr("Remember me")) },
			want:  Directive{Label: "Remember me", Sensitivity: Public, Kind: Hidden},
		},
		{
			name:  "button",
			field: func(t *testing.T) detail.LoginField { return mustField(t, "B", "Go", "submit", nil) },
			want:  Directive{Label: "submit", Sensitivity: Public, Kind: Hidden},
		},
		{
			name:  "empty designation falls back to name",
			field: func(t *testing.T) detail.LoginField { return mustField(t, "T", "bob", "user", strPtr("")) },
			want:  Directive{Label: "user", Sensitivity: Public, Kind: Pair},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.field(t))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Classify() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassify_PasswordAlwaysSecret(t *testing.T) {
	for _, value := range []string{"", " ", "public-looking", "ünïcødé", "a\nb"} {
		for _, name := range []string{"", "password", "pin", "username"} {
			d := Classify(mustField(t, "P", value, name, nil))
			assert.Equal(t, Secret, d.Sensitivity)
			assert.Equal(t, Masked, d.Kind)
		}
	}
}

func TestClassify_TextSensitivityDependsOnlyOnName(t *testing.T) {
	for _, designation := range []*string{nil, strPtr(""), strPtr("Password"), strPtr("username")} {
		assert.Equal(t, Secret, Classify(mustField(t, "T", "v", "password", designation)).Sensitivity)
		assert.Equal(t, Public, Classify(mustField(t, "T", "v", "login", designation)).Sensitivity)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	f := mustField(t, "T", "v", "password", strPtr("Pass"))
	assert.Equal(t, Classify(f), Classify(f))
}

func TestClassify_EndToEnd(t *testing.T) {
	rec, err := detail.DecodeLogin([]byte(`{"htmlForm":{"htmlMethod":"post"},"fields":[{"type":"P","value":"s3cr3t","name":"pwd","designation":"Password"}]}`))
	require.NoError(t, err)
	require.Equal(t, 1, rec.Len())

	d := Classify(rec.Field(0))
	assert.Equal(t, "Password", d.Label)
	assert.Equal(t, Secret, d.Sensitivity)
	assert.Equal(t, Masked, d.Kind)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "secret", Secret.String())
	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "pair", Pair.String())
	assert.Equal(t, "masked", Masked.String())
	assert.Equal(t, "hidden", Hidden.String())
}
