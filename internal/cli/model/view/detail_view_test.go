package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sekkrit/internal/detail"
)

func TestBuild_NoDetail(t *testing.T) {
	v := Build(detail.CategoryPassword, nil)
	assert.False(t, v.HasDetail)
	assert.Empty(t, v.Rows)
	assert.Equal(t, detail.CategoryPassword.Icon(), v.Icon)
}

func TestBuild_LoginRowsAndSecrets(t *testing.T) {
	d, err := detail.DecodeDetail(detail.CategoryLogin, []byte(`{"fields":[
		{"type":"T","value":"bob","name":"username"},
		{"type":"P","value":"hunter2","name":"pwd","designation":"Password"},
		{"type":"C","value":"Y","name":"remember"}
	]}`))
	require.NoError(t, err)

	v := Build(detail.CategoryLogin, d)
	assert.True(t, v.HasDetail)
	require.Len(t, v.Rows, 2)
	assert.Equal(t, "username", v.Rows[0].Label)

	secrets := v.Secrets()
	require.Len(t, secrets, 1)
	assert.Equal(t, "Password", secrets[0].Label)
	assert.Equal(t, "hunter2", secrets[0].Secret.Reveal())
	assert.Empty(t, secrets[0].Text)
}
