package secret

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func TestValue_NeverFormatsRaw(t *testing.T) {
	v := New("hunter2")

	for _, verb := range []string{"%v", "%+v", "%#v", "%s", "%q", "%x", "%d"} {
		out := fmt.Sprintf(verb, v)
		assert.NotContains(t, out, "hunter2", verb)
	}
	assert.Equal(t, Mask, v.String())
	assert.Equal(t, Mask, fmt.Sprint(v))
	assert.NotContains(t, fmt.Sprintf("%v", struct{ S Value }{v}), "hunter2")
	assert.NotContains(t, fmt.Errorf("failed with %v", v).Error(), "hunter2")
}

func TestValue_JSONAndText(t *testing.T) {
	b, err := json.Marshal(map[string]any{"secret": New("hunter2")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"secret":"********"}`, string(b))

	txt, err := New("hunter2").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, Mask, string(txt))
}

func TestValue_MaskDoesNotLeakLength(t *testing.T) {
	assert.Equal(t, New("").String(), New("a much longer secret value").String())
}

func TestValue_NotLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	v := New("hunter2")
	logger.Info("structured", zap.Any("a", v), zap.Stringer("b", v), zap.Object("c", v))
	logger.Sugar().Infow("sugared", "d", v)
	logger.Sugar().Infof("formatted %v %s", v, v)

	require.Equal(t, 3, logs.Len())
	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, "hunter2")
		for k, field := range entry.ContextMap() {
			assert.NotContains(t, fmt.Sprint(field), "hunter2", k)
		}
	}
}

func TestValue_RevealAndCopy(t *testing.T) {
	v := New("hunter2")
	assert.Equal(t, "hunter2", v.Reveal())

	cb := &fakeClipboard{}
	require.NoError(t, v.CopyTo(cb))
	assert.Equal(t, "hunter2", cb.text)

	assert.ErrorIs(t, v.CopyTo(nil), ErrNoClipboard)

	boom := errors.New("no display")
	err := v.CopyTo(&fakeClipboard{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, err.Error(), "hunter2")
}
