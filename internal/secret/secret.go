// Package secret holds decoded secret values. A Value never prints, logs or
// serializes its content; the raw string is only available through Reveal or CopyTo.
package secret

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/atotto/clipboard"
	"go.uber.org/zap/zapcore"
)

// Mask is shown wherever a secret would otherwise appear. Its length does not depend on the value.
const Mask = "********"

// ErrNoClipboard is returned by CopyTo when no clipboard is given.
var ErrNoClipboard = errors.New("no clipboard")

// Value is an opaque secret.
type Value struct {
	raw string
}

// New wraps raw.
func New(raw string) Value { return Value{raw: raw} }

// Reveal returns the raw secret. Call it only in response to an explicit user action.
func (v Value) Reveal() string { return v.raw }

func (v Value) String() string   { return Mask }
func (v Value) GoString() string { return "secret.Value{" + Mask + "}" }

// Format masks every verb, including %v, %+v, %#v and %q.
func (v Value) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		_, _ = io.WriteString(f, strconv.Quote(Mask))
	default:
		_, _ = io.WriteString(f, Mask)
	}
}

func (v Value) MarshalJSON() ([]byte, error) { return []byte(strconv.Quote(Mask)), nil }
func (v Value) MarshalText() ([]byte, error) { return []byte(Mask), nil }

// MarshalLogObject keeps the secret out of zap output when the value is logged with zap.Object or zap.Any.
func (v Value) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("value", Mask)
	return nil
}

// Clipboard receives revealed secrets.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the desktop clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// CopyTo hands the raw secret to c.
func (v Value) CopyTo(c Clipboard) error {
	if c == nil {
		return ErrNoClipboard
	}
	if err := c.WriteAll(v.raw); err != nil {
		return fmt.Errorf("copy secret: %w", err)
	}
	return nil
}
