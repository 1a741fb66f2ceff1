package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	assert.Equal(t, "a\tb\nc\r", Unescape(`a\tb\nc\r`))
	assert.Equal(t, `q"x\`, Unescape(`q\"x\\`))
	assert.Equal(t, "plain", Unescape("plain"))
}

func TestLiteralValue(t *testing.T) {
	v, ok := StringLit(`x\ny`).Value()
	assert.True(t, ok)
	s, _ := v.AsString()
	assert.Equal(t, "x\ny", s)
	_, ok = VarLit("w").Value()
	assert.False(t, ok, "variable bindings carry no value")
}

func TestErrorPosition(t *testing.T) {
	err := Errorf(Position{Line: 3, Column: 7}, "Unknown style key %q", "colour")
	assert.Equal(t, `3:7: Unknown style key "colour"`, err.Error())
	err = Errorf(Position{}, "oops")
	assert.Equal(t, "oops", err.Error())
}
