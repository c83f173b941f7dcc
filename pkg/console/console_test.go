package console

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	c := New(&out, &errOut)

	c.Printf("Agregado: %s", "a.js")
	c.Warnf("❌ Error en %s: %v", "b.js", "boom")

	assert.Equal(t, "Agregado: a.js\n", out.String())
	assert.Equal(t, "❌ Error en b.js: boom\n", errOut.String())
}

func TestDiscard(t *testing.T) {
	c := Discard()
	assert.Equal(t, io.Discard, c.Out)
	assert.Equal(t, io.Discard, c.Err)

	assert.NotPanics(t, func() {
		c.Printf("dropped %d", 1)
		c.Warnf("dropped %d", 2)
	})
}
