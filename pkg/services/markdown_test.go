package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTML([]byte("# Title\n\nsome *text*"))
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "<em>text</em>")
}

func TestToHTMLSanitizesRawHTML(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTML([]byte("hello <script>alert(1)</script> world"))
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}

func TestToHTMLGFMTable(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTML([]byte("| a | b |\n|---|---|\n| 1 | 2 |"))
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}
