package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownLiteBoldAndNewlines(t *testing.T) {
	out := string(MarkdownLite("Get **instant** access\nNo waiting"))
	assert.Equal(t, "Get <strong>instant</strong> access<br>No waiting", out)
}

func TestMarkdownLiteEscapesHTML(t *testing.T) {
	out := string(MarkdownLite("<script>alert(1)</script> & **x**"))
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt; &amp; <strong>x</strong>", out)
}

func TestMarkdownLiteUnbalancedMarker(t *testing.T) {
	out := string(MarkdownLite("**open"))
	assert.Equal(t, "<strong>open</strong>", out)
}

func TestMarkdownLitePlainText(t *testing.T) {
	out := string(MarkdownLite("plain"))
	assert.Equal(t, "plain", out)
}
