package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "canva-pro", Slugify("Canva Pro!!"))
	assert.Equal(t, "1-year-plan", Slugify(" 1 Year  Plan "))
	assert.Equal(t, "netflix", Slugify("Netflix"))
	assert.Equal(t, "a-b-c", Slugify("a__b++c"))
}

func TestSlugifyFoldsDiacritics(t *testing.T) {
	assert.Equal(t, "cafe-pro", Slugify("Café Pro"))
	assert.Equal(t, "uber-strasse", Slugify("Über Straße"))
	assert.Equal(t, "senorita", Slugify("Señorita"))
}

func TestSlugifyDeterministic(t *testing.T) {
	first := Slugify("Canva Pro!!")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Slugify("Canva Pro!!"))
	}
}

func TestSlugifyEmptyFallback(t *testing.T) {
	slug := Slugify("!!!")
	require.True(t, strings.HasPrefix(slug, "n-a-"), "got %q", slug)
	assert.Len(t, slug, len("n-a-")+3)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my-logo_v2.png", SanitizeFilename("my-logo_v2.png"))
	assert.Equal(t, "weirdname.jpg", SanitizeFilename("weird name!?.jpg"))
	assert.Equal(t, "", SanitizeFilename("???"))
}

func TestUploadFilenamePrefix(t *testing.T) {
	name := UploadFilename("product-", "shot.png")
	assert.True(t, strings.HasPrefix(name, "product-"))
	assert.True(t, strings.HasSuffix(name, "-shot.png"))
}

func TestNewOrderNumberDistinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := NewOrderNumber()
		require.False(t, seen[n], "duplicate order number %q", n)
		seen[n] = true
	}
}
