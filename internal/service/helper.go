package service

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// slugFold transliterates the Latin diacritics that actually show up in
// product names ("Café" -> "cafe"). Runes outside the map and outside
// ASCII are dropped.
var slugFold = map[rune]string{
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a", 'æ': "ae",
	'ç': "c",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i",
	'ñ': "n",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o", 'ø': "o",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u",
	'ý': "y", 'ÿ': "y",
	'ß': "ss",
}

// Slugify derives a URL-safe, lowercase, hyphenated slug from a display
// name. Common Latin diacritics fold to their ASCII forms, non-alphanumeric
// runs collapse into single hyphens and anything else outside ASCII is
// dropped. An empty result falls back to a randomized "n-a-<digits>"
// placeholder so routing never sees an empty slug.
//
// Collisions are intentionally not checked; the last writer's slug can
// shadow another's in routing.
func Slugify(text string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(text) {
		if folded, ok := slugFold[r]; ok {
			b.WriteString(folded)
			lastHyphen = false
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return fmt.Sprintf("n-a-%d", 100+rand.Intn(900))
	}
	return slug
}

// SanitizeFilename strips everything outside [A-Za-z0-9-_.] from an
// uploaded file's original name.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UploadFilename builds the stored name for an uploaded image: a type tag,
// a uniqueness token and the sanitized original name.
func UploadFilename(prefix, original string) string {
	token := uuid.New().String()[:8]
	return fmt.Sprintf("%s%d-%s-%s", prefix, time.Now().Unix(), token, SanitizeFilename(original))
}

// NewOrderNumber generates the external order identifier: wall-clock
// seconds for customer familiarity plus a random fragment so two orders in
// the same second still get distinct ids. A unique index on the column is
// the backstop.
func NewOrderNumber() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
