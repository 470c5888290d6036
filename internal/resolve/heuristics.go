package resolve

import (
	"strings"
	"unicode"
)

// lowercaseInNames are words that legitimately stay lowercase inside an
// official law name.
var lowercaseInNames = map[string]struct{}{
	"de": {}, "del": {}, "la": {}, "las": {}, "los": {}, "el": {},
	"y": {}, "e": {}, "en": {}, "para": {}, "por": {}, "sobre": {}, "que": {},
}

// LooksLikeProperLawName reports whether a mention text is shaped like
// a proper official law name: "Ley" followed by a preposition and at
// least one capitalized content word. Used as a cheap signal when
// inspecting unresolved mentions; it never gates the oracle.
func LooksLikeProperLawName(text string) bool {
	words := strings.Fields(strings.TrimSpace(text))
	if len(words) < 2 {
		return false
	}

	if !strings.HasPrefix(words[0], "Ley") && !strings.HasPrefix(words[0], "LEY") {
		return false
	}

	switch strings.ToLower(words[1]) {
	case "de", "del", "para", "sobre", "que":
	default:
		return false
	}

	for _, w := range words[2:] {
		lower := strings.ToLower(w)
		if _, common := lowercaseInNames[lower]; common {
			continue
		}
		r := []rune(w)
		if len(r) > 0 && unicode.IsUpper(r[0]) {
			return true
		}
	}
	return false
}
