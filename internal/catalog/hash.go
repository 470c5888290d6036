package catalog

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DocumentHash derives an 8-character uppercase identifier from a
// document name, used when a catalog row or scraped document lacks an
// assigned doc_id.
func DocumentHash(documentName string) string {
	if strings.TrimSpace(documentName) == "" {
		return "UNKNOWN"
	}
	sum := md5.Sum([]byte(documentName))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:8])
}

var nonAlnum = regexp.MustCompile(`[^A-Z0-9]`)

// hashStopwords are articles and prepositions that vary between
// renderings of the same official name.
var hashStopwords = map[string]struct{}{
	"LA": {}, "EL": {}, "DE": {}, "DEL": {}, "LOS": {}, "LAS": {}, "UN": {}, "UNA": {},
}

// NormalizeForHash collapses a name to a stable uppercase alphanumeric
// key: accents stripped, stopwords removed, everything else joined.
func NormalizeForHash(text string) string {
	if strings.TrimSpace(text) == "" {
		return "EMPTY"
	}

	upper := RemoveAccents(strings.ToUpper(strings.TrimSpace(text)))

	var kept []string
	for _, word := range strings.Fields(upper) {
		word = nonAlnum.ReplaceAllString(word, "")
		if word == "" {
			continue
		}
		if _, stop := hashStopwords[word]; stop {
			continue
		}
		kept = append(kept, word)
	}

	key := strings.Join(kept, "")
	if key == "" {
		return "EMPTY"
	}
	return key
}

// RemoveAccents strips diacritical marks while keeping spaces and
// punctuation: "Ley de Educación Física" -> "Ley de Educacion Fisica".
func RemoveAccents(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

var nonAlnumAny = regexp.MustCompile(`[^a-zA-Z0-9]`)

// CleanSectionTitle reduces a section title to a short uppercase
// identifier fragment (max 13 chars by convention).
func CleanSectionTitle(title string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 13
	}
	clean := nonAlnumAny.ReplaceAllString(title, "")
	if len(clean) > maxLen {
		clean = clean[:maxLen]
	}
	clean = strings.ToUpper(clean)
	if clean == "" {
		return "NOSEC"
	}
	return clean
}
