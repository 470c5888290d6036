// Package patterns holds the static regex pattern library. Patterns are
// data, not code: new law patterns are added here without touching the
// extraction logic.
package patterns

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Pattern pairs a compiled regex with the entity label it emits.
type Pattern struct {
	Re    *regexp.Regexp
	Label string
}

// Group is an ordered collection of patterns for one semantic category.
// Scan order within a group is the slice order: most-specific-first for
// groups with specificity tiers.
type Group struct {
	Name     string
	Patterns []Pattern
}

// CatalogPattern is a precise official-catalog pattern. Beyond the label
// (category) it carries the canonical law name used as ground truth.
type CatalogPattern struct {
	Re        *regexp.Regexp
	Canonical string
	Category  string
}

// compileGroup compiles (expr, label) pairs case-insensitively. A
// malformed expression is reported and skipped; the rest still compile.
func compileGroup(name string, pairs [][2]string) Group {
	g := Group{Name: name}
	for _, p := range pairs {
		re, err := regexp.Compile("(?i)" + p[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "regex error in %s (%s): %v\n", name, p[1], err)
			continue
		}
		g.Patterns = append(g.Patterns, Pattern{Re: re, Label: p[1]})
	}
	return g
}

// compileCatalog compiles (expr, canonical, category) triples and sorts
// them by expression length descending so the most specific official
// name is tried first.
func compileCatalog(triples [][3]string) []CatalogPattern {
	sorted := make([][3]string, len(triples))
	copy(sorted, triples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i][0]) > len(sorted[j][0])
	})

	var out []CatalogPattern
	for _, t := range sorted {
		re, err := regexp.Compile("(?i)" + t[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "regex error in catalog (%s): %v\n", t[1], err)
			continue
		}
		out = append(out, CatalogPattern{Re: re, Canonical: t[1], Category: t[2]})
	}
	return out
}

// accentClasses maps each vowel to a character class accepting its
// accented form, so catalog-derived patterns match corpus text whether
// or not the source kept its accents.
var accentClasses = strings.NewReplacer(
	"á", "[aá]", "é", "[eé]", "í", "[ií]", "ó", "[oó]", "ú", "[uú]",
	"a", "[aá]", "e", "[eé]", "i", "[ií]", "o", "[oó]", "u", "[uú]",
)

// FromCatalog derives a precise CatalogPattern from a canonical name.
// Whitespace becomes \s+, vowels accept accented variants and regex
// metacharacters are escaped, so a catalog row can extend the precise
// pattern set without hand-writing a regex.
func FromCatalog(canonical, category string) (CatalogPattern, error) {
	var b strings.Builder
	b.WriteString(`\b`)
	for _, field := range strings.Fields(canonical) {
		if b.Len() > 2 {
			b.WriteString(`\s+`)
		}
		b.WriteString(accentClasses.Replace(regexp.QuoteMeta(strings.ToLower(field))))
	}
	re, err := regexp.Compile("(?i)" + b.String())
	if err != nil {
		return CatalogPattern{}, fmt.Errorf("derive pattern for %q: %w", canonical, err)
	}
	return CatalogPattern{Re: re, Canonical: canonical, Category: category}, nil
}
