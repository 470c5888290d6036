// Package resolve maps raw law mentions to authoritative catalog
// entries: first deterministically via precise regex, then through the
// external oracle for whatever remains.
package resolve

import (
	"fmt"
	"os"
	"regexp"

	"github.com/lexmex/mencion/internal/catalog"
	"github.com/lexmex/mencion/internal/model"
	"github.com/lexmex/mencion/internal/patterns"
)

// Exclusion phrases: when one of these immediately precedes the matched
// law name, the mention's primary subject is a different document type
// ("Reglamento de la Ley X" is a regulation, not the law itself).
var exclusionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bReglamento\s+de\s+la\s+$`),
	regexp.MustCompile(`(?i)\bReglamento\s+$`),
	regexp.MustCompile(`(?i)\bCódigo\s+$`),
	regexp.MustCompile(`(?i)\bCodigo\s+$`),
	regexp.MustCompile(`(?i)\bNorma\s+$`),
	regexp.MustCompile(`(?i)\bDecreto\s+$`),
}

// RegexStats summarizes the deterministic stage. ProperNames counts
// unresolved mentions shaped like proper official law names; those are
// the ones worth an oracle call.
type RegexStats struct {
	Total       int
	Resolved    int
	Unresolved  int
	ProperNames int
}

// PercentResolved returns the share of mentions the regex stage
// settled without an oracle call.
func (s RegexStats) PercentResolved() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Resolved) / float64(s.Total) * 100
}

// RegexResolver resolves mentions whose text contains a catalog-known
// official name as its head noun phrase.
type RegexResolver struct {
	patterns []patterns.CatalogPattern
	catalog  *catalog.Catalog
	verbose  bool
}

// NewRegexResolver creates a resolver over the combined ordered
// catalog pattern list (federal + local). When a catalog is given,
// resolved rows also carry the doc_id of the matched official name.
func NewRegexResolver(catalogPatterns []patterns.CatalogPattern, cat *catalog.Catalog, verbose bool) *RegexResolver {
	return &RegexResolver{patterns: catalogPatterns, catalog: cat, verbose: verbose}
}

// Resolve splits mentions into (unresolved, resolved). A mention is
// resolved on the first catalog pattern that matches its entity text
// without an exclusion phrase directly before the match; resolved rows
// carry the pattern's canonical name and match quality "safe".
func (r *RegexResolver) Resolve(mentions []model.Mention) (unresolved []model.Mention, resolved []model.ResolutionResult, stats RegexStats) {
	stats.Total = len(mentions)

	for _, m := range mentions {
		canonical, ok := r.matchOne(m.EntityText)
		if !ok {
			unresolved = append(unresolved, m)
			if LooksLikeProperLawName(m.EntityText) {
				stats.ProperNames++
			}
			continue
		}
		res := model.ResolutionResult{
			ArtID:            m.ArtID,
			EntityText:       m.EntityText,
			CDMXOfficialName: canonical,
			MatchQuality:     model.MatchSafe,
			OracleResponse:   "regex",
		}
		if r.catalog != nil {
			if entry, found := r.catalog.LookupName(canonical); found {
				res.CDMXDocID = entry.DocID
			}
		}
		resolved = append(resolved, res)
	}

	stats.Resolved = len(resolved)
	stats.Unresolved = len(unresolved)

	if r.verbose {
		fmt.Fprintf(os.Stderr, "regex stage: %d mentions, %d resolved (%.1f%%), %d for oracle (%d look like proper law names)\n",
			stats.Total, stats.Resolved, stats.PercentResolved(), stats.Unresolved, stats.ProperNames)
	}
	return unresolved, resolved, stats
}

// matchOne tries every catalog pattern against the entity text and
// returns the canonical name of the first acceptable match.
func (r *RegexResolver) matchOne(entityText string) (string, bool) {
	for _, cp := range r.patterns {
		loc := cp.Re.FindStringIndex(entityText)
		if loc == nil {
			continue
		}
		if excludedBefore(entityText[:loc[0]]) {
			// The law name is an embedded qualifier of another document
			// type; keep trying other patterns.
			continue
		}
		return cp.Canonical, true
	}
	return "", false
}

// excludedBefore reports whether the text preceding a match ends with
// an exclusion phrase.
func excludedBefore(before string) bool {
	for _, re := range exclusionRes {
		if re.MatchString(before) {
			return true
		}
	}
	return false
}
