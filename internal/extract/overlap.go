package extract

import (
	"sort"

	"github.com/lexmex/mencion/internal/model"
)

// MatchSpan carries a mention plus its character offsets. Offsets exist
// only during overlap resolution and are stripped before a Mention is
// persisted.
type MatchSpan struct {
	Start   int
	End     int
	Mention model.Mention
}

// contains reports whether b is strictly contained in a: inside a's
// bounds but not identical to it.
func contains(a, b MatchSpan) bool {
	if a.Start == b.Start && a.End == b.End {
		return false
	}
	return a.Start <= b.Start && b.End <= a.End
}

// ResolveOverlaps keeps only maximal spans within one document's match
// set: spans strictly contained in an accepted span are discarded, and
// an accepted span is retroactively evicted when a later candidate
// strictly contains it. Spans that merely overlap without containment
// are all kept. Idempotent.
func ResolveOverlaps(matches []MatchSpan) []MatchSpan {
	if len(matches) == 0 {
		return matches
	}

	sorted := make([]MatchSpan, len(matches))
	copy(sorted, matches)
	// Earliest start first; on tied starts the longest span first, so a
	// containing span is normally seen before its subsets.
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End-sorted[i].Start > sorted[j].End-sorted[j].Start
	})

	var accepted []MatchSpan
	for _, cur := range sorted {
		isContained := false
		for _, a := range accepted {
			if contains(a, cur) {
				isContained = true
				break
			}
		}
		if isContained {
			continue
		}

		// Evict accepted spans the candidate strictly contains. The sort
		// makes this rare, but multi-group concatenation does not
		// guarantee the containing span is always processed first.
		kept := accepted[:0]
		for _, a := range accepted {
			if !contains(cur, a) {
				kept = append(kept, a)
			}
		}
		accepted = append(kept, cur)
	}

	return accepted
}
