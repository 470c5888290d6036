package resolve

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/lexmex/mencion/internal/catalog"
	"github.com/lexmex/mencion/internal/llm"
	"github.com/lexmex/mencion/internal/model"
)

// cachedMatch is the per-entity-text oracle outcome fanned out to
// every row sharing that text.
type cachedMatch struct {
	OfficialName string
	DocID        string
	Quality      model.MatchQuality
	Response     string
}

// OracleStats summarizes one oracle resolution pass.
type OracleStats struct {
	Rows        int
	UniqueTexts int
	Calls       int
	Safe        int
	Ambiguous   int
	NoMatch     int
	Errors      int
	Elapsed     time.Duration
}

// OracleResolver runs the deduplicated oracle stage: one blocking,
// rate-spaced call per distinct entity text, cached and fanned out.
type OracleResolver struct {
	oracle  llm.Oracle
	catalog *catalog.Catalog
	cache   *gocache.Cache
	limiter *rate.Limiter
	verbose bool
}

// NewOracleResolver creates a resolver. delay is the fixed spacing
// between consecutive oracle calls; it throttles throughput and is not
// a retry/backoff mechanism.
func NewOracleResolver(oracle llm.Oracle, cat *catalog.Catalog, delay time.Duration, verbose bool) *OracleResolver {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if delay > 0 {
		limiter = rate.NewLimiter(rate.Every(delay), 1)
	}
	return &OracleResolver{
		oracle:  oracle,
		catalog: cat,
		cache:   gocache.New(gocache.NoExpiration, 0),
		limiter: limiter,
		verbose: verbose,
	}
}

// ResolveAll resolves every mention with a non-blank entity text.
// Oracle calls happen strictly sequentially, once per distinct text;
// the cached outcome is then mapped back to all originating rows,
// preserving each row's own art_id. A failed call records an error
// result for its text; there is no automatic retry.
func (r *OracleResolver) ResolveAll(ctx context.Context, mentions []model.Mention) ([]model.ResolutionResult, OracleStats) {
	start := time.Now()
	var stats OracleStats

	valid := make([]model.Mention, 0, len(mentions))
	var uniqueTexts []string
	seen := make(map[string]struct{})
	for _, m := range mentions {
		text := strings.TrimSpace(m.EntityText)
		if text == "" {
			continue
		}
		valid = append(valid, m)
		if _, dup := seen[text]; !dup {
			seen[text] = struct{}{}
			uniqueTexts = append(uniqueTexts, text)
		}
	}
	stats.Rows = len(valid)
	stats.UniqueTexts = len(uniqueTexts)

	if r.verbose {
		fmt.Fprintf(os.Stderr, "oracle stage: %d rows, %d unique mention texts (%d calls saved)\n",
			len(valid), len(uniqueTexts), len(valid)-len(uniqueTexts))
	}

	for i, text := range uniqueTexts {
		if _, hit := r.cache.Get(text); hit {
			continue
		}
		r.cache.Set(text, r.matchOnce(ctx, text), gocache.NoExpiration)
		stats.Calls++

		if r.verbose && (i+1)%10 == 0 {
			fmt.Fprintf(os.Stderr, "  progress: %d/%d unique texts, %.1f min elapsed\n",
				i+1, len(uniqueTexts), time.Since(start).Minutes())
		}
	}

	results := make([]model.ResolutionResult, 0, len(valid))
	for _, m := range valid {
		text := strings.TrimSpace(m.EntityText)
		res := model.ResolutionResult{ArtID: m.ArtID, EntityText: text}

		if v, hit := r.cache.Get(text); hit {
			cm := v.(cachedMatch)
			res.CDMXOfficialName = cm.OfficialName
			res.CDMXDocID = cm.DocID
			res.MatchQuality = cm.Quality
			res.OracleResponse = cm.Response
		} else {
			res.MatchQuality = model.MatchError
			res.OracleResponse = "not found in cache"
		}

		switch res.MatchQuality {
		case model.MatchSafe:
			stats.Safe++
		case model.MatchAmbiguous:
			stats.Ambiguous++
		case model.MatchNone:
			stats.NoMatch++
		default:
			stats.Errors++
		}
		results = append(results, res)
	}

	stats.Elapsed = time.Since(start)
	if r.verbose {
		printOracleStats(stats)
	}
	return results, stats
}

// matchOnce performs one spaced oracle call and classifies the
// response. Network failure and invalid returned ids both yield error
// outcomes; an invented id is never silently accepted.
func (r *OracleResolver) matchOnce(ctx context.Context, entityText string) cachedMatch {
	if err := r.limiter.Wait(ctx); err != nil {
		return cachedMatch{Quality: model.MatchError, Response: fmt.Sprintf("Error: %v", err)}
	}

	raw, err := r.oracle.MatchLaw(ctx, llm.MatchRequest{EntityText: entityText, Catalog: r.catalog})
	if err != nil {
		return cachedMatch{Quality: model.MatchError, Response: fmt.Sprintf("Error: %v", err)}
	}

	return classifyResponse(raw, r.catalog)
}

// classifyResponse parses the oracle's plain-text reply. Only the two
// structured prefixes are trusted; anything else is a no-match. A
// returned id must exist in the catalog.
func classifyResponse(raw string, cat *catalog.Catalog) cachedMatch {
	switch {
	case strings.HasPrefix(raw, "MATCH:"):
		return validateID(strings.TrimSpace(strings.TrimPrefix(raw, "MATCH:")), raw, model.MatchSafe, cat)
	case strings.HasPrefix(raw, "AMBIGUOUS:"):
		return validateID(strings.TrimSpace(strings.TrimPrefix(raw, "AMBIGUOUS:")), raw, model.MatchAmbiguous, cat)
	default:
		return cachedMatch{Quality: model.MatchNone, Response: raw}
	}
}

func validateID(docID, raw string, quality model.MatchQuality, cat *catalog.Catalog) cachedMatch {
	entry, ok := cat.Lookup(docID)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid doc_id returned by oracle: %q\n", docID)
		return cachedMatch{
			Quality:  model.MatchError,
			Response: fmt.Sprintf("Invalid doc_id: %s", docID),
		}
	}
	return cachedMatch{
		OfficialName: entry.Nombre,
		DocID:        docID,
		Quality:      quality,
		Response:     raw,
	}
}

func printOracleStats(s OracleStats) {
	total := s.Rows
	pct := func(n int) float64 {
		if total == 0 {
			return 0
		}
		return float64(n) / float64(total) * 100
	}
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Oracle matching complete\n")
	fmt.Fprintf(os.Stderr, "  Rows resolved:  %d (from %d unique texts, %d calls)\n", s.Rows, s.UniqueTexts, s.Calls)
	fmt.Fprintf(os.Stderr, "  Safe:           %d (%.1f%%)\n", s.Safe, pct(s.Safe))
	fmt.Fprintf(os.Stderr, "  Ambiguous:      %d (%.1f%%)\n", s.Ambiguous, pct(s.Ambiguous))
	fmt.Fprintf(os.Stderr, "  No match:       %d (%.1f%%)\n", s.NoMatch, pct(s.NoMatch))
	fmt.Fprintf(os.Stderr, "  Errors:         %d (%.1f%%)\n", s.Errors, pct(s.Errors))
	fmt.Fprintf(os.Stderr, "  Elapsed: %.1f min\n", s.Elapsed.Minutes())
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
}
