package extract

import (
	"fmt"
	"os"
	"time"

	"github.com/lexmex/mencion/internal/model"
	"github.com/lexmex/mencion/internal/patterns"
)

// OfficialExtractor extracts only precise official-catalog mentions
// (federal laws, CDMX laws, CDMX government entities), resolving
// overlaps per document so the most specific official name wins.
type OfficialExtractor struct {
	groups  []patterns.Group
	opts    Options
	verbose bool
}

// NewOfficialExtractor builds the extractor from precise catalog
// pattern sets. Each set becomes one pattern group labeled by its
// category; sets arrive already sorted most-specific-first.
func NewOfficialExtractor(federal, cdmx, official []patterns.CatalogPattern, opts Options, verbose bool) *OfficialExtractor {
	return &OfficialExtractor{
		groups: []patterns.Group{
			catalogGroup("FEDERAL_LAWS", federal),
			catalogGroup("CDMX_LAWS", cdmx),
			catalogGroup("CDMX_OFFICIAL", official),
		},
		opts:    opts,
		verbose: verbose,
	}
}

func catalogGroup(name string, set []patterns.CatalogPattern) patterns.Group {
	g := patterns.Group{Name: name}
	for _, cp := range set {
		g.Patterns = append(g.Patterns, patterns.Pattern{Re: cp.Re, Label: cp.Category})
	}
	return g
}

// Extract runs the sequential per-document pipeline: scan all catalog
// groups, then drop strictly contained matches.
func (e *OfficialExtractor) Extract(docs []model.Document) []model.Mention {
	start := time.Now()
	var out []model.Mention

	for i, doc := range docs {
		for _, s := range ResolveOverlaps(scanDocument(doc, e.groups, e.opts)) {
			out = append(out, s.Mention)
		}
		if e.verbose && ((i+1)%100 == 0 || i+1 == len(docs)) {
			elapsed := time.Since(start).Seconds()
			fmt.Fprintf(os.Stderr, "progress: %d/%d (%.1f%%) | mentions: %d | elapsed: %.1fs\n",
				i+1, len(docs), float64(i+1)/float64(len(docs))*100, len(out), elapsed)
		}
	}

	if e.verbose {
		printSummary("official entities", len(docs), len(out), time.Since(start))
	}
	return out
}

// chunkFor exposes the per-chunk pipeline to the parallel dispatcher.
func (e *OfficialExtractor) chunkFor(docs []model.Document) []model.Mention {
	var out []model.Mention
	for _, doc := range docs {
		for _, s := range ResolveOverlaps(scanDocument(doc, e.groups, e.opts)) {
			out = append(out, s.Mention)
		}
	}
	return out
}

func printSummary(what string, docs, mentions int, elapsed time.Duration) {
	secs := elapsed.Seconds()
	rate := 0.0
	if secs > 0 {
		rate = float64(docs) / secs
	}
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Extraction complete: %s\n", what)
	fmt.Fprintf(os.Stderr, "  Documents processed: %d\n", docs)
	fmt.Fprintf(os.Stderr, "  Mentions extracted:  %d\n", mentions)
	fmt.Fprintf(os.Stderr, "  Elapsed: %.2fs (%.1f docs/s)\n", secs, rate)
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
}
