package extract

import (
	"strings"

	"github.com/lexmex/mencion/internal/model"
	"github.com/lexmex/mencion/internal/patterns"
)

// Options control context capture for all extractors.
type Options struct {
	WordsBefore int
	WordsAfter  int
}

// DefaultOptions mirrors the 30/30 word window used across the corpus.
func DefaultOptions() Options {
	return Options{WordsBefore: 30, WordsAfter: 30}
}

// GroupExtractor applies one pattern group over a document collection,
// producing one Mention per accepted match.
type GroupExtractor struct {
	group patterns.Group
	opts  Options
}

// NewGroupExtractor creates an extractor for the given pattern group.
func NewGroupExtractor(group patterns.Group, opts Options) *GroupExtractor {
	return &GroupExtractor{group: group, opts: opts}
}

// Extract iterates documents in input order and emits a Mention for
// every match of every pattern in the group. Documents with blank text
// are skipped. Duplicate spans within the group are deduplicated by
// (start, end, matched text); the first pattern in group order wins.
func (e *GroupExtractor) Extract(docs []model.Document) []model.Mention {
	var out []model.Mention
	for _, doc := range docs {
		spans := scanDocument(doc, []patterns.Group{e.group}, e.opts)
		for _, s := range spans {
			out = append(out, s.Mention)
		}
	}
	return out
}

type spanKey struct {
	start, end int
	text       string
}

// scanDocument runs every pattern of every group over one document and
// returns the deduplicated match spans in scan order.
func scanDocument(doc model.Document, groups []patterns.Group, opts Options) []MatchSpan {
	if strings.TrimSpace(doc.Text) == "" {
		return nil
	}

	seen := make(map[spanKey]struct{})
	var spans []MatchSpan

	for _, g := range groups {
		for _, p := range g.Patterns {
			for _, loc := range p.Re.FindAllStringIndex(doc.Text, -1) {
				matched := doc.Text[loc[0]:loc[1]]
				key := spanKey{loc[0], loc[1], matched}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				ctx := ExtractContext(doc.Text, loc[0], loc[1], opts.WordsBefore, opts.WordsAfter)
				spans = append(spans, MatchSpan{
					Start: loc[0],
					End:   loc[1],
					Mention: model.Mention{
						DocID:            doc.DocID,
						ArtID:            doc.ArtID,
						DocumentName:     doc.DocumentName,
						ArticleName:      doc.ArticleName,
						EntityText:       strings.TrimSpace(matched),
						EntityLabel:      p.Label,
						PatternGroup:     g.Name,
						BeforeContext:    ctx.BeforeContext,
						AfterContext:     ctx.AfterContext,
						FullContext:      ctx.FullContext,
						WordsBeforeCount: ctx.WordsBeforeCount,
						WordsAfterCount:  ctx.WordsAfterCount,
					},
				})
			}
		}
	}

	return spans
}

// ExtractResolved scans all groups over each document and applies
// overlap resolution per document, so a match strictly contained in a
// longer match from any group is dropped.
func ExtractResolved(docs []model.Document, groups []patterns.Group, opts Options) []model.Mention {
	var out []model.Mention
	for _, doc := range docs {
		for _, s := range ResolveOverlaps(scanDocument(doc, groups, opts)) {
			out = append(out, s.Mention)
		}
	}
	return out
}
