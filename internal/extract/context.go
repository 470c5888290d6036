package extract

import (
	"regexp"
	"sort"
	"strings"
)

// Context is a word-bounded window around a matched span.
type Context struct {
	BeforeContext    string
	MatchedEntity    string
	AfterContext     string
	FullContext      string // before **match** after
	WordsBeforeCount int
	WordsAfterCount  int
}

// Tokens are runs of letters/digits/underscore, or any single
// non-space character (punctuation counts as its own token).
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_]+|\S`)

// ExtractContext returns up to wordsBefore tokens preceding the match
// and up to wordsAfter tokens following it, clamped at the document
// edges. A token belongs to exactly one segment, decided by its own
// character offsets relative to [matchStart, matchEnd). Pure function.
func ExtractContext(text string, matchStart, matchEnd, wordsBefore, wordsAfter int) Context {
	idx := tokenRe.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return Context{}
	}

	// Token covering matchStart: the last token whose start <= matchStart
	// and whose end > matchStart. Defaults to the first token when the
	// offset precedes any token.
	startTok := tokenAt(idx, matchStart, 0)
	endTok := tokenAt(idx, matchEnd-1, len(idx)-1)

	ctxStart := startTok - wordsBefore
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := endTok + 1 + wordsAfter
	if ctxEnd > len(idx) {
		ctxEnd = len(idx)
	}

	before := joinTokens(text, idx[ctxStart:startTok])
	matched := joinTokens(text, idx[startTok:endTok+1])
	after := joinTokens(text, idx[endTok+1:ctxEnd])

	full := strings.TrimSpace(before + " **" + matched + "** " + after)

	return Context{
		BeforeContext:    before,
		MatchedEntity:    matched,
		AfterContext:     after,
		FullContext:      full,
		WordsBeforeCount: startTok - ctxStart,
		WordsAfterCount:  ctxEnd - (endTok + 1),
	}
}

// tokenAt returns the index of the token whose [start,end) covers pos,
// or fallback when pos falls outside every token.
func tokenAt(idx [][]int, pos, fallback int) int {
	i := sort.Search(len(idx), func(i int) bool { return idx[i][1] > pos })
	if i < len(idx) && idx[i][0] <= pos {
		return i
	}
	return fallback
}

func joinTokens(text string, idx [][]int) string {
	if len(idx) == 0 {
		return ""
	}
	parts := make([]string, len(idx))
	for i, span := range idx {
		parts[i] = text[span[0]:span[1]]
	}
	return strings.Join(parts, " ")
}
