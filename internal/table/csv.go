// Package table handles the CSV entry/exit boundary of the pipeline:
// document tables in, mention and resolution tables out. All
// intermediate data stays in-process.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lexmex/mencion/internal/model"
)

// ReadDocuments loads a document table. Required columns: doc_id,
// art_id, document_name plus the configurable text and section
// columns. Missing or null text is treated as an empty string, not an
// error.
func ReadDocuments(path, textColumn, sectionColumn string) ([]model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open documents: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("documents table %s is empty", path)
	}

	col := make(map[string]int)
	for i, h := range records[0] {
		col[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, required := range []string{"doc_id", "art_id", textColumn} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("documents table %s: missing column %q", path, required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	docs := make([]model.Document, 0, len(records)-1)
	for _, rec := range records[1:] {
		docs = append(docs, model.Document{
			DocID:        field(rec, "doc_id"),
			ArtID:        field(rec, "art_id"),
			DocumentName: field(rec, "document_name"),
			ArticleName:  field(rec, sectionColumn),
			Text:         field(rec, textColumn),
		})
	}
	return docs, nil
}

// WriteMentions writes the mention table with exactly the Mention
// fields, offsets excluded.
func WriteMentions(path string, mentions []model.Mention) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mentions file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := []string{
		"doc_id", "art_id", "document_name", "article_name",
		"entity_text", "entity_label", "pattern_group",
		"before_context", "after_context", "full_context",
		"words_before_count", "words_after_count",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write mentions header: %w", err)
	}
	for _, m := range mentions {
		rec := []string{
			m.DocID, m.ArtID, m.DocumentName, m.ArticleName,
			m.EntityText, m.EntityLabel, m.PatternGroup,
			m.BeforeContext, m.AfterContext, m.FullContext,
			strconv.Itoa(m.WordsBeforeCount), strconv.Itoa(m.WordsAfterCount),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write mention row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadMentions loads a previously written mention table.
func ReadMentions(path string) ([]model.Mention, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mentions: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read mentions: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("mentions table %s is empty", path)
	}

	col := make(map[string]int)
	for i, h := range records[0] {
		col[strings.TrimSpace(strings.ToLower(h))] = i
	}
	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	mentions := make([]model.Mention, 0, len(records)-1)
	for _, rec := range records[1:] {
		wb, _ := strconv.Atoi(field(rec, "words_before_count"))
		wa, _ := strconv.Atoi(field(rec, "words_after_count"))
		mentions = append(mentions, model.Mention{
			DocID:            field(rec, "doc_id"),
			ArtID:            field(rec, "art_id"),
			DocumentName:     field(rec, "document_name"),
			ArticleName:      field(rec, "article_name"),
			EntityText:       field(rec, "entity_text"),
			EntityLabel:      field(rec, "entity_label"),
			PatternGroup:     field(rec, "pattern_group"),
			BeforeContext:    field(rec, "before_context"),
			AfterContext:     field(rec, "after_context"),
			FullContext:      field(rec, "full_context"),
			WordsBeforeCount: wb,
			WordsAfterCount:  wa,
		})
	}
	return mentions, nil
}

// WriteResolutions writes the resolution result table.
func WriteResolutions(path string, results []model.ResolutionResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := []string{"art_id", "entity_text", "cdmx_official_name", "cdmx_doc_id", "match_quality", "openai_response"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write results header: %w", err)
	}
	for _, res := range results {
		rec := []string{res.ArtID, res.EntityText, res.CDMXOfficialName, res.CDMXDocID, string(res.MatchQuality), res.OracleResponse}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write result row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
