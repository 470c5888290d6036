package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lexmex/mencion/internal/catalog"
	"github.com/lexmex/mencion/internal/llm"
	"github.com/lexmex/mencion/internal/model"
)

// fakeOracle returns scripted responses per entity text and counts
// every call it receives.
type fakeOracle struct {
	responses map[string]string
	err       error
	calls     int
}

func (f *fakeOracle) Name() string { return "fake" }

func (f *fakeOracle) MatchLaw(_ context.Context, req llm.MatchRequest) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if resp, ok := f.responses[req.EntityText]; ok {
		return resp, nil
	}
	return "NO_MATCH", nil
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Entry{
		{DocID: "LSCM2021", Nombre: "Ley de Salud de la Ciudad de México"},
		{DocID: "LMOV2019", Nombre: "Ley de Movilidad de la Ciudad de México"},
		{DocID: "CPCM2017", Nombre: "Constitución Política de la Ciudad de México"},
	})
}

func TestOracleResolver_DeduplicatesCalls(t *testing.T) {
	oracle := &fakeOracle{responses: map[string]string{
		"Ley de Salud":       "MATCH: LSCM2021",
		"Ley de Movilidad":   "MATCH: LMOV2019",
		"la ley fundamental": "AMBIGUOUS: CPCM2017",
	}}
	r := NewOracleResolver(oracle, testCatalog(), 0, false)

	var mentions []model.Mention
	texts := []string{"Ley de Salud", "Ley de Movilidad", "la ley fundamental"}
	for i := 0; i < 100; i++ {
		mentions = append(mentions, model.Mention{
			ArtID:      fmt.Sprintf("%d", i),
			EntityText: texts[i%3],
		})
	}

	results, stats := r.ResolveAll(context.Background(), mentions)

	if oracle.calls != 3 {
		t.Fatalf("expected exactly 3 oracle calls for 3 distinct texts, got %d", oracle.calls)
	}
	if len(results) != 100 {
		t.Fatalf("expected 100 results, got %d", len(results))
	}
	if stats.Rows != 100 || stats.UniqueTexts != 3 || stats.Calls != 3 {
		t.Errorf("stats wrong: %+v", stats)
	}

	for i, res := range results {
		if res.ArtID != fmt.Sprintf("%d", i) {
			t.Fatalf("result %d lost its art_id: %q", i, res.ArtID)
		}
		if res.EntityText != texts[i%3] {
			t.Fatalf("result %d carries wrong text: %q", i, res.EntityText)
		}
	}
}

func TestOracleResolver_MatchResolvesCatalogEntry(t *testing.T) {
	oracle := &fakeOracle{responses: map[string]string{
		"Ley de Salud": "MATCH: LSCM2021",
	}}
	r := NewOracleResolver(oracle, testCatalog(), 0, false)

	results, stats := r.ResolveAll(context.Background(), []model.Mention{
		{ArtID: "7", EntityText: "Ley de Salud"},
	})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	res := results[0]
	if res.MatchQuality != model.MatchSafe {
		t.Errorf("expected safe, got %q", res.MatchQuality)
	}
	if res.CDMXDocID != "LSCM2021" {
		t.Errorf("expected doc_id LSCM2021, got %q", res.CDMXDocID)
	}
	if res.CDMXOfficialName != "Ley de Salud de la Ciudad de México" {
		t.Errorf("wrong official name: %q", res.CDMXOfficialName)
	}
	if res.OracleResponse != "MATCH: LSCM2021" {
		t.Errorf("raw response not kept: %q", res.OracleResponse)
	}
	if stats.Safe != 1 {
		t.Errorf("stats wrong: %+v", stats)
	}
}

func TestOracleResolver_AmbiguousQuality(t *testing.T) {
	oracle := &fakeOracle{responses: map[string]string{
		"la constitución local": "AMBIGUOUS: CPCM2017",
	}}
	r := NewOracleResolver(oracle, testCatalog(), 0, false)

	results, stats := r.ResolveAll(context.Background(), []model.Mention{
		{ArtID: "1", EntityText: "la constitución local"},
	})

	if results[0].MatchQuality != model.MatchAmbiguous {
		t.Errorf("expected ambiguous, got %q", results[0].MatchQuality)
	}
	if results[0].CDMXDocID != "CPCM2017" {
		t.Errorf("ambiguous match must still carry its doc_id, got %q", results[0].CDMXDocID)
	}
	if stats.Ambiguous != 1 {
		t.Errorf("stats wrong: %+v", stats)
	}
}

func TestOracleResolver_InvalidDocIDIsError(t *testing.T) {
	oracle := &fakeOracle{responses: map[string]string{
		"ley inventada": "MATCH: ZZZZ9999",
	}}
	r := NewOracleResolver(oracle, testCatalog(), 0, false)

	results, stats := r.ResolveAll(context.Background(), []model.Mention{
		{ArtID: "1", EntityText: "ley inventada"},
	})

	res := results[0]
	if res.MatchQuality != model.MatchError {
		t.Fatalf("invented doc_id must be an error, got %q", res.MatchQuality)
	}
	if res.CDMXDocID != "" || res.CDMXOfficialName != "" {
		t.Errorf("invalid match must not carry catalog fields: %+v", res)
	}
	if !strings.Contains(res.OracleResponse, "Invalid doc_id: ZZZZ9999") {
		t.Errorf("unexpected response trace: %q", res.OracleResponse)
	}
	if stats.Errors != 1 {
		t.Errorf("stats wrong: %+v", stats)
	}
}

func TestOracleResolver_NoMatchResponse(t *testing.T) {
	oracle := &fakeOracle{}
	r := NewOracleResolver(oracle, testCatalog(), 0, false)

	results, stats := r.ResolveAll(context.Background(), []model.Mention{
		{ArtID: "1", EntityText: "algo desconocido"},
	})

	if results[0].MatchQuality != model.MatchNone {
		t.Errorf("expected no_match, got %q", results[0].MatchQuality)
	}
	if results[0].OracleResponse != "NO_MATCH" {
		t.Errorf("raw response not kept: %q", results[0].OracleResponse)
	}
	if stats.NoMatch != 1 {
		t.Errorf("stats wrong: %+v", stats)
	}
}

func TestOracleResolver_CallErrorRecordedNotRetried(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("connection refused")}
	r := NewOracleResolver(oracle, testCatalog(), 0, false)

	results, stats := r.ResolveAll(context.Background(), []model.Mention{
		{ArtID: "1", EntityText: "Ley de Salud"},
		{ArtID: "2", EntityText: "Ley de Salud"},
	})

	if oracle.calls != 1 {
		t.Fatalf("failed call must be cached, not retried: %d calls", oracle.calls)
	}
	for _, res := range results {
		if res.MatchQuality != model.MatchError {
			t.Errorf("expected error quality, got %q", res.MatchQuality)
		}
		if !strings.Contains(res.OracleResponse, "connection refused") {
			t.Errorf("error trace missing: %q", res.OracleResponse)
		}
	}
	if stats.Errors != 2 || stats.Calls != 1 {
		t.Errorf("stats wrong: %+v", stats)
	}
}

func TestOracleResolver_SkipsBlankTexts(t *testing.T) {
	oracle := &fakeOracle{}
	r := NewOracleResolver(oracle, testCatalog(), 0, false)

	results, stats := r.ResolveAll(context.Background(), []model.Mention{
		{ArtID: "1", EntityText: ""},
		{ArtID: "2", EntityText: "   "},
		{ArtID: "3", EntityText: "algo"},
	})

	if len(results) != 1 {
		t.Fatalf("blank texts must be dropped, got %d results", len(results))
	}
	if results[0].ArtID != "3" {
		t.Errorf("wrong surviving row: %q", results[0].ArtID)
	}
	if stats.Rows != 1 || oracle.calls != 1 {
		t.Errorf("expected 1 row and 1 call, got %+v / %d calls", stats, oracle.calls)
	}
}
