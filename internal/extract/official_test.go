package extract

import (
	"fmt"
	"testing"

	"github.com/lexmex/mencion/internal/model"
	"github.com/lexmex/mencion/internal/patterns"
)

func newTestOfficialExtractor() *OfficialExtractor {
	return NewOfficialExtractor(
		patterns.FederalLaws(),
		patterns.CDMXLaws(),
		patterns.CDMXOfficial(),
		DefaultOptions(),
		false,
	)
}

func TestOfficialExtractor_CategoriesAsLabels(t *testing.T) {
	e := newTestOfficialExtractor()

	docs := []model.Document{doc("1",
		"la Secretaría de Salud de la Ciudad de México aplicará la Ley General de Salud y la Ley de Movilidad de la Ciudad de México")}

	mentions := e.Extract(docs)

	byLabel := make(map[string][]string)
	for _, m := range mentions {
		byLabel[m.EntityLabel] = append(byLabel[m.EntityLabel], m.EntityText)
	}

	if got := byLabel["CDMX_OFFICIAL"]; len(got) != 1 || got[0] != "Secretaría de Salud de la Ciudad de México" {
		t.Errorf("CDMX_OFFICIAL mentions: %v", got)
	}
	if got := byLabel["FEDERAL_LAWS"]; len(got) != 1 || got[0] != "Ley General de Salud" {
		t.Errorf("FEDERAL_LAWS mentions: %v", got)
	}
	if got := byLabel["CDMX_LAWS"]; len(got) != 1 || got[0] != "Ley de Movilidad de la Ciudad de México" {
		t.Errorf("CDMX_LAWS mentions: %v", got)
	}
}

func TestOfficialExtractor_OverlapResolvedAcrossGroups(t *testing.T) {
	// A short federal name nested inside a longer local one: only the
	// longer span may survive, regardless of which group matched it.
	short, err := patterns.FromCatalog("Ley de Salud", "FEDERAL_LAWS")
	if err != nil {
		t.Fatal(err)
	}
	long, err := patterns.FromCatalog("Ley de Salud de la Ciudad de México", "CDMX_LAWS")
	if err != nil {
		t.Fatal(err)
	}

	e := NewOfficialExtractor(
		[]patterns.CatalogPattern{short},
		[]patterns.CatalogPattern{long},
		nil,
		DefaultOptions(),
		false,
	)

	docs := []model.Document{doc("1",
		"se publicó la Ley de Salud de la Ciudad de México en la gaceta oficial")}

	mentions := e.Extract(docs)

	if len(mentions) != 1 {
		t.Fatalf("expected exactly 1 mention, got %d: %+v", len(mentions), mentions)
	}
	if mentions[0].EntityText != "Ley de Salud de la Ciudad de México" {
		t.Errorf("wrong surviving mention: %q", mentions[0].EntityText)
	}
	if mentions[0].EntityLabel != "CDMX_LAWS" {
		t.Errorf("wrong label: %q", mentions[0].EntityLabel)
	}
}

func TestOfficialExtractor_ParallelMatchesSequential(t *testing.T) {
	e := newTestOfficialExtractor()

	var docs []model.Document
	texts := []string{
		"será sancionado conforme al Código Penal para el Distrito Federal",
		"el Congreso de la Ciudad de México expide la Ley de Aguas Nacionales",
		"texto sin menciones oficiales",
		"",
		"la Ley del Seguro Social y la Ley Federal del Trabajo rigen la relación laboral",
	}
	for i := 0; i < 40; i++ {
		docs = append(docs, doc(fmt.Sprintf("%d", i), texts[i%len(texts)]))
	}

	sequential := e.Extract(docs)
	parallel, err := e.ExtractParallel(docs, 4)
	if err != nil {
		t.Fatalf("ExtractParallel failed: %v", err)
	}

	if len(parallel) != len(sequential) {
		t.Fatalf("parallel produced %d mentions, sequential %d", len(parallel), len(sequential))
	}
	for i := range parallel {
		if parallel[i] != sequential[i] {
			t.Fatalf("mention %d differs:\n parallel  %+v\n sequential %+v", i, parallel[i], sequential[i])
		}
	}
}
