package extract

import (
	"strings"
	"testing"

	"github.com/lexmex/mencion/internal/model"
	"github.com/lexmex/mencion/internal/patterns"
)

func doc(artID, text string) model.Document {
	return model.Document{
		DocID:        "D1",
		ArtID:        artID,
		DocumentName: "Ley de Prueba",
		ArticleName:  "Artículo " + artID,
		Text:         text,
	}
}

func TestGroupExtractor_ArticleMentions(t *testing.T) {
	e := NewGroupExtractor(patterns.ArticleMentions(), DefaultOptions())

	docs := []model.Document{
		doc("1", "Lo dispuesto en el artículo 25 se aplicará sin excepción."),
		doc("2", "Véanse los artículos del 10 al 15 de este ordenamiento."),
		doc("3", "Conforme al artículo anterior, el plazo corre desde la notificación."),
	}

	mentions := e.Extract(docs)

	labels := make(map[string]bool)
	for _, m := range mentions {
		labels[m.EntityLabel] = true
		if m.PatternGroup != "ARTICLE_MENTIONS" {
			t.Errorf("expected pattern group ARTICLE_MENTIONS, got %q", m.PatternGroup)
		}
	}

	for _, want := range []string{"ARTICLE_SINGLE", "ARTICLE_RANGE", "ARTICLE_RELATIVE"} {
		if !labels[want] {
			t.Errorf("expected a %s mention, labels seen: %v", want, labels)
		}
	}
}

func TestGroupExtractor_SkipsBlankText(t *testing.T) {
	e := NewGroupExtractor(patterns.ArticleMentions(), DefaultOptions())

	docs := []model.Document{
		doc("1", ""),
		doc("2", "   \n\t "),
		doc("3", "el artículo 7 es claro"),
	}

	mentions := e.Extract(docs)
	if len(mentions) == 0 {
		t.Fatal("expected mentions from the non-blank document")
	}
	for _, m := range mentions {
		if m.ArtID != "3" {
			t.Errorf("blank document %q produced a mention", m.ArtID)
		}
	}
}

func TestGroupExtractor_LatinSuffixes(t *testing.T) {
	e := NewGroupExtractor(patterns.ArticleMentions(), DefaultOptions())

	docs := []model.Document{doc("1", "según el artículo 63 bis y el artículo 449-29 aplican sanciones")}
	mentions := e.Extract(docs)

	var texts []string
	for _, m := range mentions {
		texts = append(texts, m.EntityText)
	}

	foundBis, foundHyphen := false, false
	for _, txt := range texts {
		if strings.Contains(txt, "63 bis") {
			foundBis = true
		}
		if strings.Contains(txt, "449-29") {
			foundHyphen = true
		}
	}
	if !foundBis {
		t.Errorf("expected a match covering '63 bis', got %v", texts)
	}
	if !foundHyphen {
		t.Errorf("expected a match covering '449-29', got %v", texts)
	}
}

func TestGroupExtractor_SelfReferences(t *testing.T) {
	e := NewGroupExtractor(patterns.SelfReferences(), DefaultOptions())

	docs := []model.Document{doc("1", "Para efectos de la presente ley y de este reglamento se entiende lo siguiente")}
	mentions := e.Extract(docs)

	if len(mentions) != 2 {
		t.Fatalf("expected 2 self references, got %d", len(mentions))
	}
	if mentions[0].EntityLabel != "LEY_REFERENCE" {
		t.Errorf("expected LEY_REFERENCE, got %q", mentions[0].EntityLabel)
	}
	if mentions[1].EntityLabel != "REGLAMENTO_REFERENCE" {
		t.Errorf("expected REGLAMENTO_REFERENCE, got %q", mentions[1].EntityLabel)
	}
}

func TestGroupExtractor_MateriaMentions(t *testing.T) {
	e := NewGroupExtractor(patterns.MateriaMentions(), DefaultOptions())

	docs := []model.Document{doc("1", "se estará a lo dispuesto por la ley de la materia en todo momento")}
	mentions := e.Extract(docs)

	if len(mentions) != 1 {
		t.Fatalf("expected 1 materia mention, got %d", len(mentions))
	}
	if mentions[0].EntityLabel != "LEY_DE_MATERIA" {
		t.Errorf("expected LEY_DE_MATERIA, got %q", mentions[0].EntityLabel)
	}
}

func TestGroupExtractor_GeneralGov(t *testing.T) {
	e := NewGroupExtractor(patterns.GeneralGov(), DefaultOptions())

	docs := []model.Document{doc("1", "el IMSS y la CONAGUA coordinarán acciones con las Alcaldías")}
	mentions := e.Extract(docs)

	labels := make(map[string]bool)
	for _, m := range mentions {
		labels[m.EntityLabel] = true
	}
	for _, want := range []string{"PARAESTATAL_FED", "FEDERAL_AGENCY", "ALCALDIA_GENERAL"} {
		if !labels[want] {
			t.Errorf("expected a %s mention, labels seen: %v", want, labels)
		}
	}
}

func TestGroupExtractor_MentionCarriesProvenanceAndContext(t *testing.T) {
	e := NewGroupExtractor(patterns.LegalDocs(), DefaultOptions())

	docs := []model.Document{doc("9", "se observará la Ley General de Salud en los procedimientos aplicables")}
	mentions := e.Extract(docs)

	if len(mentions) == 0 {
		t.Fatal("expected at least one LAW_MENTION")
	}
	m := mentions[0]
	if m.DocID != "D1" || m.ArtID != "9" || m.DocumentName != "Ley de Prueba" {
		t.Errorf("provenance not carried: %+v", m)
	}
	if !strings.Contains(m.FullContext, "**") {
		t.Errorf("full context must mark the matched span: %q", m.FullContext)
	}
	if m.EntityLabel != "LAW_MENTION" {
		t.Errorf("expected LAW_MENTION, got %q", m.EntityLabel)
	}
}

func TestExtractResolved_ArticleAndSelfRefNoOverlap(t *testing.T) {
	docs := []model.Document{doc("1", "conforme al artículo 50 y 325 de la presente ley")}
	groups := []patterns.Group{patterns.ArticleMentions(), patterns.SelfReferences()}

	mentions := ExtractResolved(docs, groups, DefaultOptions())

	foundMulti, foundSelfRef := false, false
	for _, m := range mentions {
		if m.EntityLabel == "ARTICLE_MULTI" && m.EntityText == "artículo 50 y 325" {
			foundMulti = true
		}
		if m.EntityLabel == "LEY_REFERENCE" && m.EntityText == "la presente ley" {
			foundSelfRef = true
		}
	}
	if !foundMulti {
		t.Errorf("expected ARTICLE_MULTI spanning 'artículo 50 y 325', got %+v", mentions)
	}
	if !foundSelfRef {
		t.Errorf("expected LEY_REFERENCE on 'la presente ley', got %+v", mentions)
	}

	// Nothing in the resolved set may be contained in another mention's
	// span; the single-article submatches must have been dropped.
	for _, m := range mentions {
		if m.EntityLabel == "ARTICLE_SINGLE" {
			t.Errorf("contained ARTICLE_SINGLE survived overlap resolution: %q", m.EntityText)
		}
	}
}
