package model

// Document is one scannable unit of a legal corpus: a single article
// (section) of a law, decree or regulation. It is immutable input to
// the extraction pipeline.
type Document struct {
	DocID        string `json:"doc_id"`        // Identifier of the parent document
	ArtID        string `json:"art_id"`        // Identifier of this article, unique within the document
	DocumentName string `json:"document_name"` // Name of the parent document
	ArticleName  string `json:"article_name"`  // Section title
	Text         string `json:"text"`          // Body to be scanned
}

// Mention is one occurrence of a recognized entity (article reference,
// law name, organization name) found in a document's text, with its
// surrounding context. A Mention never carries raw character offsets;
// those exist only transiently during overlap resolution.
type Mention struct {
	DocID            string `json:"doc_id"`
	ArtID            string `json:"art_id"`
	DocumentName     string `json:"document_name"`
	ArticleName      string `json:"article_name"`
	EntityText       string `json:"entity_text"`   // Raw matched substring
	EntityLabel      string `json:"entity_label"`  // Pattern tag, e.g. ARTICLE_SINGLE, LAW_MENTION
	PatternGroup     string `json:"pattern_group"` // Semantic category of the pattern group
	BeforeContext    string `json:"before_context"`
	AfterContext     string `json:"after_context"`
	FullContext      string `json:"full_context"`
	WordsBeforeCount int    `json:"words_before_count"`
	WordsAfterCount  int    `json:"words_after_count"`
}
