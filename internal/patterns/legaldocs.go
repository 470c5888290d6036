package patterns

// LegalDocs returns the LEGAL_DOCS group: generic mentions of laws,
// codes, regulations and Mexican official norms, matched by their
// leading keyword plus a bounded run of name words.
func LegalDocs() Group {
	return compileGroup("LEGAL_DOCS", [][2]string{
		{`\b(?:Ley|LEY)\s+(?:Orgánica|General|Federal|de|del|para|sobre)\s+[A-ZÁÉÍÓÚÑa-záéíóúñ\s]{8,150}`, "LAW_MENTION"},
		{`\b(?:Código|CÓDIGO)\s+(?:de|del|para)\s+[A-ZÁÉÍÓÚÑa-záéíóúñ\s]{10,80}`, "LAW_CODE"},
		{`\b(?:Reglamento|REGLAMENTO)\s+(?:de|del|para)\s+[A-ZÁÉÍÓÚÑa-záéíóúñ\s]{10,100}`, "REGULATION"},
		{`\b(?:Norma|NORMA)\s+Oficial\s+Mexicana\s+[A-Z0-9\-]+`, "NOM"},
	})
}
