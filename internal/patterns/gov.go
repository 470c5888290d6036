package patterns

// GeneralGov returns the GENERAL_GOV group: generic government
// organization mentions, from named federal agencies down to generic
// institutional noun phrases.
func GeneralGov() Group {
	return compileGroup("GENERAL_GOV", [][2]string{
		{`\b(?:La\s+|la\s+)?(?:Secretaría|SECRETARÍA)(?:\s+(?:de|del)\s+[A-ZÁÉÍÓÚÑa-záéíóúñ\s]{5,80})?`, "SECRETARIA_GENERAL"},
		{`\b(?:Alcaldía|ALCALDÍA|Alcaldías|ALCALDÍAS)\b`, "ALCALDIA_GENERAL"},
		{`\b(?:SEDEMA|SEMARNAT|CONAGUA|PROFEPA|CONANP|COFEPRIS|CONDUSEF)\b`, "FEDERAL_AGENCY"},
		{`\b(?:INE|INAI|CNDH|COFECE|IFT|INEGI|CONEVAL)\b`, "ORG_AUTONOMO_FED"},
		{`\b(?:IMSS|ISSSTE|PEMEX|CFE)\b`, "PARAESTATAL_FED"},
		{`\b(?:Instituto|Tribunal|Consejo|Comité|Coordinación|Organismo|Centro|Sistema|Registro)\s+(?:de|para|Público)\s+[A-ZÁÉÍÓÚÑa-záéíóúñ\s]{8,120}`, "ORG_GENERICO"},
		{`\b(?:Universidad|UNIVERSIDAD)\s+[A-ZÁÉÍÓÚÑa-záéíóúñ\s]{5,50}`, "UNIVERSITY"},
	})
}
