package patterns

// SelfReferences returns the self-reference patterns of the
// SPECIFIC_LAW_MENTIONS group: phrases with which a legal text refers
// to itself ("la presente ley", "este código", ...).
func SelfReferences() Group {
	return compileGroup("SPECIFIC_LAW_MENTIONS", [][2]string{
		{`\b(?:la\s+presente\s+ley|esta\s+ley|esta\s+presente\s+ley)\b`, "LEY_REFERENCE"},
		{`\b(?:el\s+presente\s+código|este\s+código)\b`, "CODIGO_REFERENCE"},
		{`\b(?:el\s+presente\s+reglamento|este\s+reglamento)\b`, "REGLAMENTO_REFERENCE"},
	})
}

// MateriaMentions returns the "ley de la materia" patterns, also part
// of the SPECIFIC_LAW_MENTIONS group: references to whichever law
// governs the subject matter at hand.
func MateriaMentions() Group {
	return compileGroup("SPECIFIC_LAW_MENTIONS", [][2]string{
		{`\b(?:ley|LEY)\s+de\s+la\s+materia\b`, "LEY_DE_MATERIA"},
		{`\b(?:Ley|LEY)\s+en\s+la\s+materia\b`, "LEY_DE_MATERIA"},
		{`\b(?:Ley|LEY)\s+correspondiente\s+a\s+la\s+materia\b`, "LEY_DE_MATERIA"},
	})
}
