package patterns

// Latin suffixes (bis, ter, quáter...) and Spanish ordinals that follow
// article numbers, optionally with a trailing number (bis 3) or a bare
// letter (25 a, 25 C).
const sufijos = `(?:(?:bis|ter|qu[aá]ter|quartus|quintus|quinto|sextus|sexto|septimus|s[eé]ptimo|octavus|octavo|novenus|noveno|decimus|d[eé]cimo)(?:\s+\d+)?|\s*[a-zA-Z]\b)`

// Article numbers, including hyphenated forms (449-29, 63-Bis).
const numero = `\d+(?:-\d+|-(?:bis|ter|qu[aá]ter|quartus|quintus|quinto|sextus|sexto|septimus|s[eé]ptimo|octavus|octavo|novenus|noveno|decimus|d[eé]cimo))?`

// ArticleMentions returns the ARTICLE_MENTIONS group. Multi-article and
// range patterns come before the single-article fallback so the broader
// pattern does not shadow the narrower ones; duplicate spans are
// deduplicated by the extractor before overlap resolution.
func ArticleMentions() Group {
	return compileGroup("ARTICLE_MENTIONS", [][2]string{
		// Multiple articles joined by connectors: "artículos 50 y 325"
		{`\b(?:art[íi]culos?|art\.?)\s*` + numero + `(?:\s*[°º])?(?:\s*` + sufijos + `)?(?:\s*(?:y|al|,)\s*` + numero + `(?:\s*[°º])?(?:\s*` + sufijos + `)?)+`, "ARTICLE_MULTI"},
		// Ranges: "artículos del 10 al 15"
		{`\b(?:art[íi]culos?|art\.?)\s*(?:del\s*)?` + numero + `(?:\s*[°º])?(?:\s*` + sufijos + `)?\s*al\s*` + numero + `(?:\s*[°º])?(?:\s*` + sufijos + `)?`, "ARTICLE_RANGE"},
		// Single article fallback
		{`\b(?:art[íi]culos?|art\.?)\s*` + numero + `(?:\s*[°º])?(?:\s*` + sufijos + `)?`, "ARTICLE_SINGLE"},
		// Relative references: "el artículo anterior", "los dos artículos siguientes"
		{`\b(?:los?|las?)?\s*(?:dos|tres|cuatro|cinco|seis|siete|ocho|nueve|diez|once|doce|trece|catorce|quince|veinte|\d+)?\s*(?:art[íi]culos?|art\.?)\s*(?:anterior(?:es)?|siguiente(?:s)?|precedente(?:s)?|subsecuente(?:s)?|previo(?:s)?|posterior(?:es)?|citado(?:s)?|mencionado(?:s)?)`, "ARTICLE_RELATIVE"},
	})
}
