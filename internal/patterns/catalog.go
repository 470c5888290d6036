package patterns

// Precise official catalogs. Each triple is (expression, canonical
// name, category); expressions are whitespace- and accent-flexible so
// the same list works on clean and on roughly OCR'd corpus text.
// compileCatalog sorts them longest-expression-first, so a longer
// official name always wins over a shorter one it contains.

var federalLawTriples = [][3]string{
	{`\bConstituci[oó]n\s+Pol[ií]tica\s+de\s+los\s+Estados\s+Unidos\s+Mexicanos`, "Constitución Política de los Estados Unidos Mexicanos", "FEDERAL_LAWS"},
	{`\bLey\s+General\s+de\s+Transparencia\s+y\s+Acceso\s+a\s+la\s+Informaci[oó]n\s+P[uú]blica`, "Ley General de Transparencia y Acceso a la Información Pública", "FEDERAL_LAWS"},
	{`\bLey\s+General\s+del\s+Equilibrio\s+Ecol[oó]gico\s+y\s+la\s+Protecci[oó]n\s+al\s+Ambiente`, "Ley General del Equilibrio Ecológico y la Protección al Ambiente", "FEDERAL_LAWS"},
	{`\bLey\s+General\s+de\s+Salud`, "Ley General de Salud", "FEDERAL_LAWS"},
	{`\bLey\s+General\s+de\s+Educaci[oó]n`, "Ley General de Educación", "FEDERAL_LAWS"},
	{`\bLey\s+General\s+de\s+Asentamientos\s+Humanos,?\s+Ordenamiento\s+Territorial\s+y\s+Desarrollo\s+Urbano`, "Ley General de Asentamientos Humanos, Ordenamiento Territorial y Desarrollo Urbano", "FEDERAL_LAWS"},
	{`\bLey\s+Federal\s+del\s+Trabajo`, "Ley Federal del Trabajo", "FEDERAL_LAWS"},
	{`\bLey\s+Federal\s+de\s+Protecci[oó]n\s+de\s+Datos\s+Personales\s+en\s+Posesi[oó]n\s+de\s+los\s+Particulares`, "Ley Federal de Protección de Datos Personales en Posesión de los Particulares", "FEDERAL_LAWS"},
	{`\bLey\s+de\s+Aguas\s+Nacionales`, "Ley de Aguas Nacionales", "FEDERAL_LAWS"},
	{`\bLey\s+del\s+Seguro\s+Social`, "Ley del Seguro Social", "FEDERAL_LAWS"},
	{`\bLey\s+de\s+Amparo`, "Ley de Amparo", "FEDERAL_LAWS"},
	{`\bC[oó]digo\s+Nacional\s+de\s+Procedimientos\s+Penales`, "Código Nacional de Procedimientos Penales", "FEDERAL_LAWS"},
	{`\bC[oó]digo\s+Fiscal\s+de\s+la\s+Federaci[oó]n`, "Código Fiscal de la Federación", "FEDERAL_LAWS"},
	{`\bC[oó]digo\s+de\s+Comercio`, "Código de Comercio", "FEDERAL_LAWS"},
	{`\bC[oó]digo\s+Civil\s+Federal`, "Código Civil Federal", "FEDERAL_LAWS"},
}

var cdmxLawTriples = [][3]string{
	{`\bConstituci[oó]n\s+Pol[ií]tica\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Constitución Política de la Ciudad de México", "CDMX_LAWS"},
	{`\bLey\s+de\s+Salud\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Ley de Salud de la Ciudad de México", "CDMX_LAWS"},
	{`\bLey\s+de\s+Transparencia,?\s+Acceso\s+a\s+la\s+Informaci[oó]n\s+P[uú]blica\s+y\s+Rendici[oó]n\s+de\s+Cuentas\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Ley de Transparencia, Acceso a la Información Pública y Rendición de Cuentas de la Ciudad de México", "CDMX_LAWS"},
	{`\bLey\s+Org[aá]nica\s+de\s+Alcald[ií]as\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Ley Orgánica de Alcaldías de la Ciudad de México", "CDMX_LAWS"},
	{`\bLey\s+Org[aá]nica\s+del\s+Poder\s+Ejecutivo\s+y\s+de\s+la\s+Administraci[oó]n\s+P[uú]blica\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Ley Orgánica del Poder Ejecutivo y de la Administración Pública de la Ciudad de México", "CDMX_LAWS"},
	{`\bLey\s+de\s+Movilidad\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Ley de Movilidad de la Ciudad de México", "CDMX_LAWS"},
	{`\bLey\s+Ambiental\s+de\s+Protecci[oó]n\s+a\s+la\s+Tierra\s+en\s+el\s+Distrito\s+Federal`, "Ley Ambiental de Protección a la Tierra en el Distrito Federal", "CDMX_LAWS"},
	{`\bLey\s+de\s+Austeridad,?\s+Transparencia\s+en\s+Remuneraciones`, "Ley de Austeridad, Transparencia en Remuneraciones, Prestaciones y Ejercicio de Recursos de la Ciudad de México", "CDMX_LAWS"},
	{`\bLey\s+de\s+Participaci[oó]n\s+Ciudadana\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Ley de Participación Ciudadana de la Ciudad de México", "CDMX_LAWS"},
	{`\bLey\s+de\s+Desarrollo\s+Urbano\s+del\s+Distrito\s+Federal`, "Ley de Desarrollo Urbano del Distrito Federal", "CDMX_LAWS"},
	{`\bLey\s+de\s+Educaci[oó]n\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Ley de Educación de la Ciudad de México", "CDMX_LAWS"},
	{`\bC[oó]digo\s+Penal\s+para\s+el\s+Distrito\s+Federal`, "Código Penal para el Distrito Federal", "CDMX_LAWS"},
	{`\bC[oó]digo\s+Civil\s+para\s+el\s+Distrito\s+Federal`, "Código Civil para el Distrito Federal", "CDMX_LAWS"},
	{`\bC[oó]digo\s+Fiscal\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Código Fiscal de la Ciudad de México", "CDMX_LAWS"},
}

var cdmxOfficialTriples = [][3]string{
	{`\bSecretar[ií]a\s+de\s+Gobierno\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Secretaría de Gobierno de la Ciudad de México", "CDMX_OFFICIAL"},
	{`\bSecretar[ií]a\s+del\s+Medio\s+Ambiente\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Secretaría del Medio Ambiente de la Ciudad de México", "CDMX_OFFICIAL"},
	{`\bSecretar[ií]a\s+de\s+Movilidad\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Secretaría de Movilidad de la Ciudad de México", "CDMX_OFFICIAL"},
	{`\bSecretar[ií]a\s+de\s+Salud\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Secretaría de Salud de la Ciudad de México", "CDMX_OFFICIAL"},
	{`\bCongreso\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Congreso de la Ciudad de México", "CDMX_OFFICIAL"},
	{`\bJefatura\s+de\s+Gobierno\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Jefatura de Gobierno de la Ciudad de México", "CDMX_OFFICIAL"},
	{`\bInstituto\s+de\s+Transparencia,?\s+Acceso\s+a\s+la\s+Informaci[oó]n\s+P[uú]blica`, "Instituto de Transparencia, Acceso a la Información Pública, Protección de Datos Personales y Rendición de Cuentas de la Ciudad de México", "CDMX_OFFICIAL"},
	{`\bTribunal\s+Superior\s+de\s+Justicia\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Tribunal Superior de Justicia de la Ciudad de México", "CDMX_OFFICIAL"},
	{`\bComisi[oó]n\s+de\s+Derechos\s+Humanos\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Comisión de Derechos Humanos de la Ciudad de México", "CDMX_OFFICIAL"},
	{`\bSistema\s+de\s+Aguas\s+de\s+la\s+Ciudad\s+de\s+M[eé]xico`, "Sistema de Aguas de la Ciudad de México", "CDMX_OFFICIAL"},
}

// FederalLaws returns the precise federal-law catalog patterns.
func FederalLaws() []CatalogPattern { return compileCatalog(federalLawTriples) }

// CDMXLaws returns the precise CDMX-law catalog patterns.
func CDMXLaws() []CatalogPattern { return compileCatalog(cdmxLawTriples) }

// CDMXOfficial returns the precise CDMX government-entity patterns.
func CDMXOfficial() []CatalogPattern { return compileCatalog(cdmxOfficialTriples) }

// AllLawCatalogs returns the combined federal+CDMX precise law patterns
// in one ordered list, as consumed by the regex resolution stage.
func AllLawCatalogs() []CatalogPattern {
	return append(CDMXLaws(), FederalLaws()...)
}
