package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/lexmex/mencion/internal/catalog"
)

// Oracle is the external classification service consulted when
// deterministic regex resolution fails. It is an opaque matcher: given
// a mention text and the enumerated official catalog, it answers with
// plain text that the resolver parses and validates. Injecting it as an
// interface keeps the dedup/caching logic testable with a fake.
type Oracle interface {
	// Name returns the oracle implementation name
	Name() string

	// MatchLaw asks which catalog entry the mention text refers to and
	// returns the raw response text.
	MatchLaw(ctx context.Context, req MatchRequest) (string, error)
}

// MatchRequest contains the input for one oracle lookup
type MatchRequest struct {
	// EntityText is the raw mention text to disambiguate
	EntityText string

	// Catalog is the enumerated choice set of official laws
	Catalog *catalog.Catalog
}

// Config holds oracle client configuration
type Config struct {
	// Model name (e.g. gpt-4o-mini)
	Model string

	// APIKey for the service. Required; absence is a hard error raised
	// before any processing begins.
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout per call
	Timeout time.Duration

	// Temperature for sampling
	Temperature float32
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Model:       "gpt-4o-mini",
		Timeout:     30 * time.Second,
		Temperature: 0.2,
	}
}

// BuildMatchPrompt constructs the law-matching prompt: the mention
// text, the enumerated official catalog and the response contract
// (MATCH/AMBIGUOUS/NO_MATCH with an exact doc_id).
func BuildMatchPrompt(entityText string, cat *catalog.Catalog) string {
	return fmt.Sprintf(`Eres un experto en leyes de la Ciudad de México. Tu tarea es encontrar el match más preciso entre un texto que menciona una ley y la lista oficial de leyes de CDMX.

TEXTO A MATCHEAR:
"%s"

LISTA OFICIAL DE LEYES CDMX:
%s

INSTRUCCIONES:
1. Analiza el texto y encuentra la ley oficial que mejor coincida
2. Considera variaciones en nombres, abreviaciones, y diferencias menores
3. Si encuentras un match claro, responde con el doc_id exacto
4. Si no hay match claro, responde "NO_MATCH"
5. Si hay ambigüedad entre varios matches, elige el más probable

FORMATO DE RESPUESTA:
- Si hay match seguro: "MATCH: [doc_id]"
- Si hay match ambiguo: "AMBIGUOUS: [doc_id]"
- Si no hay match: "NO_MATCH"

IMPORTANTE:
- Usa EXACTAMENTE el doc_id que aparece en la lista, sin modificaciones
- El doc_id es la cadena de 8 caracteres alfanuméricos (ej: 234F69A3)
- No incluyas el nombre de la ley, solo el doc_id

RESPUESTA:
`, entityText, cat.ForPrompt())
}
