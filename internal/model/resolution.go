package model

// MatchQuality classifies the outcome of resolving a mention against
// the official catalog.
type MatchQuality string

const (
	MatchSafe      MatchQuality = "safe"      // Unambiguous catalog match
	MatchAmbiguous MatchQuality = "ambiguous" // Oracle matched but flagged ambiguity
	MatchNone      MatchQuality = "no_match"  // No catalog entry found
	MatchError     MatchQuality = "error"     // Call failure or invalid id returned
)

// ResolutionResult links one mention row to an official catalog entry.
// One result exists per (mention, resolution attempt); when the oracle
// stage deduplicates by entity text, the cached result is fanned out to
// every row sharing that text, each keeping its own ArtID.
type ResolutionResult struct {
	ArtID            string       `json:"art_id"`
	EntityText       string       `json:"entity_text"`
	CDMXOfficialName string       `json:"cdmx_official_name"`
	CDMXDocID        string       `json:"cdmx_doc_id"`
	MatchQuality     MatchQuality `json:"match_quality"`
	OracleResponse   string       `json:"openai_response"` // Raw oracle trace
}
