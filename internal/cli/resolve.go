package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexmex/mencion/internal/catalog"
	"github.com/lexmex/mencion/internal/llm"
	"github.com/lexmex/mencion/internal/patterns"
	"github.com/lexmex/mencion/internal/resolve"
	"github.com/lexmex/mencion/internal/table"
)

var (
	catalogPath  string
	resolveOut   string
	oracleModel  string
	oracleDelay  time.Duration
	oracleTemp   float32
	regexOnly    bool
	oracleOut    string
	resolveLimit int
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <mentions.csv>",
	Short: "Resolve law mentions against the official catalog",
	Long: `Resolve maps each mention to an authoritative catalog entry in two
stages:
1. Deterministic regex matching against the precise official patterns,
   with exclusion guards so "Reglamento de la Ley X" never resolves to
   "Ley X".
2. For the remainder, a deduplicated lookup through the external
   matching oracle: one call per distinct mention text, cached and
   fanned out to every row sharing that text.

OPENAI_API_KEY must be set unless --regex-only is given.

Example:
  mencion resolve mentions.csv --catalog leyes_cdmx.csv --out matched.csv
  mencion resolve mentions.csv --catalog leyes_cdmx.csv --regex-only`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&catalogPath, "catalog", "", "official catalog CSV (doc_id,nombre) (required)")
	resolveCmd.Flags().StringVar(&resolveOut, "out", "resolved.csv", "output CSV for regex-stage matches")
	resolveCmd.Flags().StringVar(&oracleOut, "oracle-out", "oracle_matches.csv", "output CSV for oracle-stage matches")
	resolveCmd.Flags().StringVar(&oracleModel, "model", "gpt-4o-mini", "oracle model name")
	resolveCmd.Flags().DurationVar(&oracleDelay, "delay", time.Second, "fixed spacing between oracle calls")
	resolveCmd.Flags().Float32Var(&oracleTemp, "temperature", 0.2, "oracle sampling temperature")
	resolveCmd.Flags().BoolVar(&regexOnly, "regex-only", false, "skip the oracle stage")
	resolveCmd.Flags().IntVar(&resolveLimit, "limit", 0, "resolve at most N unresolved mentions via the oracle (0 = all)")
	_ = resolveCmd.MarkFlagRequired("catalog")
}

func runResolve(cmd *cobra.Command, args []string) error {
	// Credential check happens before any processing: a missing key is
	// a configuration error, not a per-row failure.
	apiKey := os.Getenv("OPENAI_API_KEY")
	if !regexOnly && apiKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set (use --regex-only to skip the oracle stage)")
	}

	mentions, err := table.ReadMentions(args[0])
	if err != nil {
		return err
	}
	cat, err := catalog.LoadCSV(catalogPath)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "loaded %d mentions, %d catalog entries\n", len(mentions), cat.Len())
	}

	// Stage 1: deterministic regex resolution. The static precise
	// patterns come first; loaded catalog rows extend them with derived
	// patterns, so a newly cataloged law is matchable without a code
	// change.
	catalogPatterns := patterns.AllLawCatalogs()
	for _, entry := range cat.Entries() {
		cp, err := patterns.FromCatalog(entry.Nombre, "CDMX_LAWS")
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping derived pattern for %q: %v\n", entry.Nombre, err)
			continue
		}
		catalogPatterns = append(catalogPatterns, cp)
	}

	regexResolver := resolve.NewRegexResolver(catalogPatterns, cat, verbose)
	unresolved, resolved, stats := regexResolver.Resolve(mentions)

	if err := table.WriteResolutions(resolveOut, resolved); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Regex stage: %d/%d resolved (%.1f%%), written to %s\n",
		stats.Resolved, stats.Total, stats.PercentResolved(), resolveOut)

	if regexOnly {
		fmt.Fprintf(os.Stderr, "  %d mentions left unresolved, %d of them shaped like proper law names (oracle stage skipped)\n",
			stats.Unresolved, stats.ProperNames)
		return nil
	}

	// Stage 2: deduplicated oracle resolution.
	oracle, err := llm.NewOpenAIOracle(llm.Config{
		Model:       oracleModel,
		APIKey:      apiKey,
		Temperature: oracleTemp,
	})
	if err != nil {
		return err
	}

	if resolveLimit > 0 && resolveLimit < len(unresolved) {
		unresolved = unresolved[:resolveLimit]
	}

	oracleResolver := resolve.NewOracleResolver(oracle, cat, oracleDelay, verbose)
	results, oracleStats := oracleResolver.ResolveAll(context.Background(), unresolved)

	if err := table.WriteResolutions(oracleOut, results); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Oracle stage: %d rows (%d calls), written to %s\n",
		oracleStats.Rows, oracleStats.Calls, oracleOut)
	return nil
}
