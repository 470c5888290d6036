package cli

import (
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lexmex/mencion/internal/extract"
	"github.com/lexmex/mencion/internal/model"
	"github.com/lexmex/mencion/internal/patterns"
	"github.com/lexmex/mencion/internal/table"
)

var (
	extractGroups []string
	extractOut    string
	textColumn    string
	sectionColumn string
	wordsBefore   int
	wordsAfter    int
	workers       int
	crossResolve  bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <documents.csv>",
	Short: "Extract entity mentions from a legal document table",
	Long: `Extract scans every document row with the selected pattern groups
and writes one mention row per accepted match, with 30 words of
context on each side by default.

Groups:
  articles   article references (single, multi, range, relative)
  legal      generic legal-document mentions (laws, codes, NOMs)
  selfref    self references ("la presente ley", "este código")
  materia    "ley de la materia" references
  gov        generic government organizations
  official   precise federal/CDMX catalogs (parallel, overlap-resolved)

With --resolve-overlaps, matches from all selected groups compete per
document and a match strictly contained in a longer one is dropped,
whichever group produced it. Without it each group reports
independently. The official group always resolves its own overlaps.

Example:
  mencion extract articles.csv --groups official --workers 8 --out mentions.csv
  mencion extract articles.csv --groups articles,selfref --resolve-overlaps --out mentions.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringSliceVar(&extractGroups, "groups", []string{"official"}, "pattern groups to run")
	extractCmd.Flags().StringVar(&extractOut, "out", "mentions.csv", "output CSV path")
	extractCmd.Flags().StringVar(&textColumn, "text-column", "text", "column holding the scannable text")
	extractCmd.Flags().StringVar(&sectionColumn, "section-column", "article_name", "column holding the section title")
	extractCmd.Flags().IntVar(&wordsBefore, "words-before", 30, "context words before each match")
	extractCmd.Flags().IntVar(&wordsAfter, "words-after", 30, "context words after each match")
	extractCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "parallel workers for the official extractor")
	extractCmd.Flags().BoolVar(&crossResolve, "resolve-overlaps", false, "resolve overlaps across the selected groups")
}

func runExtract(cmd *cobra.Command, args []string) error {
	docs, err := table.ReadDocuments(args[0], textColumn, sectionColumn)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "loaded %d document rows from %s\n", len(docs), args[0])
	}

	opts := extract.Options{WordsBefore: wordsBefore, WordsAfter: wordsAfter}

	all, err := extractMentions(docs, extractGroups, opts, crossResolve)
	if err != nil {
		return err
	}

	if err := table.WriteMentions(extractOut, all); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Wrote %d mentions to %s\n", len(all), extractOut)
	return nil
}

// extractMentions runs the selected groups. With crossResolve, the
// non-official groups are scanned together and overlap-resolved per
// document; otherwise each reports independently. The official group
// always runs its own overlap-resolving pipeline.
func extractMentions(docs []model.Document, names []string, opts extract.Options, crossResolve bool) ([]model.Mention, error) {
	var all []model.Mention
	var combined []patterns.Group

	for _, name := range names {
		if name == "official" {
			e := extract.NewOfficialExtractor(patterns.FederalLaws(), patterns.CDMXLaws(), patterns.CDMXOfficial(), opts, verbose)
			mentions, err := e.ExtractParallel(docs, workers)
			if err != nil {
				return nil, err
			}
			all = append(all, mentions...)
			continue
		}

		g, err := groupByName(name)
		if err != nil {
			return nil, err
		}
		if crossResolve {
			combined = append(combined, g)
			continue
		}
		all = append(all, extract.NewGroupExtractor(g, opts).Extract(docs)...)
	}

	if len(combined) > 0 {
		all = append(all, extract.ExtractResolved(docs, combined, opts)...)
	}
	return all, nil
}

func groupByName(name string) (patterns.Group, error) {
	switch name {
	case "articles":
		return patterns.ArticleMentions(), nil
	case "legal":
		return patterns.LegalDocs(), nil
	case "selfref":
		return patterns.SelfReferences(), nil
	case "materia":
		return patterns.MateriaMentions(), nil
	case "gov":
		return patterns.GeneralGov(), nil
	default:
		return patterns.Group{}, fmt.Errorf("unknown pattern group %q (known: %v)", name, knownGroups())
	}
}

func knownGroups() []string {
	names := []string{"articles", "legal", "selfref", "materia", "gov", "official"}
	sort.Strings(names)
	return names
}
