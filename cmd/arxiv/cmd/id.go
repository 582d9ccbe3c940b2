package cmd

import (
	"fmt"
	"strings"

	"github.com/neoncitylights/arxiv"
	"github.com/spf13/cobra"
)

var idBare bool

var idCmd = &cobra.Command{
	Use:   "id <identifier>",
	Short: "Parse an article identifier",
	Long: `Parses an article identifier and prints its parts together with the
arxiv.org links it resolves to. Identifiers with a slash are read as the old
pre-2007 scheme; everything else as the modern scheme.

Examples:
  arxiv id arXiv:0706.0001v1
  arxiv id arXiv:math.GT/0309136
  arxiv id --bare 2011.00001`,
	Args: cobra.ExactArgs(1),
	RunE: runID,
}

func init() {
	rootCmd.AddCommand(idCmd)

	idCmd.Flags().BoolVar(&idBare, "bare", false, `accept an identifier without the "arXiv:" label`)
}

func runID(cmd *cobra.Command, args []string) error {
	opts := &arxiv.ParseOptions{OptionalPrefix: idBare}

	// Only old-scheme identifiers carry a slash.
	if strings.Contains(args[0], "/") {
		id, err := arxiv.ParseOldArticleIDWithOptions(args[0], opts)
		if err != nil {
			return err
		}
		printOldArticleID(id)
		return nil
	}

	id, err := arxiv.ParseArticleIDWithOptions(args[0], opts)
	if err != nil {
		return err
	}
	printArticleID(id)
	return nil
}

func printArticleID(id arxiv.ArticleID) {
	fmt.Println("scheme:   modern")
	fmt.Printf("year:     %d\n", id.Year)
	fmt.Printf("month:    %d\n", id.Month)
	fmt.Printf("number:   %s\n", id.Number)
	fmt.Printf("version:  %s\n", versionLabel(id.Version))
	fmt.Printf("display:  %s\n", id)
	fmt.Printf("abs:      %s\n", id.AbsURL())
	fmt.Printf("pdf:      %s\n", id.PDFURL())
	fmt.Printf("source:   %s\n", id.SourceURL())
}

func printOldArticleID(id arxiv.OldArticleID) {
	fmt.Println("scheme:   old")
	fmt.Printf("archive:  %s (%s)\n", id.Archive, id.Archive.Name())
	if cat, ok := id.Category(); ok {
		fmt.Printf("category: %s\n", cat)
	}
	fmt.Printf("year:     %d\n", id.Year)
	fmt.Printf("month:    %d\n", id.Month)
	fmt.Printf("number:   %s\n", id.Number)
	fmt.Printf("version:  %s\n", versionLabel(id.Version))
	fmt.Printf("display:  %s\n", id)
	fmt.Printf("abs:      %s\n", id.AbsURL())
	fmt.Printf("pdf:      %s\n", id.PDFURL())
	fmt.Printf("source:   %s\n", id.SourceURL())
}

func versionLabel(v arxiv.ArticleVersion) string {
	if v.IsLatest() {
		return "latest"
	}
	return v.String()
}
