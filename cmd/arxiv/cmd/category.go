package cmd

import (
	"fmt"
	"strings"

	"github.com/neoncitylights/arxiv"
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category <category>",
	Short: "Parse a category identifier",
	Long: `Parses a category identifier such as "astro-ph.HE" and prints its
archive, subject class, and group. The bracketed form that appears inside a
stamp, such as "[cs.LG]", is accepted as well.

Examples:
  arxiv category astro-ph.HE
  arxiv category math-ph.MP
  arxiv category "[cs.LG]"`,
	Args: cobra.ExactArgs(1),
	RunE: runCategory,
}

func init() {
	rootCmd.AddCommand(categoryCmd)
}

func runCategory(cmd *cobra.Command, args []string) error {
	var (
		cat arxiv.CategoryID
		err error
	)
	if strings.HasPrefix(args[0], "[") {
		cat, err = arxiv.ParseBracketedCategoryID(args[0])
	} else {
		cat, err = arxiv.ParseCategoryID(args[0])
	}
	if err != nil {
		return err
	}

	group := cat.Group()

	fmt.Printf("archive:  %s (%s)\n", cat.Archive, cat.Archive.Name())
	fmt.Printf("subject:  %s\n", cat.Subject)
	fmt.Printf("group:    %s (%s)\n", group, group.Name())
	fmt.Printf("display:  %s\n", cat)
	fmt.Printf("url:      %s\n", cat.Archive.URL())
	return nil
}
