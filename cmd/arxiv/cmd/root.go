package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arxiv",
	Short: "Inspect arXiv identifiers, categories, and stamps",
	Long: `arxiv parses the string formats used by arxiv.org and prints their parts.

Commands:
  id        - article identifiers, e.g. "arXiv:0706.0001v1" or "arXiv:math.GT/0309136"
  category  - category identifiers, e.g. "astro-ph.HE"
  stamp     - PDF stamps, e.g. "arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007"
  taxonomy  - the known groups and archives`,
}

func Execute() error {
	return rootCmd.Execute()
}
