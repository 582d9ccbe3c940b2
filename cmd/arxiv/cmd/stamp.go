package cmd

import (
	"fmt"

	"github.com/neoncitylights/arxiv"
	"github.com/spf13/cobra"
)

var stampCmd = &cobra.Command{
	Use:   "stamp <stamp>",
	Short: "Parse a PDF stamp",
	Long: `Parses the provenance line printed along the side of an arXiv PDF.

Example:
  arxiv stamp "arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007"`,
	Args: cobra.ExactArgs(1),
	RunE: runStamp,
}

func init() {
	rootCmd.AddCommand(stampCmd)
}

func runStamp(cmd *cobra.Command, args []string) error {
	stamp, err := arxiv.ParseStamp(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("id:        %s\n", stamp.ID)
	fmt.Printf("category:  %s\n", stamp.Category)
	fmt.Printf("group:     %s\n", stamp.Category.Group())
	fmt.Printf("submitted: %s\n", stamp.Submitted.Format("2006-01-02"))
	fmt.Printf("abs:       %s\n", stamp.ID.AbsURL())
	return nil
}
