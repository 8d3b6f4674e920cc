package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/riftdata/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print domain and type distribution of the card data file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := dataPath(cmd)
		if err != nil {
			return err
		}

		records, err := report.ReadFile(path)
		if err != nil {
			return err
		}

		report.Print(cmd.OutOrStdout(), report.Distribution(records))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringP("data", "d", "", "Path to the card data JSON (defaults to the rebuild output)")
}

// dataPath returns the --data flag, or the configured rebuild output
func dataPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, nil
	}
	paths, err := resolvePaths()
	if err != nil {
		return "", err
	}
	return paths.Output, nil
}
