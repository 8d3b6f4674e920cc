package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arcanaland/riftdata/internal/config"
	"github.com/arcanaland/riftdata/internal/pipeline"
)

var (
	verbose   bool
	flagPaths config.Paths

	logger *zap.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "riftdata",
	Short: "Rebuild the Riftbound expert card data file",
	Long: `riftdata rebuilds the expert card data JSON from the card CSV export.
It attaches image URLs from the images CSV, extracts ability keywords from the
rules text, and fills in cards missing from the CSV using the legacy JSON data.

Paths default to the files next to the executable, or to the locations set in
the config file (see 'riftdata config path').`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths()
		if err != nil {
			return err
		}

		_, err = pipeline.Run(pipeline.Options{
			CardsCSV:   paths.CardsCSV,
			ImagesCSV:  paths.ImagesCSV,
			LegacyJSON: paths.LegacyJSON,
			Output:     paths.Output,
		}, logger, cmd.OutOrStdout())
		return err
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.Flags().StringVar(&flagPaths.CardsCSV, "csv", "", "Path to card data CSV")
	RootCmd.Flags().StringVar(&flagPaths.ImagesCSV, "images-csv", "", "Path to image mapping CSV")
	RootCmd.Flags().StringVar(&flagPaths.LegacyJSON, "legacy-json", "", "Path to legacy JSON fallback data")
	RootCmd.Flags().StringVar(&flagPaths.Output, "output", "", "Output JSON path")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// resolvePaths merges the command-line paths with the config file
func resolvePaths() (config.Paths, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Paths{}, err
	}
	return cfg.Resolve(flagPaths), nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
