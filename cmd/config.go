package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/riftdata/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the riftdata config file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, created, err := config.InitConfig()
		if err != nil {
			return err
		}

		configPath := config.GetConfigFilePath()
		if created {
			fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", configPath)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Config file already exists at:", configPath)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Data directory:", cfg.DataDir)
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the config file",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
