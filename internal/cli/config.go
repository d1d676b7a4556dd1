package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/wanpc-dev/wanpc/internal/config"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage templates and default values",
	Long: `Manage the wanpc configuration: add and remove templates, and set
default values at the template or global level.

Template defaults take precedence over global defaults.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := config.Load()
		if err != nil {
			return err
		}
		if len(root.Templates) == 0 && len(root.GlobalDefaults) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No configuration found.")
			return nil
		}
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(root)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "config-path",
	Short: "Show the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path := config.FilePath()
		fmt.Fprintln(out, path)

		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintln(out, "Status: file does not exist yet (created on first write)")
			return nil
		}
		fmt.Fprintf(out, "Status: file exists (%d bytes)\n", info.Size())
		return nil
	},
}
