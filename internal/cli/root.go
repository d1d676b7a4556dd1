package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wanpc-dev/wanpc/internal/branding"
	"github.com/wanpc-dev/wanpc/internal/logger"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates projects from named, path-located templates.
Templates and their default values are managed in a single config file;
defaults layer with strict precedence: template-specific over global over
the template's own declared defaults.

Quick start:
  1. Add a template:
     $ ` + branding.CLIName() + ` config add-template --name python-pkg --path ~/templates/python
  2. Set some defaults:
     $ ` + branding.CLIName() + ` config set-default --name python-pkg --key author --value "Your Name"
     $ ` + branding.CLIName() + ` config set-global-default --key license --value MIT
  3. Create a project:
     $ ` + branding.CLIName() + ` create python-pkg`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug output")

	// WANPC_* environment variables back every bound flag.
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// Execute runs the root command with build info injected via ldflags.
// Errors are rendered here once; the caller only maps them to an exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Error: %v\n", err)
		return err
	}
	return nil
}
