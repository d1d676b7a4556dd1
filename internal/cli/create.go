package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wanpc-dev/wanpc/internal/branding"
	"github.com/wanpc-dev/wanpc/internal/config"
	"github.com/wanpc-dev/wanpc/internal/engine"
	"github.com/wanpc-dev/wanpc/internal/logger"
)

var (
	createOutputDir  string
	createNoDefaults bool
	createNoInput    bool
	createSets       []string
)

var createCmd = &cobra.Command{
	Use:   "create <template>",
	Short: "Create a new project from a template",
	Long: `Create a new project from a configured template.

Variable values resolve in strictly increasing precedence: the template's
own declared defaults, then global defaults, then template-specific
defaults, then --set overrides. Remaining variables are prompted for.

Examples:
  $ ` + branding.CLIName() + ` create python-pkg
  $ ` + branding.CLIName() + ` create python-pkg --output-dir ~/projects
  $ ` + branding.CLIName() + ` create python-pkg --no-defaults
  $ ` + branding.CLIName() + ` create python-pkg --set author="John Doe" --set license=MIT`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createOutputDir, "output-dir", "o", "", "Where to create the project (default: current directory)")
	createCmd.Flags().BoolVar(&createNoDefaults, "no-defaults", false, "Ignore configured template and global defaults")
	createCmd.Flags().BoolVar(&createNoInput, "no-input", false, "Never prompt; use resolved and declared defaults as-is")
	createCmd.Flags().StringArrayVar(&createSets, "set", nil, "Override a variable as key=value (repeatable)")
	_ = viper.BindPFlag("output-dir", createCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("no-input", createCmd.Flags().Lookup("no-input"))
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	root, err := config.Load()
	if err != nil {
		return err
	}

	tmpl, ok := root.Templates[name]
	if !ok {
		return fmt.Errorf("%w: %q (run '%s list' to see available templates)",
			config.ErrTemplateNotFound, name, branding.CLIName())
	}
	if tmpl.Path == "" {
		return fmt.Errorf("no path set for template %q", name)
	}

	templatePath, err := expandPath(tmpl.Path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(templatePath); err != nil {
		return fmt.Errorf("template path does not exist: %s", templatePath)
	}

	manifest, err := engine.LoadManifest(templatePath)
	if err != nil {
		return err
	}
	if err := manifest.CheckVersion(buildVersion); err != nil {
		return err
	}

	overrides, err := parseSetFlags(createSets)
	if err != nil {
		return err
	}

	// Layer the variable mapping: engine-native defaults, then config
	// defaults unless bypassed, then command-line overrides.
	vars := manifest.Defaults()
	fromConfig := map[string]bool{}
	if !createNoDefaults {
		merged, err := config.Merged(root, name)
		if err != nil {
			return err
		}
		for k, v := range merged {
			vars[k] = v
			fromConfig[k] = true
			logger.Debug("default %s = %s\n", k, v)
		}
	}
	for k, v := range overrides {
		vars[k] = v
		fromConfig[k] = true
		logger.Debug("override %s = %s\n", k, v)
	}

	// Ask for whatever is still only covered by the template's declared
	// defaults. Derived and reserved variables are never prompted.
	if !viper.GetBool("no-input") {
		if err := promptForVariables(cmd, manifest, vars, fromConfig); err != nil {
			return err
		}
	}

	if err := manifest.RenderDerived(vars); err != nil {
		return err
	}

	outputDir := viper.GetString("output-dir")
	if outputDir == "" {
		outputDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
	}
	outputDir, err = expandPath(outputDir)
	if err != nil {
		return err
	}

	result, err := engine.Generate(templatePath, vars, outputDir)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		logger.Warn("warning: %s\n", w)
	}
	logger.Info("Created project from template %q in %s\n", name, result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
	return nil
}

// promptForVariables fills vars interactively for every promptable variable
// not already pinned by config defaults or --set overrides. Choice variables
// render as numbered menus; author-like variables with no declared default
// suggest the git identity.
func promptForVariables(cmd *cobra.Command, manifest *engine.Manifest, vars map[string]string, pinned map[string]bool) error {
	toAsk := manifest.PromptVariables()
	remaining := toAsk[:0]
	for _, v := range toAsk {
		if !pinned[v.Name] {
			remaining = append(remaining, v)
		}
	}
	if len(remaining) == 0 {
		return nil
	}

	p := newPrompter(cmd)
	fmt.Fprintln(cmd.ErrOrStderr(), "Please provide values for the following:")

	gitName, gitEmail := config.GitIdentity()
	for _, v := range remaining {
		if len(v.Choices) > 0 {
			idx, err := p.Select(v.Name+":", v.Choices)
			if err != nil {
				return err
			}
			vars[v.Name] = v.Choices[idx]
			continue
		}

		def := v.Default
		if def == "" {
			def = identitySuggestion(v.Name, gitName, gitEmail)
		}
		value, err := p.Ask(v.Name, def)
		if err != nil {
			return err
		}
		vars[v.Name] = value
	}
	return nil
}

// identitySuggestion proposes the git identity for conventional
// author/email variable names that have no other default.
func identitySuggestion(varName, gitName, gitEmail string) string {
	switch varName {
	case "author", "author_name", "full_name":
		return gitName
	case "email", "author_email":
		return gitEmail
	}
	return ""
}

// parseSetFlags splits repeated --set key=value flags into a map.
func parseSetFlags(sets []string) (map[string]string, error) {
	overrides := make(map[string]string, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", s)
		}
		overrides[key] = value
	}
	return overrides, nil
}
