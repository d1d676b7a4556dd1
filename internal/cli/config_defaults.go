package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wanpc-dev/wanpc/internal/config"
	"github.com/wanpc-dev/wanpc/internal/engine"
	"github.com/wanpc-dev/wanpc/internal/logger"
)

var (
	defName  string
	defKey   string
	defValue string
	defYes   bool
)

func init() {
	setDefaultCmd.Flags().StringVarP(&defName, "name", "n", "", "Template name")
	setDefaultCmd.Flags().StringVarP(&defKey, "key", "k", "", "Default key")
	setDefaultCmd.Flags().StringVar(&defValue, "value", "", "Default value")
	configCmd.AddCommand(setDefaultCmd)

	removeDefaultCmd.Flags().StringVarP(&defName, "name", "n", "", "Template name")
	removeDefaultCmd.Flags().StringVarP(&defKey, "key", "k", "", "Default key")
	removeDefaultCmd.Flags().BoolVarP(&defYes, "yes", "y", false, "Skip the confirmation prompt")
	configCmd.AddCommand(removeDefaultCmd)

	setGlobalDefaultCmd.Flags().StringVarP(&defKey, "key", "k", "", "Default key")
	setGlobalDefaultCmd.Flags().StringVar(&defValue, "value", "", "Default value")
	configCmd.AddCommand(setGlobalDefaultCmd)

	removeGlobalDefaultCmd.Flags().StringVarP(&defKey, "key", "k", "", "Default key")
	removeGlobalDefaultCmd.Flags().BoolVarP(&defYes, "yes", "y", false, "Skip the confirmation prompt")
	configCmd.AddCommand(removeGlobalDefaultCmd)
}

var setDefaultCmd = &cobra.Command{
	Use:   "set-default",
	Short: "Set a template-specific default",
	Long: `Set a default value for one variable of a template.

The key must be declared in the template's variables manifest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := config.Load()
		if err != nil {
			return err
		}

		p := newPrompter(cmd)
		name := defName
		if name == "" {
			names := sortedTemplateNames(root)
			if len(names) == 0 {
				return fmt.Errorf("no templates configured")
			}
			idx, err := p.Select("Select template:", names)
			if err != nil {
				return err
			}
			name = names[idx]
		}

		tmpl, ok := root.Templates[name]
		if !ok {
			return fmt.Errorf("%w: %q", config.ErrTemplateNotFound, name)
		}

		key := defKey
		if key == "" {
			if key, err = p.AskRequired("Key"); err != nil {
				return err
			}
		}

		// Only keys the template actually declares may carry a default.
		declared, err := declaredVariables(tmpl.Path)
		if err != nil {
			return err
		}
		if _, ok := declared[key]; !ok {
			return fmt.Errorf("key %q is not declared in the template's %s (available: %s)",
				key, engine.ManifestFileName, strings.Join(sortedKeys(declared), ", "))
		}

		value := defValue
		if value == "" && !cmd.Flags().Changed("value") {
			if value, err = p.Ask("Value", tmpl.Defaults[key]); err != nil {
				return err
			}
		}

		if err := root.SetDefault(name, key, value); err != nil {
			return err
		}
		if err := config.Save(root); err != nil {
			return err
		}

		logger.Info("Set default for %q: %s=%s\n", name, key, value)
		return nil
	},
}

var removeDefaultCmd = &cobra.Command{
	Use:   "remove-default",
	Short: "Remove a template-specific default",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := config.Load()
		if err != nil {
			return err
		}

		p := newPrompter(cmd)
		name := defName
		if name == "" {
			names := sortedTemplateNames(root)
			if len(names) == 0 {
				return fmt.Errorf("no templates configured")
			}
			idx, err := p.Select("Select template:", names)
			if err != nil {
				return err
			}
			name = names[idx]
		}

		tmpl, ok := root.Templates[name]
		if !ok {
			return fmt.Errorf("%w: %q", config.ErrTemplateNotFound, name)
		}

		key := defKey
		if key == "" {
			keys := sortedKeys(tmpl.Defaults)
			if len(keys) == 0 {
				return fmt.Errorf("no defaults configured for template %q", name)
			}
			idx, err := p.Select("Select default to remove:", keys)
			if err != nil {
				return err
			}
			key = keys[idx]
		}

		if !defYes {
			ok, err := p.Confirm(fmt.Sprintf("Remove default %q from template %q?", key, name))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "Operation cancelled.")
				return nil
			}
		}

		if err := root.RemoveDefault(name, key); err != nil {
			return err
		}
		if err := config.Save(root); err != nil {
			return err
		}

		logger.Info("Removed default %q from %q\n", key, name)
		return nil
	},
}

var setGlobalDefaultCmd = &cobra.Command{
	Use:   "set-global-default",
	Short: "Set a global default",
	Long:  `Set a default value that applies to every template unless overridden by a template-specific default.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompter(cmd)

		key := defKey
		var err error
		if key == "" {
			if key, err = p.AskRequired("Key"); err != nil {
				return err
			}
		}

		root, err := config.Load()
		if err != nil {
			return err
		}

		value := defValue
		if value == "" && !cmd.Flags().Changed("value") {
			if value, err = p.Ask("Value", root.GlobalDefaults[key]); err != nil {
				return err
			}
		}

		root.SetGlobalDefault(key, value)
		if err := config.Save(root); err != nil {
			return err
		}

		logger.Info("Set global default: %s=%s\n", key, value)
		return nil
	},
}

var removeGlobalDefaultCmd = &cobra.Command{
	Use:   "remove-global-default",
	Short: "Remove a global default",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := config.Load()
		if err != nil {
			return err
		}

		p := newPrompter(cmd)
		key := defKey
		if key == "" {
			keys := sortedKeys(root.GlobalDefaults)
			if len(keys) == 0 {
				return fmt.Errorf("no global defaults configured")
			}
			idx, err := p.Select("Select global default to remove:", keys)
			if err != nil {
				return err
			}
			key = keys[idx]
		}

		if !defYes {
			ok, err := p.Confirm(fmt.Sprintf("Remove global default %q?", key))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "Operation cancelled.")
				return nil
			}
		}

		if err := root.RemoveGlobalDefault(key); err != nil {
			return err
		}
		if err := config.Save(root); err != nil {
			return err
		}

		logger.Info("Removed global default %q\n", key)
		return nil
	},
}

// declaredVariables loads the template's manifest and returns the
// non-reserved variable names with their engine-native defaults.
func declaredVariables(templatePath string) (map[string]string, error) {
	abs, err := expandPath(templatePath)
	if err != nil {
		return nil, err
	}
	manifest, err := engine.LoadManifest(abs)
	if err != nil {
		return nil, err
	}
	return manifest.Defaults(), nil
}
