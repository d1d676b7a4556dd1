package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wanpc-dev/wanpc/internal/config"
	"github.com/wanpc-dev/wanpc/internal/engine"
	"github.com/wanpc-dev/wanpc/internal/logger"
)

// Flags for the template-management subcommands. Any required value left
// unset is gathered interactively before the shared code path runs.
var (
	tmplName        string
	tmplPath        string
	tmplDescription string
	tmplYes         bool
)

func init() {
	addTemplateCmd.Flags().StringVarP(&tmplName, "name", "n", "", "Template name")
	addTemplateCmd.Flags().StringVarP(&tmplPath, "path", "p", "", "Template path")
	addTemplateCmd.Flags().StringVarP(&tmplDescription, "description", "d", "", "Template description")
	configCmd.AddCommand(addTemplateCmd)

	removeTemplateCmd.Flags().StringVarP(&tmplName, "name", "n", "", "Template name")
	removeTemplateCmd.Flags().BoolVarP(&tmplYes, "yes", "y", false, "Skip the confirmation prompt")
	configCmd.AddCommand(removeTemplateCmd)

	setDescriptionCmd.Flags().StringVarP(&tmplName, "name", "n", "", "Template name")
	setDescriptionCmd.Flags().StringVarP(&tmplDescription, "description", "d", "", "Template description")
	configCmd.AddCommand(setDescriptionCmd)
}

var addTemplateCmd = &cobra.Command{
	Use:   "add-template",
	Short: "Add a new template",
	Long: `Register a template directory under a unique name.

The path must exist and contain a ` + engine.ManifestFileName + ` variables manifest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, path, description := tmplName, tmplPath, tmplDescription

		p := newPrompter(cmd)
		var err error
		if name == "" {
			if name, err = p.AskRequired("Template name"); err != nil {
				return err
			}
		}
		if path == "" {
			if path, err = p.AskRequired("Template path"); err != nil {
				return err
			}
		}
		if description == "" && !cmd.Flags().Changed("description") {
			if description, err = p.Ask("Description (optional)", ""); err != nil {
				return err
			}
		}

		absPath, err := expandPath(path)
		if err != nil {
			return err
		}
		if _, err := os.Stat(absPath); err != nil {
			return fmt.Errorf("template path does not exist: %s", absPath)
		}
		if _, err := os.Stat(filepath.Join(absPath, engine.ManifestFileName)); err != nil {
			return fmt.Errorf("no %s found in %s", engine.ManifestFileName, absPath)
		}

		root, err := config.Load()
		if err != nil {
			return err
		}
		if err := root.AddTemplate(name, absPath, description); err != nil {
			return err
		}
		if err := config.Save(root); err != nil {
			return err
		}

		logger.Info("Added template %q with path %s\n", name, absPath)
		return nil
	},
}

var removeTemplateCmd = &cobra.Command{
	Use:   "remove-template",
	Short: "Remove a template",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := config.Load()
		if err != nil {
			return err
		}

		p := newPrompter(cmd)
		name := tmplName
		if name == "" {
			names := sortedTemplateNames(root)
			if len(names) == 0 {
				return fmt.Errorf("no templates configured")
			}
			idx, err := p.Select("Select template to remove:", names)
			if err != nil {
				return err
			}
			name = names[idx]
		}

		if _, ok := root.Templates[name]; !ok {
			return fmt.Errorf("%w: %q", config.ErrTemplateNotFound, name)
		}

		if !tmplYes {
			ok, err := p.Confirm(fmt.Sprintf("Remove template %q and its defaults?", name))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "Operation cancelled.")
				return nil
			}
		}

		if err := root.RemoveTemplate(name); err != nil {
			return err
		}
		if err := config.Save(root); err != nil {
			return err
		}

		logger.Info("Removed template %q\n", name)
		return nil
	},
}

var setDescriptionCmd = &cobra.Command{
	Use:   "set-description",
	Short: "Set a template's description",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompter(cmd)
		name, description := tmplName, tmplDescription

		var err error
		if name == "" {
			if name, err = p.AskRequired("Template name"); err != nil {
				return err
			}
		}
		if description == "" && !cmd.Flags().Changed("description") {
			if description, err = p.Ask("Description", ""); err != nil {
				return err
			}
		}

		root, err := config.Load()
		if err != nil {
			return err
		}
		if err := root.SetDescription(name, description); err != nil {
			return err
		}
		if err := config.Save(root); err != nil {
			return err
		}

		logger.Info("Updated description for %q\n", name)
		return nil
	},
}
