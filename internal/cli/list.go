package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wanpc-dev/wanpc/internal/branding"
	"github.com/wanpc-dev/wanpc/internal/config"
)

var (
	listShowDefaults bool
	listJSON         bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long: `List all configured templates and their paths.

Use --show-defaults to see template-specific defaults alongside the global
defaults that apply to each template.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listShowDefaults, "show-defaults", "d", false, "Show template and applicable global default values")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a configured template for display.
type listEntry struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Path        string            `json:"path"`
	Defaults    map[string]string `json:"defaults,omitempty"`
	Globals     map[string]string `json:"applicable_globals,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	root, err := config.Load()
	if err != nil {
		return err
	}

	if len(root.Templates) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No templates configured. Use '%s config add-template' to add one.\n", branding.CLIName())
		return nil
	}

	var entries []listEntry
	for _, name := range sortedTemplateNames(root) {
		t := root.Templates[name]
		entry := listEntry{
			Name:        name,
			Description: t.Description,
			Path:        t.Path,
		}
		if listShowDefaults {
			entry.Defaults = t.Defaults
			entry.Globals = applicableGlobals(root, t)
		}
		entries = append(entries, entry)
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	if listShowDefaults {
		return printListDetailed(cmd, entries)
	}
	return printListTable(cmd, entries)
}

// applicableGlobals returns the global defaults not shadowed by a
// template-level default.
func applicableGlobals(root *config.Root, t config.Template) map[string]string {
	globals := map[string]string{}
	for k, v := range root.GlobalDefaults {
		if _, shadowed := t.Defaults[k]; !shadowed {
			globals[k] = v
		}
	}
	return globals
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tPATH")
	for _, e := range entries {
		desc := e.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, desc, e.Path)
	}
	return w.Flush()
}

func printListDetailed(cmd *cobra.Command, entries []listEntry) error {
	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "Template: %s\n", e.Name)
		if e.Description != "" {
			fmt.Fprintf(out, "  Description: %s\n", e.Description)
		}
		fmt.Fprintf(out, "  Path: %s\n", e.Path)
		if len(e.Defaults) > 0 {
			fmt.Fprintln(out, "  Template defaults:")
			for _, k := range sortedKeys(e.Defaults) {
				fmt.Fprintf(out, "    %s = %s\n", k, e.Defaults[k])
			}
		}
		if len(e.Globals) > 0 {
			fmt.Fprintln(out, "  Applicable global defaults:")
			for _, k := range sortedKeys(e.Globals) {
				fmt.Fprintf(out, "    %s = %s\n", k, e.Globals[k])
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
