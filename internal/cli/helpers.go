package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wanpc-dev/wanpc/internal/config"
	"github.com/wanpc-dev/wanpc/internal/prompt"
)

// newPrompter builds a Prompter over the command's stdin and stderr, so
// interactive dialogue never pollutes stdout.
func newPrompter(cmd *cobra.Command) *prompt.Prompter {
	return prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// expandPath turns a user-supplied path into an absolute one, expanding a
// leading ~ to the home directory.
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path %s: %w", path, err)
	}
	return abs, nil
}

// sortedTemplateNames returns the configured template names in stable order.
func sortedTemplateNames(root *config.Root) []string {
	names := make([]string, 0, len(root.Templates))
	for name := range root.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortedKeys returns map keys in stable order for display.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
