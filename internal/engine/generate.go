package engine

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// GenerationError wraps any failure surfaced while materializing a project
// from a template.
type GenerationError struct {
	Template string // template directory base name
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating from template %q: %v", e.Template, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Result holds the outcome of a generation.
type Result struct {
	OutputDir string
	Files     []string // rendered paths relative to OutputDir
	Warnings  []string
}

// Generate materializes the template rooted at templatePath into outputDir.
// Every payload file's content and every path segment is rendered through
// text/template with vars; a trailing .tmpl extension is stripped from file
// names. Rendered top-level entries that already exist under outputDir abort
// the run before anything is written. All failures come back as a
// *GenerationError.
func Generate(templatePath string, vars map[string]string, outputDir string) (*Result, error) {
	name := filepath.Base(templatePath)
	fail := func(err error) (*Result, error) {
		return nil, &GenerationError{Template: name, Err: err}
	}

	info, err := os.Stat(templatePath)
	if err != nil {
		return fail(fmt.Errorf("template path: %w", err))
	}
	if !info.IsDir() {
		return fail(fmt.Errorf("template path %s is not a directory", templatePath))
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fail(fmt.Errorf("creating output directory: %w", err))
	}

	// Refuse to clobber: no rendered top-level entry may already exist.
	entries, err := os.ReadDir(templatePath)
	if err != nil {
		return fail(fmt.Errorf("reading template directory: %w", err))
	}
	payload := 0
	for _, entry := range entries {
		if entry.Name() == ManifestFileName {
			continue
		}
		payload++
		rendered, err := renderString(entry.Name(), strings.TrimSuffix(entry.Name(), ".tmpl"), vars)
		if err != nil {
			return fail(fmt.Errorf("rendering name %q: %w", entry.Name(), err))
		}
		if _, err := os.Stat(filepath.Join(outputDir, rendered)); err == nil {
			return fail(fmt.Errorf("%s already exists in %s; remove it first", rendered, outputDir))
		}
	}

	result := &Result{OutputDir: outputDir}
	if payload == 0 {
		result.Warnings = append(result.Warnings, "template has no payload files")
		return result, nil
	}

	walkErr := filepath.WalkDir(templatePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(templatePath, path)
		if err != nil {
			return err
		}
		if rel == "." || rel == ManifestFileName {
			return nil
		}

		outRel, err := renderString(rel, rel, vars)
		if err != nil {
			return fmt.Errorf("rendering path %q: %w", rel, err)
		}
		outPath := filepath.Join(outputDir, outRel)

		if d.IsDir() {
			return os.MkdirAll(outPath, 0755)
		}

		outPath = strings.TrimSuffix(outPath, ".tmpl")
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}
		rendered, err := renderString(rel, string(content), vars)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", rel, err)
		}

		srcInfo, err := d.Info()
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, []byte(rendered), srcInfo.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		outFileRel, err := filepath.Rel(outputDir, outPath)
		if err != nil {
			return err
		}
		result.Files = append(result.Files, outFileRel)
		return nil
	})
	if walkErr != nil {
		return fail(walkErr)
	}

	return result, nil
}

// renderString executes text through text/template with vars as the dot.
// References to variables absent from vars are errors, not blanks.
func renderString(name, text string, vars map[string]string) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", err
	}
	return buf.String(), nil
}
