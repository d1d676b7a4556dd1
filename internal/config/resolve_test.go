package config

import (
	"errors"
	"testing"
)

func TestResolvePrecedence(t *testing.T) {
	root := NewRoot()
	if err := root.AddTemplate("python-pkg", "/t/python", ""); err != nil {
		t.Fatal(err)
	}

	t.Run("template default beats global", func(t *testing.T) {
		root.SetGlobalDefault("author", "Global Jane")
		if err := root.SetDefault("python-pkg", "author", "Template Jane"); err != nil {
			t.Fatal(err)
		}
		merged, err := Resolve(root, "python-pkg", nil)
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if merged["author"] != "Template Jane" {
			t.Errorf("author = %q, want template value", merged["author"])
		}
	})

	t.Run("global beats engine-native", func(t *testing.T) {
		root.SetGlobalDefault("license", "MIT")
		merged, err := Resolve(root, "python-pkg", map[string]string{"license": "Apache-2.0"})
		if err != nil {
			t.Fatal(err)
		}
		if merged["license"] != "MIT" {
			t.Errorf("license = %q, want global value MIT", merged["license"])
		}
	})

	t.Run("engine-native survives when unset elsewhere", func(t *testing.T) {
		merged, err := Resolve(root, "python-pkg", map[string]string{"editor": "vim"})
		if err != nil {
			t.Fatal(err)
		}
		if merged["editor"] != "vim" {
			t.Errorf("editor = %q, want engine value vim", merged["editor"])
		}
	})

	t.Run("global applies to templates without override", func(t *testing.T) {
		if err := root.AddTemplate("go-svc", "/t/go", ""); err != nil {
			t.Fatal(err)
		}
		merged, err := Resolve(root, "go-svc", nil)
		if err != nil {
			t.Fatal(err)
		}
		if merged["license"] != "MIT" {
			t.Errorf("license = %q, want global MIT", merged["license"])
		}
	})
}

func TestResolveScenario(t *testing.T) {
	// add python-pkg, set global license=MIT, set template author=Jane:
	// the resolved mapping is exactly {license: MIT, author: Jane}.
	root := NewRoot()
	if err := root.AddTemplate("python-pkg", "~/templates/python", ""); err != nil {
		t.Fatal(err)
	}
	root.SetGlobalDefault("license", "MIT")
	if err := root.SetDefault("python-pkg", "author", "Jane"); err != nil {
		t.Fatal(err)
	}

	merged, err := Resolve(root, "python-pkg", map[string]string{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(merged) != 2 || merged["license"] != "MIT" || merged["author"] != "Jane" {
		t.Errorf("Resolve() = %v, want {license:MIT author:Jane}", merged)
	}
}

func TestResolveUnknownTemplate(t *testing.T) {
	_, err := Resolve(NewRoot(), "nope", nil)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Resolve() error = %v, want ErrTemplateNotFound", err)
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	root := NewRoot()
	if err := root.AddTemplate("python-pkg", "/t/python", ""); err != nil {
		t.Fatal(err)
	}
	root.SetGlobalDefault("license", "MIT")

	engine := map[string]string{"license": "Apache-2.0"}
	if _, err := Resolve(root, "python-pkg", engine); err != nil {
		t.Fatal(err)
	}
	if engine["license"] != "Apache-2.0" {
		t.Errorf("engine defaults mutated: %v", engine)
	}
}
