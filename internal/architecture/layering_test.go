package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePrefix = "shiddaha/internal/modules/"

// Layer rules, per importing layer: domain imports no other layer, ports
// import domain only, services stay inside their module, usecases and
// adapters may reach other modules only through dto and port/in.
func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	root := filepath.Join("..", "modules")
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		module, layer := moduleAndLayer(slash)
		if module == "" || layer == "" {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if !strings.HasPrefix(importPath, modulePrefix) {
				continue
			}
			if !importAllowed(module, layer, importPath) {
				t.Errorf("forbidden import in %s (%s layer): %s", slash, layer, importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
}

func moduleAndLayer(path string) (string, string) {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part != "modules" || i+1 >= len(parts) {
			continue
		}
		module := parts[i+1]
		rest := strings.Join(parts[i+2:], "/")
		for _, layer := range []string{"adapter/in", "adapter/out", "port/in", "port/out", "usecase", "service", "domain", "dto"} {
			if strings.HasPrefix(rest, layer+"/") {
				return module, layer
			}
		}
		return module, ""
	}
	return "", ""
}

func importAllowed(module, layer, importPath string) bool {
	rel := strings.TrimPrefix(importPath, modulePrefix)
	parts := strings.SplitN(rel, "/", 2)
	importModule := parts[0]
	importLayer := ""
	if len(parts) == 2 {
		importLayer = parts[1]
	}

	sameModule := importModule == module
	switch layer {
	case "domain":
		return false
	case "dto":
		return false
	case "port/in", "port/out":
		return sameModule && (importLayer == "domain" || importLayer == "dto")
	case "service":
		return sameModule
	case "usecase", "adapter/in", "adapter/out":
		if sameModule {
			return true
		}
		// Cross-module access goes through the other module's front door.
		return importLayer == "dto" || importLayer == "port/in"
	default:
		return false
	}
}
