package app

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/Lumos7-3/A1-Internship-Project"

// faceStack lists import prefixes that need the OpenCV or dlib native libraries.
var faceStack = []string{"gocv.io/x/gocv", "github.com/Kagami/go-face"}

// packageImports returns the imports of the non-test Go files in dir.
func packageImports(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	var out []string
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			p, _ := strconv.Unquote(imp.Path.Value)
			out = append(out, p)
		}
	}
	return out
}

// faceImportChain walks local packages from dir and returns the chain to the first
// face stack import, or nil.
func faceImportChain(t *testing.T, root, pkg string, seen map[string]bool) []string {
	if seen[pkg] {
		return nil
	}
	seen[pkg] = true
	dir := filepath.Join(root, strings.TrimPrefix(strings.TrimPrefix(pkg, modulePath), "/"))
	for _, imp := range packageImports(t, dir) {
		for _, bad := range faceStack {
			if strings.HasPrefix(imp, bad) {
				return []string{pkg, imp}
			}
		}
		if strings.HasPrefix(imp, modulePath) {
			if chain := faceImportChain(t, root, imp, seen); chain != nil {
				return append([]string{pkg}, chain...)
			}
		}
	}
	return nil
}

func TestBrowserAndReportDoNotLinkFaceStack(t *testing.T) {
	for _, pkg := range []string{
		modulePath + "/app",
		modulePath + "/app/gui",
		modulePath + "/cmd/platebrowser",
		modulePath + "/cmd/platereport",
	} {
		if chain := faceImportChain(t, "..", pkg, map[string]bool{}); chain != nil {
			t.Fatalf("%s links the face stack: %s", pkg, strings.Join(chain, " -> "))
		}
	}
}

func TestTrackerLinksFaceStack(t *testing.T) {
	if chain := faceImportChain(t, "..", modulePath+"/cmd/facetracker", map[string]bool{}); chain == nil {
		t.Fatalf("facetracker should reach the face detectors")
	}
}
