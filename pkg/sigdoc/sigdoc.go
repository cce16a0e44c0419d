// Package sigdoc lists the exported function and method signatures of Go packages.
//
// It reads source files with go/parser and never type-checks or loads the packages,
// so it only describes the shapes of declarations as written.
package sigdoc

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/norio-nomura/lazyseq/pkg/accum"
	"github.com/norio-nomura/lazyseq/pkg/option"
	"github.com/norio-nomura/lazyseq/pkg/xiter"
)

// Signature describes one exported function or method.
type Signature struct {
	Package  string `json:"package" yaml:"package"`
	Name     string `json:"name" yaml:"name"`
	Receiver string `json:"receiver,omitempty" yaml:"receiver,omitempty"`
	Text     string `json:"signature" yaml:"signature"`
	Doc      string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Load returns the exported signatures declared in the non-test Go files of dir,
// in file name order and then declaration order. Methods are included when withMethods is set
// and their receiver type is exported.
func Load(dir string, withMethods bool) ([]Signature, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read package directory: %w", err)
	}
	fset := token.NewFileSet()
	sigs := []Signature{}
	for entry := range xiter.Filter(slices.Values(entries), isSource) {
		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		found := accum.Collect(xiter.FilterMap(slices.Values(f.Decls), func(decl ast.Decl, _ int) option.Option[Signature] {
			return signatureOf(fset, f.Name.Name, decl, withMethods)
		}))
		slog.Debug("sigdoc", slog.String("file", path), slog.Int("signatures", len(found)))
		sigs = append(sigs, found...)
	}
	return sigs, nil
}

// LoadAll runs Load for each package directory below root, concatenating the results.
func LoadAll(root string, pkgs []string, withMethods bool) ([]Signature, error) {
	sigs := []Signature{}
	for _, pkg := range pkgs {
		found, err := Load(filepath.Join(root, pkg), withMethods)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pkg, err)
		}
		sigs = append(sigs, found...)
	}
	return sigs, nil
}

func isSource(entry fs.DirEntry, _ int) bool {
	name := entry.Name()
	return !entry.IsDir() && strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}

func signatureOf(fset *token.FileSet, pkg string, decl ast.Decl, withMethods bool) option.Option[Signature] {
	fn, ok := decl.(*ast.FuncDecl)
	if !ok || !fn.Name.IsExported() {
		return option.None[Signature]()
	}
	sig := Signature{Package: pkg, Name: fn.Name.Name, Doc: firstLine(fn.Doc)}
	text := fn.Name.Name + strings.TrimPrefix(nodeString(fset, fn.Type), "func")
	if fn.Recv != nil && len(fn.Recv.List) > 0 {
		recv := fn.Recv.List[0].Type
		if !withMethods || !ast.IsExported(baseTypeName(recv)) {
			return option.None[Signature]()
		}
		sig.Receiver = nodeString(fset, recv)
		text = "(" + sig.Receiver + ") " + text
	}
	sig.Text = text
	return option.Some(sig)
}

// baseTypeName strips pointers and type arguments from a receiver type.
func baseTypeName(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name
		default:
			return ""
		}
	}
}

// nodeString prints node on a single line.
func nodeString(fset *token.FileSet, node any) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, node); err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return strings.Join(strings.Fields(buf.String()), " ")
}

func firstLine(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	line, _, _ := strings.Cut(doc.Text(), "\n")
	return line
}
