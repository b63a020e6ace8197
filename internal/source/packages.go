package source

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"iter"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"symbol-inventory/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Packages yields the type names declared by Go packages.
//
// Import paths become dotted package prefixes, so "example.com/app/store"
// declaring Order yields "example.com.app.store.Order". Types declared inside
// function bodies use the nested form: "Func$Local" for a type in the body of
// Func, "Recv$Method$Local" for one in a method, and "Func$2$Local" for a
// type inside the second function literal of Func.
type Packages struct {
	// Patterns are standard Go package patterns (e.g., "./...", "example.com/app/store").
	Patterns []string
	// Dir is the directory the go command runs in; empty means the current one.
	Dir string
	// Tests includes test packages.
	Tests bool
	// ExportedOnly skips unexported package-level types.
	ExportedOnly bool
}

func (p Packages) String() string {
	return "packages(" + strings.Join(p.Patterns, " ") + ")"
}

// Names loads the packages on first iteration and yields their types.
func (p Packages) Names(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		pkgs, err := p.load(ctx)
		if err != nil {
			yield("", err)
			return
		}

		// Test variants repeat the declarations of the package under test.
		seen := make(map[string]struct{})
		emit := func(name string) bool {
			if _, dup := seen[name]; dup {
				return true
			}
			seen[name] = struct{}{}

			return yield(name, nil)
		}

		for _, pkg := range pkgs {
			if isTestMain(pkg) {
				continue
			}

			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}

			if !p.processPackage(pkg, emit) {
				return
			}
		}
	}
}

// isTestMain reports whether pkg is the synthesized main of a test binary.
func isTestMain(pkg *packages.Package) bool {
	return pkg.Name == "main" && strings.HasSuffix(pkg.PkgPath, ".test")
}

func (p Packages) load(ctx context.Context) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     p.Dir,
		Tests:   p.Tests,
	}

	pkgs, err := packages.Load(cfg, p.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load packages: %w", ErrSourceFailed, err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: package errors: %v", ErrSourceFailed, errs)
	}

	return pkgs, nil
}

// processPackage yields package-level types, then function-local ones.
func (p Packages) processPackage(pkg *packages.Package, yield func(string) bool) bool {
	prefix := common.DottedPath(pkg.PkgPath)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}

		if p.ExportedOnly && !typeName.Exported() {
			continue
		}

		if !yield(prefix+"."+name) {
			return false
		}
	}

	if p.ExportedOnly {
		return true
	}

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Body == nil {
				continue
			}

			for local := range localTypes(fd) {
				if !yield(prefix+"."+local) {
					return false
				}
			}
		}
	}

	return true
}

// localTypes yields the nested names of types declared in the body of fd.
func localTypes(fd *ast.FuncDecl) iter.Seq[string] {
	outer := funcName(fd)

	return func(yield func(string) bool) {
		closures := 0
		stopped := false
		// Function literal index of every open node, 0 for anything else.
		var stack []int

		ast.Inspect(fd.Body, func(n ast.Node) bool {
			if stopped {
				return false
			}

			if n == nil {
				stack = stack[:len(stack)-1]
				return true
			}

			lit := 0

			switch node := n.(type) {
			case *ast.FuncLit:
				closures++
				lit = closures

			case *ast.TypeSpec:
				name := outer + "$" + node.Name.Name
				if enclosing := innermost(stack); enclosing > 0 {
					name = outer + "$" + strconv.Itoa(enclosing) + "$" + node.Name.Name
				}

				if !yield(name) {
					stopped = true
					return false
				}
			}

			stack = append(stack, lit)

			return true
		})
	}
}

func innermost(stack []int) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] > 0 {
			return stack[i]
		}
	}

	return 0
}

// funcName returns "Func" for functions and "Recv$Method" for methods.
func funcName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return fd.Name.Name
	}

	if recv := receiverName(fd.Recv.List[0].Type); recv != "" {
		return recv + "$" + fd.Name.Name
	}

	return fd.Name.Name
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.ParenExpr:
		return receiverName(e.X)
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	default:
		return ""
	}
}
