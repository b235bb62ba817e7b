package main

import (
	"bytes"
	"fmt"
	"go/types"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

// DefaultRenames maps simd type names to their simd4 alias, as lowercase
// words that are title-cased and joined on output.
var DefaultRenames = map[string]string{
	"Float32x4":   "float",
	"Mask32x4":    "bool",
	"Int32x4":     "int",
	"IntMask32x4": "int bool",
}

// Generator produces the forwarding file.
type Generator struct {
	SourcePkg  string
	PackageOut string

	// Renames maps a simd type name to the simd4 word replacing it.
	Renames map[string]string

	// Count is the number of forwarders emitted by the last Run.
	Count int
}

// Forwarder describes one generated function.
type Forwarder struct {
	Name   string // simd4 name
	Target string // simd function name
	Params []Param
	Result string // simd4 result type
}

// Param is one parameter of a forwarder.
type Param struct {
	Name string
	Type string
}

// Run loads the source package and returns the formatted file.
func (g *Generator) Run() ([]byte, error) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes}
	pkgs, err := packages.Load(cfg, g.SourcePkg)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", g.SourcePkg, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("load %s: got %d packages", g.SourcePkg, len(pkgs))
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("load %s: package has errors", g.SourcePkg)
	}

	fwds := g.Collect(pkgs[0].Types)
	g.Count = len(fwds)
	return g.Emit(pkgs[0].Types.Path(), pkgs[0].Types.Name(), fwds)
}

// Collect returns the forwarders for pkg, sorted by simd4 name.
func (g *Generator) Collect(pkg *types.Package) []Forwarder {
	var fwds []Forwarder
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}
		sig := fn.Type().(*types.Signature)
		if sig.TypeParams().Len() > 0 || sig.Results().Len() != 1 || sig.Variadic() {
			continue
		}
		result, ok := g.rename(sig.Results().At(0).Type(), pkg)
		if !ok || result == "" {
			continue
		}

		f := Forwarder{Name: g.funcName(name), Target: name, Result: result}
		usable := true
		for p := range sig.Params().Variables() {
			typ, ok := g.rename(p.Type(), pkg)
			if !ok {
				usable = false
				break
			}
			if typ == "" {
				typ = types.TypeString(p.Type(), nil)
			}
			f.Params = append(f.Params, Param{Name: p.Name(), Type: typ})
		}
		if usable {
			fwds = append(fwds, f)
		}
	}
	slices.SortFunc(fwds, func(a, b Forwarder) int { return strings.Compare(a.Name, b.Name) })
	return fwds
}

// rename maps a type of pkg to its simd4 name. It returns "" for types from
// outside pkg (kept as written) and false for pkg types with no simd4 alias.
func (g *Generator) rename(t types.Type, pkg *types.Package) (string, bool) {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() != pkg {
		// Containers of engine types would need element-wise conversion.
		switch u := t.(type) {
		case *types.Slice:
			name, ok := g.rename(u.Elem(), pkg)
			return "", ok && name == ""
		case *types.Array:
			name, ok := g.rename(u.Elem(), pkg)
			return "", ok && name == ""
		}
		return "", true
	}
	word, ok := g.Renames[named.Obj().Name()]
	if !ok {
		return "", false
	}
	return title(word), true
}

// funcName replaces a renamed type suffix of a simd function name. Longer
// suffixes are tried first, so IntMask32x4 wins over Mask32x4.
func (g *Generator) funcName(name string) string {
	suffixes := slices.Collect(maps.Keys(g.Renames))
	slices.SortFunc(suffixes, func(a, b string) int {
		if n := len(b) - len(a); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
	for _, from := range suffixes {
		if base, ok := strings.CutSuffix(name, from); ok && base != "" {
			return base + title(g.Renames[from])
		}
	}
	return name
}

// title turns "int bool" into "IntBool".
func title(s string) string {
	return strings.Join(strings.Fields(cases.Title(language.English).String(s)), "")
}

// Emit renders fwds as a Go file in package g.PackageOut.
func (g *Generator) Emit(srcPath, srcName string, fwds []Forwarder) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by simd4gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.PackageOut)
	fmt.Fprintf(&buf, "import %q\n", srcPath)
	for _, f := range fwds {
		params := make([]string, len(f.Params))
		args := make([]string, len(f.Params))
		for i, p := range f.Params {
			params[i] = p.Name + " " + p.Type
			args[i] = p.Name
		}
		fmt.Fprintf(&buf, "\n// %s forwards to %s.%s.\n", f.Name, srcName, f.Target)
		fmt.Fprintf(&buf, "func %s(%s) %s { return %s.%s(%s) }\n",
			f.Name, strings.Join(params, ", "), f.Result, srcName, f.Target, strings.Join(args, ", "))
	}

	out, err := imports.Process(g.PackageOut+"_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return out, nil
}
