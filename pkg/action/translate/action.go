// Package translate orchestrates a single end-to-end translate invocation:
// read the JSON expression tree, run it through internal/translate and
// internal/render, and write the resulting .proto file.
package translate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cmmoran/asn1proto/internal/asn1"
	"github.com/cmmoran/asn1proto/internal/asn1json"
	"github.com/cmmoran/asn1proto/internal/ir"
	"github.com/cmmoran/asn1proto/internal/render"
	"github.com/cmmoran/asn1proto/internal/sink"
	translatepkg "github.com/cmmoran/asn1proto/internal/translate"
	"github.com/cmmoran/asn1proto/pkg/config"
)

// StdoutFile is the OutFile sentinel that selects the standard-output sink
// instead of writing a file to OutDir.
const StdoutFile = "-"

// Generate reads opts.InFile and translates it. When opts.OutFile is
// StdoutFile it renders directly to the standard-output sink and returns
// StdoutFile; otherwise it renders into an in-memory buffer sink and
// persists that buffer to opts.OutDir/opts.OutFile, returning the path
// written.
func Generate(opts *config.Options) (string, error) {
	mod, err := Translate(opts)
	if err != nil {
		return "", err
	}

	renderOpts := render.Options{
		ToolName:    opts.ToolName,
		ToolVersion: opts.ToolVersion,
		AndFree:     opts.AndFree,
	}
	if opts.NoIndent2 {
		renderOpts.Flags |= render.NoIndent2
	}

	if opts.OutFile == StdoutFile {
		if err := render.Render(sink.Stdout(), mod, renderOpts); err != nil {
			return "", fmt.Errorf("translate: render: %w", err)
		}
		return StdoutFile, nil
	}

	buf := sink.NewBuffer()
	if err := render.Render(buf, mod, renderOpts); err != nil {
		return "", fmt.Errorf("translate: render: %w", err)
	}

	outFile := filepath.Clean(filepath.Join(opts.OutDir, opts.OutFile))
	if err := os.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
		return "", fmt.Errorf("translate: create output directory: %w", err)
	}
	if err := os.WriteFile(outFile, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("translate: write output file: %w", err)
	}

	return outFile, nil
}

// Translate reads and translates opts.InFile into a *ir.Module, without
// rendering or writing it. Exposed separately so callers can inspect the IR
// before deciding whether to write it out.
func Translate(opts *config.Options) (*ir.Module, error) {
	f, err := os.Open(opts.InFile)
	if err != nil {
		return nil, fmt.Errorf("translate: open input: %w", err)
	}
	defer f.Close()

	doc, err := asn1json.Decode(f)
	if err != nil {
		return nil, err
	}

	mod := &ir.Module{
		ModuleName: doc.Module.Name,
		SourceFile: doc.Module.SourceFile,
	}
	if doc.Module.OID != nil {
		mod.OID = &ir.OID{}
		for _, arc := range doc.Module.OID.Arcs {
			mod.OID.Arcs = append(mod.OID.Arcs, ir.OIDArc{
				Name: arc.Name, Number: arc.Number, HasNum: arc.HasNum,
			})
		}
	}

	tr := &translatepkg.Translator{Resolver: buildResolver(doc.Exprs)}
	for _, expr := range doc.Exprs {
		if err := tr.TranslateExpr(doc.Module, mod, expr); err != nil {
			return nil, fmt.Errorf("translate: %w", err)
		}
	}

	return mod, nil
}

// buildResolver indexes a document's top-level expressions by identifier
// and returns a TerminalTypeResolver that follows a TYPEREF's REFERENCE
// chain — through any number of intermediate type aliases — to the first
// expression that is not itself a TYPEREF. It returns nil on an unknown
// identifier or a reference cycle, which the caller surfaces as an error.
func buildResolver(exprs []*asn1.Expr) asn1.TerminalTypeResolver {
	byName := make(map[string]*asn1.Expr, len(exprs))
	for _, e := range exprs {
		if e.Identifier != "" {
			byName[e.Identifier] = e
		}
	}

	return func(mod *asn1.Module, e *asn1.Expr) *asn1.Expr {
		cur := e
		visited := make(map[string]bool)
		for cur != nil && cur.Reference != nil && len(cur.Reference.Components) > 0 {
			name := cur.Reference.Components[len(cur.Reference.Components)-1].Name
			if visited[name] {
				return nil
			}
			visited[name] = true

			next, ok := byName[name]
			if !ok {
				return nil
			}
			if next.MetaType != asn1.MetaTypeRef {
				return next
			}
			cur = next
		}
		return nil
	}
}
