// Package render walks a *ir.Module and emits proto3 text. Ported from
// proto_print_msg / proto_print_single_* / print_entries in
// libasn1print/asn1protooutput.c.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cmmoran/asn1proto/internal/ident"
	"github.com/cmmoran/asn1proto/internal/ir"
)

// Flags selects rendering options.
type Flags uint

const (
	// NoIndent2 suppresses leading indentation on field lines (APF_NOINDENT2).
	NoIndent2 Flags = 1 << iota
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Options controls a single Render call.
type Options struct {
	Flags Flags

	// ToolName/ToolVersion populate the "Protobuf generated from ... by
	// <tool>-<version>" banner comment.
	ToolName    string
	ToolVersion string

	// AndFree, when set, nils out each IR node's slice slot as it is
	// rendered, bounding peak memory for large schemas.
	AndFree bool

	// Logger receives duplicate-enum-index warnings and other best-effort
	// diagnostics. Defaults to slog.Default() when nil.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

const indentUnit = "    "

// Render writes mod as proto3 text to w.
func Render(w io.Writer, mod *ir.Module, opts Options) error {
	var b strings.Builder

	for _, line := range mod.Prelude {
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	moduleNameLc := strings.ToLower(mod.ModuleName)
	fmt.Fprintf(&b, "////////////////////// %s.proto //////////////////////\n", moduleNameLc)

	b.WriteString("// Protobuf generated")
	if idx := strings.LastIndexByte(mod.SourceFile, '/'); idx >= 0 {
		fmt.Fprintf(&b, " from %s ", mod.SourceFile[idx:])
	} else {
		fmt.Fprintf(&b, " from /%s ", mod.SourceFile)
	}
	fmt.Fprintf(&b, "by %s-%s\n// ", opts.ToolName, opts.ToolVersion)
	b.WriteString(mod.ModuleName)
	if mod.OID != nil {
		writeOID(&b, mod.OID)
	}
	b.WriteString("\n")

	b.WriteString("\nsyntax = \"proto3\";\n\n")

	srcNoRelPath := removeRelPath(ident.LowerSnakeCase(mod.SourceFile))
	pkg := packageName(srcNoRelPath)
	fmt.Fprintf(&b, "package %s.v1;\n\n", pkg)

	for _, imp := range mod.Imports {
		importName := strings.ToLower(imp.Path)
		fmt.Fprintf(&b, "import \"%s/v1/%s.proto\";", pkg, importName)
		if imp.OID != nil {
			b.WriteString(" //")
			writeOID(&b, &ir.OID{Arcs: imp.OID.Arcs})
		}
		b.WriteString("\n")
	}
	b.WriteString("import \"validate/v1/validate.proto\";\n\n")

	for i, e := range mod.Enums {
		printEnum(&b, e, opts)
		if opts.AndFree {
			mod.Enums[i] = nil
		}
	}

	for i, m := range mod.Messages {
		printMessage(&b, m, opts, 0)
		if opts.AndFree {
			mod.Messages[i] = nil
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func packageName(srcNoRelPath string) string {
	if startsWithLower(srcNoRelPath) {
		return srcNoRelPath
	}
	return "pkg" + srcNoRelPath
}

func startsWithLower(s string) bool {
	if s == "" {
		return false
	}
	return s[0] >= 'a' && s[0] <= 'z'
}

// removeRelPath strips leading directory parts.
func removeRelPath(s string) string {
	if idx := strings.LastIndexByte(s, '/'); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

func writeOID(b *strings.Builder, oid *ir.OID) {
	b.WriteString(" {")
	for _, arc := range oid.Arcs {
		b.WriteString(" ")
		if arc.Name != "" {
			b.WriteString(arc.Name)
			if arc.HasNum {
				fmt.Fprintf(b, "(%d)", arc.Number)
			}
		} else {
			b.WriteString(strconv.Itoa(arc.Number))
		}
	}
	b.WriteString(" }")
}

func printComments(b *strings.Builder, comments string, indent string) {
	if comments == "" {
		return
	}
	for _, line := range strings.Split(comments, "\n") {
		b.WriteString(indent)
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func printMessage(b *strings.Builder, msg *ir.ProtoMessage, opts Options, level int) {
	indent := strings.Repeat(indentUnit, level)
	printComments(b, msg.Comments, indent)

	b.WriteString(indent)
	fmt.Fprintf(b, "message %s {\n", ident.PascalCase(msg.Name))

	ordinal := 1
	printFieldEntries(b, msg.Fields, opts, level+1, &ordinal)
	for _, o := range msg.Oneofs {
		printOneof(b, o, opts, level+1, &ordinal)
	}

	b.WriteString(indent)
	b.WriteString("};\n\n")
}

func printOneof(b *strings.Builder, o *ir.ProtoOneof, opts Options, level int, ordinal *int) {
	indent := strings.Repeat(indentUnit, level)
	printComments(b, o.Comments, indent)

	b.WriteString(indent)
	fmt.Fprintf(b, "oneof %s {\n", ident.LowerSnakeCase(o.Name))
	printFieldEntries(b, o.Fields, opts, level+1, ordinal)
	b.WriteString(indent)
	b.WriteString("}\n")
}

func printFieldEntries(b *strings.Builder, fields []*ir.ProtoField, opts Options, level int, ordinal *int) {
	for _, f := range fields {
		if !opts.Flags.has(NoIndent2) {
			b.WriteString(strings.Repeat(indentUnit, level))
		}
		if f.Repeated {
			b.WriteString("repeated ")
		}
		typ := f.Type
		if !ir.ProtoScalars[typ] {
			typ = ident.PascalCase(typ)
		}
		fmt.Fprintf(b, "%s %s = %d", typ, ident.LowerSnakeCase(f.Name), *ordinal)
		*ordinal++
		if f.Rules != "" {
			fmt.Fprintf(b, " [(validate.v1.rules).%s]", f.Rules)
		}
		if f.Comments != "" {
			fmt.Fprintf(b, "; // %s\n", f.Comments)
		} else {
			b.WriteString(";\n")
		}
	}
}

func printEnum(b *strings.Builder, e *ir.ProtoEnum, opts Options) {
	printComments(b, strings.Join(e.Comments, "\n"), "")

	enumName := ident.PascalCase(e.Name)
	fmt.Fprintf(b, "enum %s {\n", enumName)

	hasZero := false
	for _, d := range e.Defs {
		if d.Index == 0 {
			hasZero = true
			break
		}
	}

	enumNameUc := ident.ScreamingSnakeCase(e.Name)
	seen := map[int]string{}
	if !hasZero {
		fmt.Fprintf(b, "%s%s_UNDEFINED = 0; // auto generated\n", indentUnit, enumNameUc)
		seen[0] = "UNDEFINED"
	}

	counter := 0
	for _, d := range e.Defs {
		defName := ident.ScreamingSnakeCase(d.Name)
		idx := d.Index
		if idx < 0 {
			idx = counter
			counter++
		}
		if prior, ok := seen[idx]; ok {
			opts.logger().Warn("duplicate enum index",
				"enum", e.Name, "index", idx, "first", prior, "second", d.Name)
		} else {
			seen[idx] = d.Name
		}
		fmt.Fprintf(b, "%s%s_%s = %d;\n", indentUnit, enumNameUc, defName, idx)
	}
	b.WriteString("};\n\n")
}
