// Package translate is the central dispatcher: given a fully resolved
// ASN.1 expression, it decides which Protobuf IR node(s) to emit and
// recurses on children/specializations. Ported from asn1print_expr_proto
// in libasn1print/asn1printproto.c.
package translate

import (
	"fmt"
	"log/slog"

	"github.com/cmmoran/asn1proto/internal/asn1"
	"github.com/cmmoran/asn1proto/internal/constraint"
	"github.com/cmmoran/asn1proto/internal/ir"
	"github.com/cmmoran/asn1proto/internal/value"
)

// Translator walks an ASN.1 expression tree and appends the Protobuf IR it
// produces to a *ir.Module.
type Translator struct {
	// Resolver follows REFERENCE chains to their terminal type. Required
	// for TYPEREF expressions; a nil Resolver makes TYPEREF translation a
	// hard failure, since a conforming upstream parser always supplies one.
	Resolver asn1.TerminalTypeResolver

	// Logger receives best-effort / unsupported-construct diagnostics.
	// A nil Logger falls back to slog.Default().
	Logger *slog.Logger
}

func (t *Translator) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}

// TranslateExpr dispatches on expr's shape and appends any IR it produces
// to mod. It returns an error only for input-shape violations that should
// abort translation of the whole module; unsupported-but-legal constructs
// are logged and translation continues.
func (t *Translator) TranslateExpr(asnMod *asn1.Module, mod *ir.Module, expr *asn1.Expr) error {
	if expr == nil {
		return fmt.Errorf("translate: nil expression")
	}

	// 1. Specializations present: recurse on each clone; the parametric
	// template itself is never emitted.
	if len(expr.Specializations) > 0 {
		for _, spec := range expr.Specializations {
			if err := t.TranslateExpr(asnMod, mod, spec); err != nil {
				return err
			}
		}
		return nil
	}

	// 2. No identifier: emit nothing.
	if expr.Identifier == "" {
		return nil
	}

	switch {
	// 3. ENUMERATED
	case expr.ExprType == asn1.ExprEnumerated:
		t.translateEnumerated(asnMod, mod, expr)
		return nil

	// 4. VALUE meta-type
	case expr.MetaType == asn1.MetaValue:
		return t.translateValue(asnMod, mod, expr)

	// 5. INTEGER VALUE SET
	case expr.ExprType == asn1.ExprInteger && expr.MetaType == asn1.MetaValueSet:
		t.translateIntegerValueSet(asnMod, mod, expr)
		return nil

	// 6. TYPE meta-type, non-constructed
	case expr.MetaType == asn1.MetaType_ &&
		expr.ExprType != asn1.ExprSequence &&
		expr.ExprType != asn1.ExprSequenceOf &&
		expr.ExprType != asn1.ExprChoice:
		t.translateScalarType(asnMod, mod, expr)
		return nil

	// 7. SEQUENCE or SEQUENCE OF
	case expr.MetaType == asn1.MetaType_ &&
		(expr.ExprType == asn1.ExprSequence || expr.ExprType == asn1.ExprSequenceOf):
		t.translateSequence(asnMod, mod, expr)
		return nil

	// 8. CHOICE
	case expr.MetaType == asn1.MetaType_ && expr.ExprType == asn1.ExprChoice:
		t.translateChoice(asnMod, mod, expr)
		return nil

	// 9. CLASSDEF: no Protobuf analog.
	case expr.ExprType == asn1.ExprClassDef:
		return nil

	// 10. TYPEREF
	case expr.MetaType == asn1.MetaTypeRef:
		return t.translateTypeRef(asnMod, mod, expr)

	// 11. VALUESET (non-integer, reached only when rule 5 didn't match)
	case expr.MetaType == asn1.MetaValueSet:
		return nil

	// 12. Anything else.
	default:
		t.logger().Error("unhandled expression",
			"identifier", expr.Identifier, "meta_type", expr.MetaType, "expr_type", expr.ExprType)
		return nil
	}
}

func (t *Translator) translateEnumerated(asnMod *asn1.Module, mod *ir.Module, expr *asn1.Expr) {
	e := &ir.ProtoEnum{
		Name:     expr.Identifier,
		Comments: []string{fmt.Sprintf("enumerated from %s:%d", asnMod.SourceFile, expr.Line)},
	}
	for _, se := range expr.Members {
		if se.ExprType != asn1.ExprUniverVal {
			continue
		}
		def := &ir.ProtoEnumDef{Name: se.Identifier, Index: -1}
		if se.Value != nil && se.Value.Kind == asn1.ValInteger && se.Value.Integer >= 0 {
			def.Index = int(se.Value.Integer)
		}
		e.AddDef(def)
	}
	mod.AddEnum(e)
}

func (t *Translator) translateValue(asnMod *asn1.Module, mod *ir.Module, expr *asn1.Expr) error {
	switch expr.ExprType {
	case asn1.ExprInteger:
		msg := &ir.ProtoMessage{
			Name: expr.Identifier, SpecIndex: expr.SpecIndex, TypeUniqueIndex: expr.TypeUniqueIndex,
			Comments:   fmt.Sprintf("constant Integer from %s:%d", asnMod.SourceFile, expr.Line),
			SourceFile: asnMod.SourceFile, Line: expr.Line,
		}
		msg.AddField(&ir.ProtoField{
			Name: "value", Type: "int32",
			Rules: fmt.Sprintf("int32.const = %d", expr.Value.Integer),
		})
		mod.AddMessage(msg)
		return nil

	case asn1.ExprReference:
		msg := &ir.ProtoMessage{
			Name: expr.Identifier, SpecIndex: expr.SpecIndex, TypeUniqueIndex: expr.TypeUniqueIndex,
			Comments:   fmt.Sprintf("reference from %s:%d", asnMod.SourceFile, expr.Line),
			SourceFile: asnMod.SourceFile, Line: expr.Line,
		}
		field := &ir.ProtoField{Name: "value", Type: "int32", Comments: joinRefComponents(expr.Reference)}

		if expr.Value == nil {
			t.logger().Error("AMT_VALUE reference with no value")
			return nil
		}
		switch expr.Value.Kind {
		case asn1.ValInteger:
			field.Rules = fmt.Sprintf("int32.const = %d", expr.Value.Integer)
			msg.AddField(field)
			mod.AddMessage(msg)
		case asn1.ValString:
			field.Type = "string"
			field.Rules = fmt.Sprintf("string.const = %s", value.Print(expr.Value, 0))
			msg.AddField(field)
			mod.AddMessage(msg)
		case asn1.ValUnparsed:
			if expr.IOCTable != nil {
				t.translateIOCTable(asnMod, mod, expr)
			}
		default:
			t.logger().Error("unhandled AMT_VALUE value kind", "kind", expr.Value.Kind)
		}
		return nil

	default:
		t.logger().Error("unhandled AMT_VALUE expr_type",
			"identifier", expr.Identifier, "expr_type", expr.ExprType)
		return nil
	}
}

func (t *Translator) translateIntegerValueSet(asnMod *asn1.Module, mod *ir.Module, expr *asn1.Expr) {
	msg := &ir.ProtoMessage{
		Name: expr.Identifier, SpecIndex: expr.SpecIndex, TypeUniqueIndex: expr.TypeUniqueIndex,
		Comments:   fmt.Sprintf("range of Integer from %s:%d", asnMod.SourceFile, expr.Line),
		SourceFile: asnMod.SourceFile, Line: expr.Line,
	}
	compiled := constraint.Compile(expr.Constraints, 0)
	msg.AddField(&ir.ProtoField{Name: "value", Type: "int32", Rules: fmt.Sprintf("int32 = {in: [%s]}", compiled)})
	mod.AddMessage(msg)
}

func (t *Translator) translateScalarType(asnMod *asn1.Module, mod *ir.Module, expr *asn1.Expr) {
	msg := &ir.ProtoMessage{
		Name: expr.Identifier, SpecIndex: expr.SpecIndex, TypeUniqueIndex: expr.TypeUniqueIndex,
		Comments:   fmt.Sprintf("range of Integer from %s:%d", asnMod.SourceFile, expr.Line),
		SourceFile: asnMod.SourceFile, Line: expr.Line,
	}
	applyParams(msg, expr)

	field := &ir.ProtoField{Name: "value", Type: "int32"}
	switch expr.ExprType {
	case asn1.ExprInteger:
		if expr.Constraints != nil {
			compiled := constraint.Compile(expr.Constraints, constraint.Int32Value)
			field.Rules = fmt.Sprintf("int32 = {%s}", compiled)
		}
	case asn1.ExprIA5String, asn1.ExprBMPString:
		field.Type = "string"
		if expr.Constraints != nil {
			compiled := constraint.Compile(expr.Constraints, constraint.StringValue)
			field.Rules = fmt.Sprintf("string = {%s}", compiled)
		}
	case asn1.ExprBoolean:
		field.Type = "bool"
	default:
		return
	}
	msg.AddField(field)
	mod.AddMessage(msg)
}

func (t *Translator) translateSequence(asnMod *asn1.Module, mod *ir.Module, expr *asn1.Expr) {
	msg := &ir.ProtoMessage{
		Name: expr.Identifier, SpecIndex: expr.SpecIndex, TypeUniqueIndex: expr.TypeUniqueIndex,
		Comments:   fmt.Sprintf("sequence from %s:%d", asnMod.SourceFile, expr.Line),
		SourceFile: asnMod.SourceFile, Line: expr.Line,
	}
	applyParams(msg, expr)
	processChildren(expr, msg, nil, expr.ExprType == asn1.ExprSequenceOf)
	mod.AddMessage(msg)
}

func (t *Translator) translateChoice(asnMod *asn1.Module, mod *ir.Module, expr *asn1.Expr) {
	msg := &ir.ProtoMessage{
		Name: expr.Identifier, SpecIndex: expr.SpecIndex, TypeUniqueIndex: expr.TypeUniqueIndex,
		Comments:   fmt.Sprintf("sequence from %s:%d", asnMod.SourceFile, expr.Line),
		SourceFile: asnMod.SourceFile, Line: expr.Line,
	}
	applyParams(msg, expr)

	oneof := &ir.ProtoOneof{
		Name:     expr.Identifier,
		Comments: fmt.Sprintf("choice from %s:%d", asnMod.SourceFile, expr.Line),
	}
	msg.AddOneof(oneof)
	processChildren(expr, nil, oneof, false)
	mod.AddMessage(msg)
}

func (t *Translator) translateTypeRef(asnMod *asn1.Module, mod *ir.Module, expr *asn1.Expr) error {
	msg := &ir.ProtoMessage{
		Name: expr.Identifier, SpecIndex: expr.SpecIndex, TypeUniqueIndex: expr.TypeUniqueIndex,
		Comments:   fmt.Sprintf("reference from %s:%d", asnMod.SourceFile, expr.Line),
		SourceFile: asnMod.SourceFile, Line: expr.Line,
	}
	applyParams(msg, expr)

	field := &ir.ProtoField{Name: "value", Type: "int32"}
	if expr.Reference != nil && len(expr.Reference.Components) >= 1 {
		if t.Resolver == nil {
			return fmt.Errorf("translate: TYPEREF %q requires a TerminalTypeResolver", expr.Identifier)
		}
		terminal := t.Resolver(asnMod, expr)
		if terminal == nil {
			return fmt.Errorf("translate: TYPEREF %q: terminal type not resolved", expr.Identifier)
		}
		field.Type = fmt.Sprintf("%s%03d", terminal.Identifier, terminal.TypeUniqueIndex)
	}
	msg.AddField(field)
	mod.AddMessage(msg)
	return nil
}

func joinRefComponents(ref *asn1.Reference) string {
	if ref == nil {
		return ""
	}
	s := ""
	for i, c := range ref.Components {
		if i > 0 {
			s += "."
		}
		s += c.Name
	}
	return s
}
