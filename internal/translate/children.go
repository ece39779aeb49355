package translate

import (
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/cmmoran/asn1proto/internal/asn1"
	"github.com/cmmoran/asn1proto/internal/constraint"
	"github.com/cmmoran/asn1proto/internal/ident"
	"github.com/cmmoran/asn1proto/internal/ir"
)

// fieldSink is implemented by both *ir.ProtoMessage and *ir.ProtoOneof so
// processChildren can append to either, matching how proto_process_children
// in the original source takes a single proto_msg_t* that a oneof is cast
// into.
type fieldSink interface {
	AddField(*ir.ProtoField)
}

// processChildren derives a field for each child member in declaration
// order and appends it to dst. repeated applies to every derived field,
// covering the SEQUENCE OF element case.
func processChildren(expr *asn1.Expr, msg *ir.ProtoMessage, oneof *ir.ProtoOneof, repeated bool) {
	var dst fieldSink
	if oneof != nil {
		dst = oneof
	} else {
		dst = msg
	}

	for _, se := range expr.Members {
		if se.ExprType == asn1.ExprUniverVal {
			continue
		}
		if se.ExprType == asn1.ExprExtensible {
			continue
		}

		elem := &ir.ProtoField{Name: se.Identifier, Type: "int32", Repeated: repeated}

		switch {
		case se.ExprType == asn1.ExprBitString:
			elem.Type = "BitString"

		case se.ExprType == asn1.ExprObjectIdentifier:
			elem.Type = "BasicOid"

		case se.ExprType == asn1.ExprBoolean:
			elem.Type = "bool"

		case se.ExprType == asn1.ExprUTF8String || se.ExprType == asn1.ExprTeletexString:
			elem.Type = "string"
			if se.Constraints != nil {
				compiled := constraint.Compile(se.Constraints, constraint.StringValue)
				elem.Rules = fmt.Sprintf("string = {%s}", compiled)
			}

		case se.MetaType == asn1.MetaType_ && se.ExprType == asn1.ExprSequenceOf:
			elem.Repeated = true
			if first := firstMember(se); first != nil &&
				first.ExprType == asn1.ExprReference && first.MetaType == asn1.MetaTypeRef &&
				first.Reference != nil && len(first.Reference.Components) == 1 {
				elem.Type = first.Reference.Components[0].Name
			}

		case se.ExprType == asn1.ExprReference && se.MetaType == asn1.MetaTypeRef:
			if se.Reference != nil {
				switch len(se.Reference.Components) {
				case 2:
					elem.Type = se.Reference.Components[1].Name
				case 1:
					elem.Type = se.Reference.Components[0].Name
				}
			}
		}

		if elem.Name == "" {
			elem.Name = ident.LowerSnakeCase(inflection.Plural(strings.ToLower(elem.Type)))
		}

		dst.AddField(elem)
	}
}

func firstMember(e *asn1.Expr) *asn1.Expr {
	if len(e.Members) == 0 {
		return nil
	}
	return e.Members[0]
}

// translateIOCTable expands an information-object table attached to an
// unparsed AMT_VALUE into one message with one field per cell bearing a
// positive new_ref.
func (t *Translator) translateIOCTable(asnMod *asn1.Module, mod *ir.Module, expr *asn1.Expr) {
	comment := "concrete instance of class "
	if expr.Reference != nil && len(expr.Reference.Components) > 0 {
		comment += expr.Reference.Components[0].Name
	}
	comment += fmt.Sprintf(" from %s:%d", asnMod.SourceFile, expr.Line)

	msg := &ir.ProtoMessage{
		Name: expr.Identifier, SpecIndex: expr.SpecIndex, TypeUniqueIndex: expr.TypeUniqueIndex,
		Comments:   comment,
		SourceFile: asnMod.SourceFile, Line: expr.Line,
	}

	for _, row := range expr.IOCTable.Rows {
		for _, cell := range row.Cells {
			if cell.NewRef <= 0 {
				continue
			}

			var fieldType, rules string
			switch {
			case cell.Value != nil && cell.Value.Kind == asn1.ValInteger:
				fieldType = "int32"
				rules = fmt.Sprintf("int32.const = %d", cell.Value.Integer)
			case cell.ValueIdentifier == "INTEGER":
				fieldType = "int32"
			case cell.ValueIdentifier == "REAL":
				fieldType = "float"
			default:
				fieldType = cell.ValueIdentifier
			}

			name := fmt.Sprintf("%s-%s", cell.FieldIdentifier, cell.ValueIdentifier)
			msg.AddField(&ir.ProtoField{Name: name, Type: fieldType, Rules: rules})
		}
	}

	mod.AddMessage(msg)
}
