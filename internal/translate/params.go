package translate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cmmoran/asn1proto/internal/asn1"
	"github.com/cmmoran/asn1proto/internal/ir"
)

// applyParams handles an expression's formal parameters: each becomes a
// "Param <governor>:<arg>" comment line plus a ProtoParam attached to msg,
// with kind inferred by paramKind.
func applyParams(msg *ir.ProtoMessage, expr *asn1.Expr) {
	if len(expr.Params) == 0 {
		return
	}
	var lines []string
	for _, p := range expr.Params {
		lines = append(lines, fmt.Sprintf("Param %s:%s", p.Governor, p.Argument))
		msg.AddParam(&ir.ProtoParam{Name: p.Argument, Kind: paramKind(p)})
	}
	comment := strings.Join(lines, "\n")
	if msg.Comments == "" {
		msg.Comments = comment
	} else {
		msg.Comments += "\n" + comment
	}
}

// paramKind infers a parameter's kind: empty governor -> TYPE; else
// argument begins with lowercase -> VALUE; else -> VALUE_SET.
func paramKind(p *asn1.Param) ir.ParamKind {
	if p.Governor == "" {
		return ir.ParamType
	}
	if p.Argument != "" && unicode.IsLower(rune(p.Argument[0])) {
		return ir.ParamValue
	}
	return ir.ParamValueSet
}
