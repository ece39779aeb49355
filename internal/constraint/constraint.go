// Package constraint compiles an ASN.1 subtype constraint tree into a
// validate.v1 rule-expression string. The translation is a direct
// string-splicing port of proto_constraint_print in
// libasn1print/asn1printproto.c. A structured constraint-object rewrite
// would be cleaner but isn't done here: callers and tests assert on the
// textual output directly, so the spliced-string shape stays.
package constraint

import (
	"fmt"
	"strings"

	"github.com/cmmoran/asn1proto/internal/asn1"
	"github.com/cmmoran/asn1proto/internal/value"
)

// Flags selects the value domain used while rendering range/size bounds.
type Flags uint

const (
	StringValue Flags = 1 << iota
	Int32Value
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

func valueFlags(f Flags) value.Flags {
	var vf value.Flags
	if f.has(Int32Value) {
		vf |= value.Int32Value
	}
	return vf
}

// Compile renders ct into a rule-expression fragment suitable for embedding
// inside `[(validate.v1.rules).<scalar> = { ... }]`. A nil constraint
// compiles to the empty string.
func Compile(ct *asn1.Constraint, flags Flags) string {
	if ct == nil {
		return ""
	}

	var result strings.Builder
	perhapsSub := false

	switch ct.Type {
	case asn1.CElType:
		result.WriteString(value.Print(ct.ContainedSubtype, valueFlags(flags)))
		perhapsSub = true

	case asn1.CElValue:
		if flags.has(StringValue) {
			result.WriteString("min_len: ")
			result.WriteString(value.Print(ct.Value, valueFlags(flags)))
			result.WriteString(", max_len: ")
			result.WriteString(value.Print(ct.Value, valueFlags(flags)))
			break
		}
		result.WriteString(value.Print(ct.Value, valueFlags(flags)))
		perhapsSub = true

	case asn1.CElRange, asn1.CElLLRange, asn1.CElRLRange, asn1.CElULRange:
		compileRange(&result, ct, flags)

	case asn1.CElExt:
		// extension marker "..." renders empty

	case asn1.CSize, asn1.CFrom:
		if ct.Type == asn1.CFrom {
			result.WriteString("FROM")
		}
		if len(ct.Elements) > 0 {
			result.WriteString(Compile(ct.Elements[0], flags))
		}

	case asn1.CWithComponent:
		result.WriteString("WITH COMPONENT")
		perhapsSub = true

	case asn1.CWithComponents:
		result.WriteString("WITH COMPONENTS { ")
		for i, cel := range ct.Elements {
			if i > 0 {
				result.WriteString(", ")
			}
			result.WriteString(Compile(cel, flags))
		}
		result.WriteString(" }")

	case asn1.CConstrainedBy:
		result.WriteString("CONSTRAINED BY ")
		if ct.Value != nil {
			result.WriteString(ct.Value.String)
		}

	case asn1.CContaining:
		result.WriteString("CONTAINING ")
		result.WriteString(ct.TypeName)

	case asn1.CPattern:
		result.WriteString("PATTERN ")
		result.WriteString(value.Print(ct.Value, valueFlags(flags)))

	case asn1.CSet, asn1.CCrc, asn1.CUnion, asn1.CIntersection, asn1.CException:
		compileCombinator(&result, ct, flags)

	case asn1.CAllExcept:
		result.WriteString("ALL EXCEPT")
		perhapsSub = true

	default:
		panic(fmt.Sprintf("constraint: invalid constraint kind %d", ct.Type))
	}

	if perhapsSub && len(ct.Elements) > 0 {
		result.WriteString(" ")
		result.WriteString(Compile(ct.Elements[0], flags))
	}

	return result.String()
}

func compileRange(result *strings.Builder, ct *asn1.Constraint, flags Flags) {
	switch ct.Type {
	case asn1.CElRange, asn1.CElRLRange:
		if flags.has(StringValue) {
			result.WriteString("min_len: ")
		} else {
			result.WriteString("gte: ")
		}
	case asn1.CElLLRange, asn1.CElULRange:
		if flags.has(StringValue) {
			result.WriteString("min_len: ")
		} else {
			result.WriteString("gt: ")
		}
	}
	result.WriteString(value.Print(ct.RangeStart, valueFlags(flags)))

	stop := value.Print(ct.RangeStop, valueFlags(flags))
	if stop == "" {
		return
	}
	result.WriteString(", ")

	switch ct.Type {
	case asn1.CElRange, asn1.CElLLRange:
		if flags.has(StringValue) {
			result.WriteString("max_len: ")
		} else {
			result.WriteString("lte: ")
		}
	case asn1.CElRLRange, asn1.CElULRange:
		if flags.has(StringValue) {
			result.WriteString("max_len: ")
		} else {
			result.WriteString("lt: ")
		}
	}
	result.WriteString(stop)
}

func compileCombinator(result *strings.Builder, ct *asn1.Constraint, flags Flags) {
	var sep string
	switch ct.Type {
	case asn1.CException:
		sep = " EXCEPT "
	case asn1.CIntersection:
		sep = " ^ "
	case asn1.CUnion:
		sep = ","
	case asn1.CCrc:
		sep = ""
	case asn1.CSet:
		sep = "("
	}
	for i, el := range ct.Elements {
		if i > 0 {
			result.WriteString(sep)
		}
		if ct.Type == asn1.CCrc {
			result.WriteString("{")
		}
		result.WriteString(Compile(el, flags))
		if ct.Type == asn1.CCrc {
			result.WriteString("}")
		}
		if ct.Type == asn1.CSet && i+1 < len(ct.Elements) {
			result.WriteString("} ")
		}
	}
}
