// Package value pretty-prints ASN.1 literal values for embedding inside
// constraint rule strings. Ported from proto_value_print in
// libasn1print/asn1printproto.c. MAX renders as the int32 sentinel only
// when the caller flags an int32 context; elsewhere it renders empty so
// the caller can detect an open-ended range.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cmmoran/asn1proto/internal/asn1"
)

// Flags selects how MAX/MIN render.
type Flags uint

const (
	Int32Value Flags = 1 << iota
)

// Print renders v into its short text form. A nil value renders as "".
func Print(v *asn1.Value, flags Flags) string {
	if v == nil {
		return ""
	}

	switch v.Kind {
	case asn1.ValNoValue:
		return ""
	case asn1.ValNull:
		return "NULL"
	case asn1.ValReal:
		if v.Real == math.Trunc(v.Real) && !math.IsInf(v.Real, 0) {
			return fmt.Sprintf("%f", v.Real)
		}
		return fmt.Sprintf("%f", v.Real)
	case asn1.ValInteger:
		return strconv.FormatInt(v.Integer, 10)
	case asn1.ValMin:
		return "0"
	case asn1.ValMax:
		if flags&Int32Value != 0 {
			return strconv.FormatInt(math.MaxInt32, 10)
		}
		return ""
	case asn1.ValFalse:
		return "FALSE"
	case asn1.ValTrue:
		return "TRUE"
	case asn1.ValTuple:
		return fmt.Sprintf("{%d, %d}", v.Integer>>4, v.Integer&0x0f)
	case asn1.ValQuadruple:
		return fmt.Sprintf("{%d, %d, %d, %d}",
			(v.Integer>>24)&0xff, (v.Integer>>16)&0xff, (v.Integer>>8)&0xff, v.Integer&0xff)
	case asn1.ValString:
		return printString(v.String)
	case asn1.ValUnparsed:
		return v.String
	case asn1.ValBitVector:
		return printBitVector(v.BitVector, v.BitCount)
	case asn1.ValReferenced:
		return printReference(v.Reference)
	case asn1.ValValueSet:
		return ""
	case asn1.ValChoiceIdentifier:
		return v.ChoiceIdentifier + Print(v.ChoiceValue, flags)
	case asn1.ValType:
		return "ERROR not yet implemented"
	}
	return ""
}

// printString quotes s, escaping '"' as '\"' and passing every other
// character through unchanged.
func printString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range s {
		if c == '"' {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	b.WriteByte('"')
	return b.String()
}

func printBitVector(bits []byte, bitCount int) string {
	var b strings.Builder
	b.WriteByte('\'')
	if bitCount%8 != 0 {
		for i := 0; i < bitCount; i++ {
			byteVal := bits[i>>3]
			if (byteVal>>(7-(i%8)))&1 != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteString("'B")
	} else {
		const hex = "0123456789ABCDEF"
		for i := 0; i < bitCount>>3; i++ {
			b.WriteByte(hex[bits[i]>>4])
			b.WriteByte(hex[bits[i]&0x0f])
		}
		b.WriteString("'H")
	}
	return b.String()
}

func printReference(ref *asn1.Reference) string {
	if ref == nil {
		return ""
	}
	names := make([]string, len(ref.Components))
	for i, c := range ref.Components {
		names[i] = c.Name
	}
	return strings.Join(names, ".")
}
