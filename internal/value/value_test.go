package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/asn1proto/internal/asn1"
)

func TestPrint(t *testing.T) {
	cases := []struct {
		name  string
		v     *asn1.Value
		flags Flags
		want  string
	}{
		{"nil", nil, 0, ""},
		{"no-value", &asn1.Value{Kind: asn1.ValNoValue}, 0, ""},
		{"null", &asn1.Value{Kind: asn1.ValNull}, 0, "NULL"},
		{"integer", &asn1.Value{Kind: asn1.ValInteger, Integer: 42}, 0, "42"},
		{"negative-integer", &asn1.Value{Kind: asn1.ValInteger, Integer: -7}, 0, "-7"},
		{"min", &asn1.Value{Kind: asn1.ValMin}, 0, "0"},
		{"max-no-int32", &asn1.Value{Kind: asn1.ValMax}, 0, ""},
		{"max-int32", &asn1.Value{Kind: asn1.ValMax}, Int32Value, "2147483647"},
		{"false", &asn1.Value{Kind: asn1.ValFalse}, 0, "FALSE"},
		{"true", &asn1.Value{Kind: asn1.ValTrue}, 0, "TRUE"},
		{"string-plain", &asn1.Value{Kind: asn1.ValString, String: "hello"}, 0, `"hello"`},
		{"string-quote", &asn1.Value{Kind: asn1.ValString, String: `he said "hi"`}, 0, `"he said \"hi\""`},
		{"unparsed", &asn1.Value{Kind: asn1.ValUnparsed, String: "raw-text"}, 0, "raw-text"},
		{
			"choice-identifier",
			&asn1.Value{Kind: asn1.ValChoiceIdentifier, ChoiceIdentifier: "foo: ", ChoiceValue: &asn1.Value{Kind: asn1.ValInteger, Integer: 3}},
			0, "foo: 3",
		},
		{
			"referenced",
			&asn1.Value{Kind: asn1.ValReferenced, Reference: &asn1.Reference{Components: []asn1.RefComponent{{Name: "Foo"}, {Name: "bar"}}}},
			0, "Foo.bar",
		},
		{"value-set", &asn1.Value{Kind: asn1.ValValueSet}, 0, ""},
		{"tuple", &asn1.Value{Kind: asn1.ValTuple, Integer: 0x12}, 0, "{1, 2}"},
		{"quadruple", &asn1.Value{Kind: asn1.ValQuadruple, Integer: 0x01020304}, 0, "{1, 2, 3, 4}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Print(tc.v, tc.flags))
		})
	}
}

func TestPrintBitVectorByteAligned(t *testing.T) {
	got := Print(&asn1.Value{Kind: asn1.ValBitVector, BitVector: []byte{0xAB, 0xCD}, BitCount: 16}, 0)
	require.Equal(t, "'ABCD'H", got)
}

func TestPrintBitVectorUnaligned(t *testing.T) {
	got := Print(&asn1.Value{Kind: asn1.ValBitVector, BitVector: []byte{0b10100000}, BitCount: 3}, 0)
	require.Equal(t, "'101'B", got)
}
