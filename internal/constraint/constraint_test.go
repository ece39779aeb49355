package constraint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/asn1proto/internal/asn1"
)

func intVal(n int64) *asn1.Value { return &asn1.Value{Kind: asn1.ValInteger, Integer: n} }

func TestCompileNil(t *testing.T) {
	require.Equal(t, "", Compile(nil, 0))
}

func TestCompileRangeInt32(t *testing.T) {
	ct := &asn1.Constraint{Type: asn1.CElRange, RangeStart: intVal(0), RangeStop: intVal(150)}
	require.Equal(t, "gte: 0, lte: 150", Compile(ct, Int32Value))
}

func TestCompileRangeString(t *testing.T) {
	ct := &asn1.Constraint{Type: asn1.CElRange, RangeStart: intVal(1), RangeStop: intVal(64)}
	require.Equal(t, "min_len: 1, max_len: 64", Compile(ct, StringValue))
}

func TestCompileOpenEndedRange(t *testing.T) {
	// Without the Int32Value flag, MAX renders empty, so the upper bound is
	// omitted entirely rather than rendered as a sentinel.
	ct := &asn1.Constraint{Type: asn1.CElRange, RangeStart: intVal(5), RangeStop: &asn1.Value{Kind: asn1.ValMax}}
	require.Equal(t, "gte: 5", Compile(ct, 0))
}

func TestCompileLLRange(t *testing.T) {
	ct := &asn1.Constraint{Type: asn1.CElLLRange, RangeStart: intVal(0), RangeStop: intVal(10)}
	require.Equal(t, "gt: 0, lte: 10", Compile(ct, Int32Value))
}

func TestCompileRLRange(t *testing.T) {
	ct := &asn1.Constraint{Type: asn1.CElRLRange, RangeStart: intVal(0), RangeStop: intVal(10)}
	require.Equal(t, "gte: 0, lt: 10", Compile(ct, Int32Value))
}

func TestCompileULRange(t *testing.T) {
	ct := &asn1.Constraint{Type: asn1.CElULRange, RangeStart: intVal(0), RangeStop: intVal(10)}
	require.Equal(t, "gt: 0, lt: 10", Compile(ct, Int32Value))
}

func TestCompileElValueString(t *testing.T) {
	ct := &asn1.Constraint{Type: asn1.CElValue, Value: intVal(8)}
	require.Equal(t, "min_len: 8, max_len: 8", Compile(ct, StringValue))
}

func TestCompileSize(t *testing.T) {
	inner := &asn1.Constraint{Type: asn1.CElRange, RangeStart: intVal(1), RangeStop: intVal(8)}
	ct := &asn1.Constraint{Type: asn1.CSize, Elements: []*asn1.Constraint{inner}}
	require.Equal(t, "min_len: 1, max_len: 8", Compile(ct, StringValue))
}

func TestCompileUnion(t *testing.T) {
	a := &asn1.Constraint{Type: asn1.CElValue, Value: intVal(1)}
	b := &asn1.Constraint{Type: asn1.CElValue, Value: intVal(2)}
	ct := &asn1.Constraint{Type: asn1.CUnion, Elements: []*asn1.Constraint{a, b}}
	require.Equal(t, "1,2", Compile(ct, Int32Value))
}

func TestCompileExtensionMarker(t *testing.T) {
	require.Equal(t, "", Compile(&asn1.Constraint{Type: asn1.CElExt}, 0))
}
