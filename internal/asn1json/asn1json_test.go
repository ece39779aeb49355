package asn1json

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/asn1proto/internal/asn1"
)

func TestDecodeRoundTrip(t *testing.T) {
	doc := Document{
		Module: &asn1.Module{Name: "Test", SourceFile: "test.asn1"},
		Exprs: []*asn1.Expr{
			{
				Identifier: "Flag",
				MetaType:   asn1.MetaType_,
				ExprType:   asn1.ExprBoolean,
			},
		},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	got, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "Test", got.Module.Name)
	require.Len(t, got.Exprs, 1)
	require.Equal(t, "Flag", got.Exprs[0].Identifier)
	require.Same(t, got.Module, got.Exprs[0].Module)
}

func TestDecodeRejectsMissingModule(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"exprs":[]}`))
	require.Error(t, err)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"module":{"Name":"x"},"bogus":1}`))
	require.Error(t, err)
}
