package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/asn1proto/internal/ir"
)

func TestRenderBasicMessage(t *testing.T) {
	mod := &ir.Module{
		ModuleName: "Widgets",
		SourceFile: "mymodule.asn1",
		Messages: []*ir.ProtoMessage{
			{
				Name: "Widget",
				Fields: []*ir.ProtoField{
					{Name: "id", Type: "int32"},
				},
			},
		},
	}

	var b strings.Builder
	err := Render(&b, mod, Options{ToolName: "asn1proto", ToolVersion: "1.0"})
	require.NoError(t, err)

	out := b.String()
	require.Contains(t, out, "widgets.proto")
	require.Contains(t, out, "// Protobuf generated from /mymodule.asn1 by asn1proto-1.0")
	require.Contains(t, out, `syntax = "proto3";`)
	require.Contains(t, out, "package mymodule_asn1.v1;")
	require.Contains(t, out, `import "validate/v1/validate.proto";`)
	require.Contains(t, out, "message Widget {")
	require.Contains(t, out, "    int32 id = 1;")
	require.Contains(t, out, "};")

	// validate import always comes after the package line and before any
	// message body.
	require.Less(t,
		strings.Index(out, "package mymodule_asn1.v1;"),
		strings.Index(out, `import "validate/v1/validate.proto";`))
	require.Less(t,
		strings.Index(out, `import "validate/v1/validate.proto";`),
		strings.Index(out, "message Widget {"))
}

func TestRenderFieldOrdinalsContinueAcrossOneof(t *testing.T) {
	mod := &ir.Module{
		ModuleName: "M",
		SourceFile: "m.asn1",
		Messages: []*ir.ProtoMessage{
			{
				Name:   "Envelope",
				Fields: []*ir.ProtoField{{Name: "header", Type: "int32"}},
				Oneofs: []*ir.ProtoOneof{
					{
						Name: "body",
						Fields: []*ir.ProtoField{
							{Name: "a", Type: "int32"},
							{Name: "b", Type: "string"},
						},
					},
				},
			},
		},
	}

	var b strings.Builder
	require.NoError(t, Render(&b, mod, Options{ToolName: "t", ToolVersion: "0"}))
	out := b.String()

	require.Contains(t, out, "int32 header = 1;")
	require.Contains(t, out, "int32 a = 2;")
	require.Contains(t, out, "string b = 3;")
}

func TestRenderFieldTypeCasing(t *testing.T) {
	mod := &ir.Module{
		ModuleName: "M",
		SourceFile: "m.asn1",
		Messages: []*ir.ProtoMessage{
			{
				Name: "Holder",
				Fields: []*ir.ProtoField{
					{Name: "thing", Type: "my-widget-type"},
					{Name: "things", Type: "int32", Repeated: true},
				},
			},
		},
	}

	var b strings.Builder
	require.NoError(t, Render(&b, mod, Options{ToolName: "t", ToolVersion: "0"}))
	out := b.String()

	require.Contains(t, out, "MyWidgetType thing = 1;")
	require.Contains(t, out, "repeated int32 things = 2;")
}

func TestRenderEnumGetsAutoZeroMember(t *testing.T) {
	mod := &ir.Module{
		ModuleName: "M",
		SourceFile: "m.asn1",
		Enums: []*ir.ProtoEnum{
			{
				Name: "Color",
				Defs: []*ir.ProtoEnumDef{
					{Name: "red", Index: 1},
					{Name: "blue", Index: 2},
				},
			},
		},
	}

	var b strings.Builder
	require.NoError(t, Render(&b, mod, Options{ToolName: "t", ToolVersion: "0"}))
	out := b.String()

	require.Contains(t, out, "enum Color {")
	require.Contains(t, out, "COLOR_UNDEFINED = 0; // auto generated")
	require.Contains(t, out, "COLOR_RED = 1;")
	require.Contains(t, out, "COLOR_BLUE = 2;")
}

func TestRenderEnumWithExplicitZeroSkipsAutoMember(t *testing.T) {
	mod := &ir.Module{
		ModuleName: "M",
		SourceFile: "m.asn1",
		Enums: []*ir.ProtoEnum{
			{
				Name: "Color",
				Defs: []*ir.ProtoEnumDef{
					{Name: "unknown", Index: 0},
					{Name: "red", Index: 1},
				},
			},
		},
	}

	var b strings.Builder
	require.NoError(t, Render(&b, mod, Options{ToolName: "t", ToolVersion: "0"}))
	out := b.String()

	require.NotContains(t, out, "auto generated")
	require.Contains(t, out, "COLOR_UNKNOWN = 0;")
}
