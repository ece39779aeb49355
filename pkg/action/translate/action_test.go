package translate

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/asn1proto/internal/asn1"
	"github.com/cmmoran/asn1proto/internal/asn1json"
	"github.com/cmmoran/asn1proto/pkg/config"
)

func writeFixture(t *testing.T, dir string) string {
	t.Helper()
	doc := asn1json.Document{
		Module: &asn1.Module{Name: "Widgets", SourceFile: "widgets.asn1"},
		Exprs: []*asn1.Expr{
			{
				Identifier: "MaxSize",
				MetaType:   asn1.MetaType_,
				ExprType:   asn1.ExprInteger,
				Constraints: &asn1.Constraint{
					Type:       asn1.CElRange,
					RangeStart: &asn1.Value{Kind: asn1.ValInteger, Integer: 0},
					RangeStop:  &asn1.Value{Kind: asn1.ValInteger, Integer: 255},
				},
			},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(dir, "widgets.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestGenerateWritesProtoFile(t *testing.T) {
	dir := t.TempDir()
	inFile := writeFixture(t, dir)

	opts, err := config.Apply(
		config.WithInFile(inFile),
		config.WithOutDir(filepath.Join(dir, "out")),
		config.WithToolName("asn1proto"),
		config.WithToolVersion("test"),
	)
	require.NoError(t, err)

	outFile, err := Generate(opts)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "message MaxSize {")
	require.Contains(t, string(data), "int32 = {gte: 0, lte: 255}")
}

func writeAliasFixture(t *testing.T, dir string) string {
	t.Helper()
	doc := asn1json.Document{
		Module: &asn1.Module{Name: "Widgets", SourceFile: "widgets.asn1"},
		Exprs: []*asn1.Expr{
			{
				Identifier:      "MaxSize",
				MetaType:        asn1.MetaType_,
				ExprType:        asn1.ExprInteger,
				TypeUniqueIndex: 7,
			},
			{
				Identifier: "MaxSizeAlias",
				MetaType:   asn1.MetaTypeRef,
				Reference:  &asn1.Reference{Components: []asn1.RefComponent{{Name: "MaxSize"}}},
			},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(dir, "widgets.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestGenerateResolvesTypeAliasThroughReferenceChain(t *testing.T) {
	dir := t.TempDir()
	inFile := writeAliasFixture(t, dir)

	opts, err := config.Apply(
		config.WithInFile(inFile),
		config.WithOutDir(filepath.Join(dir, "out")),
	)
	require.NoError(t, err)

	outFile, err := Generate(opts)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "message MaxSizeAlias {")
	require.Contains(t, string(data), "MaxSize007 value = 1;")
}

func TestGenerateRendersToStdoutSink(t *testing.T) {
	dir := t.TempDir()
	inFile := writeFixture(t, dir)

	opts, err := config.Apply(
		config.WithInFile(inFile),
		config.WithOutDir(filepath.Join(dir, "out")),
		config.WithOutFile(StdoutFile),
	)
	require.NoError(t, err)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdout := os.Stdout
	os.Stdout = w

	outFile, genErr := Generate(opts)

	os.Stdout = origStdout
	require.NoError(t, w.Close())
	require.NoError(t, genErr)
	require.Equal(t, StdoutFile, outFile)

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Contains(t, string(data), "message MaxSize {")
}
