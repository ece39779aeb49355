// Package ir is the Protobuf intermediate representation built by
// internal/translate and consumed by internal/render. Containers own their
// children by value/slice; there are no back-references and no cycles.
package ir

// ProtoScalars is the set of proto3 scalar keywords that pass through a
// ProtoField's Type verbatim instead of being PascalCased at render time.
var ProtoScalars = map[string]bool{
	"bool": true, "int32": true, "int64": true, "uint32": true, "uint64": true,
	"float": true, "double": true, "string": true, "bytes": true,
}

// ProtoImport is one `import` line of the rendered module.
type ProtoImport struct {
	Path string // lowercase snake_case import path, sans "<pkg>/v1/" prefix and ".proto" suffix
	OID  *OID   // optional traceability comment
}

// OID is the render-ready form of an ASN.1 module identifier.
type OID struct {
	Arcs []OIDArc
}

type OIDArc struct {
	Name   string
	Number int
	HasNum bool
}

// ProtoEnumDef is one member of a ProtoEnum.
type ProtoEnumDef struct {
	Name  string
	Index int // >= 0 explicit; -1 means auto-assigned at render time
}

// ProtoEnum is a top-level `enum` block.
type ProtoEnum struct {
	Name     string
	Comments []string
	Defs     []*ProtoEnumDef
}

// AddDef appends a def, preserving insertion order.
func (e *ProtoEnum) AddDef(d *ProtoEnumDef) { e.Defs = append(e.Defs, d) }

// ProtoField is one field line inside a message or oneof.
type ProtoField struct {
	Name     string // source identifier, cased at render time
	Type     string // scalar keyword verbatim, else PascalCased at render time
	Repeated bool
	Rules    string // rule-expression body, e.g. "int32 = {gte: 0, lte: 150}"
	Comments string
}

// ProtoOneof is a `oneof` block inside a ProtoMessage.
type ProtoOneof struct {
	Name     string
	Comments string
	Fields   []*ProtoField
}

// AddField appends a field, preserving insertion order; ordinals continue
// the parent message's numbering at render time.
func (o *ProtoOneof) AddField(f *ProtoField) { o.Fields = append(o.Fields, f) }

// ParamKind mirrors asn1.ParamKind; reserved for future generics, surfaced
// only as comments today.
type ParamKind int

const (
	ParamType ParamKind = iota
	ParamValue
	ParamValueSet
)

// ProtoParam is a formal parameter carried on a ProtoMessage for comment
// rendering.
type ProtoParam struct {
	Name string
	Kind ParamKind
}

// ProtoMessage is a top-level `message` block.
type ProtoMessage struct {
	Name            string
	SpecIndex       int
	TypeUniqueIndex int
	Comments        string
	Fields          []*ProtoField
	Oneofs          []*ProtoOneof
	Params          []*ProtoParam

	SourceFile string
	Line       int
}

// AddField appends a field, preserving insertion order.
func (m *ProtoMessage) AddField(f *ProtoField) { m.Fields = append(m.Fields, f) }

// AddOneof appends a oneof, preserving insertion order.
func (m *ProtoMessage) AddOneof(o *ProtoOneof) { m.Oneofs = append(m.Oneofs, o) }

// AddParam appends a formal parameter.
func (m *ProtoMessage) AddParam(p *ProtoParam) { m.Params = append(m.Params, p) }

// Module is the root IR node: one .proto file.
type Module struct {
	ModuleName string
	SourceFile string
	OID        *OID
	Prelude    []string // module-level comment lines, rendered before the banner

	Imports  []*ProtoImport
	Enums    []*ProtoEnum
	Messages []*ProtoMessage
}

// AddImport appends an import, preserving insertion order. Duplicate paths
// are not de-duplicated here — the translator decides whether that matters.
func (m *Module) AddImport(i *ProtoImport) { m.Imports = append(m.Imports, i) }

// AddEnum appends a top-level enum.
func (m *Module) AddEnum(e *ProtoEnum) { m.Enums = append(m.Enums, e) }

// AddMessage appends a top-level message.
func (m *Module) AddMessage(msg *ProtoMessage) { m.Messages = append(m.Messages, msg) }
