// Package asn1 models the fully-resolved ASN.1 expression tree that the
// translator consumes. Lexing, parsing, and reference/terminal-type
// resolution are external collaborators; this package only carries the
// shapes they are expected to produce.
package asn1

// MetaType classifies what kind of declaration an Expr represents.
type MetaType int

const (
	MetaInvalid MetaType = iota
	MetaType_   // AMT_TYPE
	MetaValue   // AMT_VALUE
	MetaValueSet
	MetaTypeRef
)

// ExprType classifies the ASN.1 construct an Expr carries.
type ExprType int

const (
	ExprInvalid ExprType = iota
	ExprInteger
	ExprBoolean
	ExprIA5String
	ExprBMPString
	ExprUTF8String
	ExprTeletexString
	ExprObjectIdentifier
	ExprBitString
	ExprEnumerated
	ExprSequence
	ExprSequenceOf
	ExprChoice
	ExprReference
	ExprClassDef
	ExprUniverVal
	ExprExtensible
)

// Module is the ASN.1 module a set of Exprs belongs to.
type Module struct {
	Name       string
	SourceFile string
	OID        *OID
}

// OID models `{ arc(number) arc(number) ... }` module identifiers.
type OID struct {
	Arcs []OIDArc
}

type OIDArc struct {
	Name   string // may be empty; Number is always meaningful then
	Number int
	HasNum bool
}

// RefComponent is one dotted segment of a Reference.
type RefComponent struct {
	Name string
}

// Reference is an ordered list of components, e.g. `Foo.bar`.
type Reference struct {
	Components []RefComponent
}

// ParamKind classifies a formal parameter's inferred kind.
type ParamKind int

const (
	ParamTypeKind ParamKind = iota
	ParamValueKind
	ParamValueSetKind
)

// Param is one formal parameter of a parameterized ASN.1 type.
type Param struct {
	Governor string // empty => TYPE kind
	Argument string
}

// IOCCell is one cell of an information-object-class table row.
type IOCCell struct {
	FieldIdentifier string
	ValueIdentifier string // e.g. "INTEGER", "REAL", or a referenced identifier
	Value           *Value // optional; non-nil when the cell carries a literal
	NewRef          int    // > 0 marks a cell that introduces a new field
}

type IOCRow struct {
	Cells []IOCCell
}

// IOCTable is the information-object-class table attached to a class
// instance expression.
type IOCTable struct {
	Rows []IOCRow
}

// Expr is a single node of the ASN.1 expression tree.
type Expr struct {
	Identifier string
	MetaType   MetaType
	ExprType   ExprType

	Members []*Expr

	Constraints *Constraint
	Value       *Value
	Reference   *Reference

	Params           []*Param
	Specializations  []*Expr // specialization clones; nil/empty on a non-parameterized expr

	IOCTable *IOCTable

	SourceFile      string
	Line            int
	SpecIndex       int
	TypeUniqueIndex int

	Module *Module
}

// TerminalTypeResolver follows REFERENCE chains to the underlying built-in
// or structural type. It is supplied by the caller's fixer pass; the
// translator never implements reference resolution itself.
type TerminalTypeResolver func(mod *Module, e *Expr) *Expr
