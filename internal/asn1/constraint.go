package asn1

// ConstraintKind enumerates the constraint tree node kinds, matching the
// asn1p_constraint_t `type` discriminant.
type ConstraintKind int

const (
	CInvalid ConstraintKind = iota
	CElType          // ACT_EL_TYPE: single contained subtype
	CElValue         // ACT_EL_VALUE: single value
	CElRange         // ACT_EL_RANGE: [a,b]
	CElLLRange       // ACT_EL_LLRANGE: (a,b]
	CElRLRange       // ACT_EL_RLRANGE: [a,b)
	CElULRange       // ACT_EL_ULRANGE: (a,b)
	CElExt           // ACT_EL_EXT: "..."
	CSize            // ACT_CT_SIZE: SIZE(inner)
	CFrom            // ACT_CT_FROM: FROM(inner)
	CWithComponent   // ACT_CT_WCOMP
	CWithComponents  // ACT_CT_WCOMPS
	CConstrainedBy   // ACT_CT_CTDBY
	CContaining      // ACT_CT_CTNG
	CPattern         // ACT_CT_PATTERN
	CSet             // ACT_CA_SET
	CCrc             // ACT_CA_CRC
	CUnion           // ACT_CA_UNI / ACT_CA_CSV (comma union)
	CIntersection    // ACT_CA_INT
	CException       // ACT_CA_EXC
	CAllExcept       // ACT_CA_AEX
)

// WithComponentsPresence mirrors ACPRES_* for a WITH COMPONENTS element.
type WithComponentsPresence int

const (
	PresenceDefault WithComponentsPresence = iota
	PresencePresent
	PresenceAbsent
	PresenceOptional
)

// Constraint is a node of the recursive ASN.1 constraint tree.
type Constraint struct {
	Type ConstraintKind

	// ACT_EL_TYPE
	ContainedSubtype *Value

	// ACT_EL_VALUE, ACT_CT_CTDBY (value), ACT_CT_CTNG (v_type expr handled by TypeName), ACT_CT_PATTERN
	Value *Value

	// ACT_EL_RANGE / LLRANGE / RLRANGE / ULRANGE
	RangeStart *Value
	RangeStop  *Value

	// ACT_CT_CTNG: the contained type, printed as a type name.
	TypeName string

	// Children. For SIZE/FROM/WCOMP/WCOMPS/SET/CRC/UNI/INT/EXC/AEX this holds
	// the full child list. For CElType/CElValue/CWithComponent/CAllExcept, a
	// single element here is the "perhaps_subconstraints" tail appended after
	// the primary emission — the same el_count/elements slot the C source
	// reuses for both purposes.
	Elements []*Constraint

	// WITH COMPONENTS presence, parallel to Elements when Type == CWithComponents.
	Presence WithComponentsPresence
}
