package spirv

import "fmt"

// OperandKind is the grammar kind a signature slot declares.
type OperandKind uint8

const (
	KindIDResultType OperandKind = iota + 1
	KindIDResult
	KindIDRef
	KindLiteralInteger
	KindLiteralContextDependentNumber
	KindLiteralString
	KindLiteralExtInstInteger
	KindLiteralSpecConstantOpInteger
	KindEnumerant
	KindPair
)

// String returns the grammar name of the kind.
func (k OperandKind) String() string {
	switch k {
	case KindIDResultType:
		return "IdResultType"
	case KindIDResult:
		return "IdResult"
	case KindIDRef:
		return "IdRef"
	case KindLiteralInteger:
		return "LiteralInteger"
	case KindLiteralContextDependentNumber:
		return "LiteralContextDependentNumber"
	case KindLiteralString:
		return "LiteralString"
	case KindLiteralExtInstInteger:
		return "LiteralExtInstInteger"
	case KindLiteralSpecConstantOpInteger:
		return "LiteralSpecConstantOpInteger"
	case KindEnumerant:
		return "Enumerant"
	case KindPair:
		return "Pair"
	default:
		return fmt.Sprintf("OperandKind(%d)", uint8(k))
	}
}

func (k OperandKind) isID() bool {
	return k == KindIDResultType || k == KindIDResult || k == KindIDRef
}

// Quantifier states how many operands a slot takes.
type Quantifier uint8

const (
	// One is a required operand.
	One Quantifier = iota
	// Optional is a trailing operand that may be absent.
	Optional
	// Variadic is a trailing list of zero or more operands.
	Variadic
)

// Param is one slot of an instruction signature.
type Param struct {
	Name  string
	Kind  OperandKind
	Enum  EnumKind       // set when Kind is KindEnumerant
	Pair  [2]OperandKind // element kinds when Kind is KindPair
	Quant Quantifier
}

// String renders the slot the way the grammar spells it.
func (p Param) String() string {
	var s string
	switch p.Kind {
	case KindEnumerant:
		s = p.Enum.String()
	case KindPair:
		s = "Pair" + pairName(p.Pair[0]) + pairName(p.Pair[1])
	default:
		s = p.Kind.String()
	}
	switch p.Quant {
	case Optional:
		s += "?"
	case Variadic:
		s += "*"
	}
	return s
}

func pairName(k OperandKind) string {
	switch k {
	case KindIDRef:
		return "IdRef"
	case KindLiteralInteger, KindLiteralContextDependentNumber:
		return "LiteralInteger"
	default:
		return k.String()
	}
}

// OperandTag identifies which variant an Operand value holds.
type OperandTag uint8

const (
	TagID OperandTag = iota + 1
	TagInteger
	TagFloat
	TagString
	TagEnum
	TagOptional
	TagVariadic
	TagPaired
)

// String returns the tag name.
func (t OperandTag) String() string {
	switch t {
	case TagID:
		return "id"
	case TagInteger:
		return "integer"
	case TagFloat:
		return "float"
	case TagString:
		return "string"
	case TagEnum:
		return "enumerant"
	case TagOptional:
		return "optional"
	case TagVariadic:
		return "variadic"
	case TagPaired:
		return "paired"
	default:
		return "invalid"
	}
}

// Operand is a single operand value supplied at an emit call site.
// The zero value is invalid; use the constructors.
type Operand struct {
	tag    OperandTag
	bits   uint64
	width  uint8
	signed bool
	str    string
	enum   EnumKind
	elems  []Operand // enumerant parameters or variadic elements
	inner  *Operand
	pairs  []Pair
}

// Pair is one record of a paired tail.
type Pair struct {
	First  Operand
	Second Operand
}

// P builds a Pair.
func P(first, second Operand) Pair {
	return Pair{First: first, Second: second}
}

// Tag returns the operand variant.
func (o Operand) Tag() OperandTag {
	return o.tag
}

// IDValue returns the id held by a TagID operand.
func (o Operand) IDValue() ID {
	return ID(o.bits)
}

// Bits returns the raw bit pattern of an integer, float or enumerant operand.
func (o Operand) Bits() uint64 {
	return o.bits
}

// Width returns the bit width of a numeric operand.
func (o Operand) Width() int {
	return int(o.width)
}

// Present reports whether an optional operand carries a value.
func (o Operand) Present() bool {
	return o.tag != TagOptional || o.inner != nil
}

// Elems returns the elements of a variadic operand or the parameters of an
// enumerant.
func (o Operand) Elems() []Operand {
	return o.elems
}

// PairList returns the records of a paired operand.
func (o Operand) PairList() []Pair {
	return o.pairs
}

// Ref is an id reference.
func Ref(id ID) Operand {
	return Operand{tag: TagID, bits: uint64(id)}
}

// Refs is a variadic tail of id references.
func Refs(ids ...ID) Operand {
	elems := make([]Operand, len(ids))
	for i, id := range ids {
		elems[i] = Ref(id)
	}
	return Operand{tag: TagVariadic, elems: elems}
}

// Lit is a 32-bit unsigned literal.
func Lit(v uint32) Operand {
	return Operand{tag: TagInteger, bits: uint64(v), width: 32}
}

// Lits is a variadic tail of 32-bit literals.
func Lits(vs ...uint32) Operand {
	elems := make([]Operand, len(vs))
	for i, v := range vs {
		elems[i] = Lit(v)
	}
	return Operand{tag: TagVariadic, elems: elems}
}

// LitInt is a 32-bit signed literal, encoded in two's complement.
func LitInt(v int32) Operand {
	return Operand{tag: TagInteger, bits: uint64(uint32(v)), width: 32, signed: true}
}

// LitU64 is a 64-bit unsigned literal occupying two words.
func LitU64(v uint64) Operand {
	return Operand{tag: TagInteger, bits: v, width: 64}
}

// LitI64 is a 64-bit signed literal occupying two words.
func LitI64(v int64) Operand {
	return Operand{tag: TagInteger, bits: uint64(v), width: 64, signed: true}
}

// LitF32 is a 32-bit float literal.
func LitF32(v float32) Operand {
	return Operand{tag: TagFloat, bits: uint64(float32bits(v)), width: 32}
}

// LitF64 is a 64-bit float literal occupying two words.
func LitF64(v float64) Operand {
	return Operand{tag: TagFloat, bits: float64bits(v), width: 64}
}

// Str is a literal string.
func Str(s string) Operand {
	return Operand{tag: TagString, str: s}
}

// EnumValue is an enumerant of the given kind followed by its parameters.
func EnumValue(kind EnumKind, value uint32, params ...Operand) Operand {
	return Operand{tag: TagEnum, enum: kind, bits: uint64(value), elems: params}
}

// Enumerant is implemented by the typed enumeration constants.
type Enumerant interface {
	~uint32
	EnumKind() EnumKind
}

// Enum is a typed enumerant followed by its parameters.
func Enum[T Enumerant](v T, params ...Operand) Operand {
	return EnumValue(v.EnumKind(), uint32(v), params...)
}

// Opt is a present optional operand.
func Opt(inner Operand) Operand {
	return Operand{tag: TagOptional, inner: &inner}
}

// None is an absent optional operand.
func None() Operand {
	return Operand{tag: TagOptional}
}

// List is a variadic tail.
func List(elems ...Operand) Operand {
	return Operand{tag: TagVariadic, elems: elems}
}

// Pairs is a paired tail.
func Pairs(pairs ...Pair) Operand {
	return Operand{tag: TagPaired, pairs: pairs}
}

// StringValue returns the text of a TagString operand.
func (o Operand) StringValue() string {
	return o.str
}

// Signed reports whether an integer operand was built from a signed value.
func (o Operand) Signed() bool {
	return o.signed
}

// Kind returns the enumeration of a TagEnum operand.
func (o Operand) Kind() EnumKind {
	return o.enum
}

// Inner returns the value of a present optional operand.
func (o Operand) Inner() (Operand, bool) {
	if o.tag != TagOptional || o.inner == nil {
		return Operand{}, false
	}
	return *o.inner, true
}

// CloneOperands returns a deep copy of operands. Tails, enumerant
// parameters and optional values no longer share memory with the input.
func CloneOperands(operands ...Operand) []Operand {
	if operands == nil {
		return nil
	}
	out := make([]Operand, len(operands))
	for i, o := range operands {
		out[i] = o.clone()
	}
	return out
}

func (o Operand) clone() Operand {
	if o.inner != nil {
		inner := o.inner.clone()
		o.inner = &inner
	}
	o.elems = CloneOperands(o.elems...)
	if o.pairs != nil {
		pairs := make([]Pair, len(o.pairs))
		for i, p := range o.pairs {
			pairs[i] = Pair{First: p.First.clone(), Second: p.Second.clone()}
		}
		o.pairs = pairs
	}
	return o
}

// HighestID returns the largest id referenced by the operands, including ids
// nested in optional values, tails and enumerant parameters.
func HighestID(operands ...Operand) ID {
	var top ID
	for _, o := range operands {
		var id ID
		switch o.tag {
		case TagID:
			id = ID(o.bits)
		case TagOptional:
			if o.inner != nil {
				id = HighestID(*o.inner)
			}
		case TagVariadic, TagEnum:
			id = HighestID(o.elems...)
		case TagPaired:
			for _, p := range o.pairs {
				id = max(id, HighestID(p.First, p.Second))
			}
		}
		top = max(top, id)
	}
	return top
}
