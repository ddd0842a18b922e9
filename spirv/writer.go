package spirv

import (
	"strconv"
	"strings"
)

// EncodedInstruction is one instruction lowered for both output forms.
// Words holds the complete binary instruction, combined opcode word first.
// Tokens holds one text token per leaf operand in the same order, and
// Widths holds the number of words each token occupies in Words.
type EncodedInstruction struct {
	Spec   *InstructionSpec
	Words  []uint32
	Tokens []string
	Widths []int

	// Result is the index in Tokens of the result id, or -1.
	Result int
}

// WordCount returns the count stored in the high half of the opcode word.
func (e *EncodedInstruction) WordCount() int {
	return int(e.Words[0] >> 16)
}

// Line renders the instruction as one line of text without a newline.
func (e *EncodedInstruction) Line() string {
	var b strings.Builder
	if e.Result >= 0 {
		b.WriteString(e.Tokens[e.Result])
		b.WriteString(" = ")
	}
	b.WriteString(e.Spec.Mnemonic())
	for i, tok := range e.Tokens {
		if i == e.Result {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(tok)
	}
	return b.String()
}

// instructionBuilder accumulates leaves for one instruction.
type instructionBuilder struct {
	spec   *InstructionSpec
	words  []uint32
	tokens []string
	widths []int
	result int
}

func newInstructionBuilder(spec *InstructionSpec) *instructionBuilder {
	// word 0 is reserved for the combined opcode and word count
	words := make([]uint32, 1, 8)
	return &instructionBuilder{
		spec:   spec,
		words:  words,
		tokens: make([]string, 0, 8),
		widths: make([]int, 0, 8),
		result: -1,
	}
}

func (b *instructionBuilder) add(l leaf) {
	b.words = append(b.words, l.words...)
	b.tokens = append(b.tokens, l.token)
	b.widths = append(b.widths, len(l.words))
}

func (b *instructionBuilder) build() (*EncodedInstruction, error) {
	wordCount := len(b.words)
	if wordCount > MaxWordCount {
		return nil, &Error{
			Kind:    ErrInstructionTooLarge,
			Op:      b.spec.Mnemonic(),
			Operand: -1,
			Offset:  -1,
			Message: "word count " + strconv.Itoa(wordCount) + " exceeds " + strconv.Itoa(MaxWordCount),
		}
	}
	b.words[0] = uint32(wordCount)<<16 | uint32(b.spec.Code)
	return &EncodedInstruction{
		Spec:   b.spec,
		Words:  b.words,
		Tokens: b.tokens,
		Widths: b.widths,
		Result: b.result,
	}, nil
}

// EncodeInstruction lowers one instruction against its signature.
// Trailing optional and variadic operands may be left out entirely.
// The returned error names the opcode and the index of the failing operand.
func EncodeInstruction(spec *InstructionSpec, operands ...Operand) (*EncodedInstruction, error) {
	b := newInstructionBuilder(spec)
	next := 0
	absent := false
	for _, p := range spec.Params {
		if next >= len(operands) {
			if p.Quant == One {
				return nil, b.fail(ErrEncoding, next, "missing %s operand", p)
			}
			break
		}
		o := operands[next]
		idx := next
		next++

		switch p.Quant {
		case One:
			if err := b.lower(p, o, idx); err != nil {
				return nil, err
			}

		case Optional:
			if o.tag == TagOptional {
				inner, ok := o.Inner()
				if !ok {
					absent = true
					continue
				}
				o = inner
			}
			if absent {
				return nil, b.fail(ErrEncoding, idx, "operand follows an absent optional operand")
			}
			if err := b.lower(p, o, idx); err != nil {
				return nil, err
			}

		case Variadic:
			if err := b.lowerTail(p, o, idx, absent); err != nil {
				return nil, err
			}
		}
	}
	if next < len(operands) {
		return nil, b.fail(ErrEncoding, next, "too many operands: %s takes at most %d", spec.Mnemonic(), next)
	}
	return b.build()
}

func (b *instructionBuilder) lowerTail(p Param, o Operand, idx int, absent bool) error {
	if p.Kind == KindPair {
		if o.tag != TagPaired {
			return b.fail(ErrEncoding, idx, "expected paired tail %s, got %s operand", p, o.tag)
		}
		if absent && len(o.pairs) > 0 {
			return b.fail(ErrEncoding, idx, "operand follows an absent optional operand")
		}
		first := Param{Kind: p.Pair[0]}
		second := Param{Kind: p.Pair[1]}
		for _, pair := range o.pairs {
			if err := b.lower(first, pair.First, idx); err != nil {
				return err
			}
			if err := b.lower(second, pair.Second, idx); err != nil {
				return err
			}
		}
		return nil
	}

	if o.tag != TagVariadic {
		return b.fail(ErrEncoding, idx, "expected variadic tail %s, got %s operand", p, o.tag)
	}
	if absent && len(o.elems) > 0 {
		return b.fail(ErrEncoding, idx, "operand follows an absent optional operand")
	}
	elem := p
	elem.Quant = One
	for _, e := range o.elems {
		if err := b.lower(elem, e, idx); err != nil {
			return err
		}
	}
	return nil
}

// lower appends the leaves of a single value for slot p.
func (b *instructionBuilder) lower(p Param, o Operand, idx int) error {
	switch p.Kind {
	case KindIDResultType, KindIDResult, KindIDRef:
		if o.tag != TagID {
			return b.mismatch(p, o, idx)
		}
		if p.Kind == KindIDResult {
			b.result = len(b.tokens)
		}
		b.add(lowerID(o))

	case KindLiteralInteger, KindLiteralExtInstInteger:
		if o.tag != TagInteger || o.width != 32 {
			return b.mismatch(p, o, idx)
		}
		b.add(lowerNumber(o))

	case KindLiteralSpecConstantOpInteger:
		if o.tag != TagInteger || o.width != 32 {
			return b.mismatch(p, o, idx)
		}
		b.add(lowerSpecOp(o))

	case KindLiteralContextDependentNumber:
		if o.tag != TagInteger && o.tag != TagFloat {
			return b.mismatch(p, o, idx)
		}
		b.add(lowerNumber(o))

	case KindLiteralString:
		if o.tag != TagString {
			return b.mismatch(p, o, idx)
		}
		l, err := lowerString(o)
		if err != nil {
			e := b.fail(ErrEncoding, idx, "cannot encode string operand")
			e.Cause = err
			return e
		}
		b.add(l)

	case KindEnumerant:
		return b.lowerEnumerant(p, o, idx)

	default:
		return b.fail(ErrEncoding, idx, "slot kind %s cannot hold a single value", p.Kind)
	}
	return nil
}

func (b *instructionBuilder) lowerEnumerant(p Param, o Operand, idx int) error {
	if o.tag != TagEnum || o.enum != p.Enum {
		return b.mismatch(p, o, idx)
	}
	b.add(lowerEnumerant(o))

	v := uint32(o.bits)
	params, known := enumTables[p.Enum].paramsFor(v)
	if !known && len(params) == 0 && len(o.elems) > 0 {
		return b.fail(ErrEncoding, idx, "unknown %s value %d cannot carry parameters", p.Enum, v)
	}
	if len(o.elems) != len(params) {
		return b.fail(ErrEncoding, idx, "%s %s takes %d parameters, got %d",
			p.Enum, FormatEnumerant(p.Enum, v), len(params), len(o.elems))
	}
	for i, pp := range params {
		if err := b.lower(pp, o.elems[i], idx); err != nil {
			return err
		}
	}
	return nil
}

func (b *instructionBuilder) mismatch(p Param, o Operand, idx int) *Error {
	if o.tag == TagInteger || o.tag == TagFloat {
		return b.fail(ErrEncoding, idx, "expected %s, got %d-bit %s operand", p, o.width, o.tag)
	}
	if o.tag == TagEnum {
		return b.fail(ErrEncoding, idx, "expected %s, got %s enumerant", p, o.enum)
	}
	return b.fail(ErrEncoding, idx, "expected %s, got %s operand", p, o.tag)
}

func (b *instructionBuilder) fail(kind ErrorKind, idx int, format string, args ...any) *Error {
	return operandError(kind, b.spec.Mnemonic(), idx, format, args...)
}
