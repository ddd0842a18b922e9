package spirv

import (
	"encoding/binary"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// DecodeOptions configures Decode.
type DecodeOptions struct {
	// SkipUnknown drops instructions whose opcode is not in the table
	// instead of failing.
	SkipUnknown bool

	// Logger receives debug diagnostics; nil uses the package logger
	Logger *zap.Logger
}

// numberType is the shape of a scalar type declared by OpTypeInt or
// OpTypeFloat, used to size context-dependent literals.
type numberType struct {
	width  int
	signed bool
	float  bool
}

var defaultNumber = numberType{width: 32}

// decoder walks a word stream and rebuilds operand values.
type decoder struct {
	words []uint32
	log   *zap.Logger

	// scalar types by type id, and the type of every typed result
	types       map[ID]numberType
	resultTypes map[ID]ID
}

// Decode parses a binary module in either byte order and replays its
// header and instructions into enc.
func Decode(data []byte, enc Encoder, opts DecodeOptions) error {
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	words, err := toWords(data)
	if err != nil {
		return err
	}
	if err := enc.AddMetadata(words[0], words[1], words[2], words[3], words[4]); err != nil {
		return err
	}
	d := &decoder{
		words:       words,
		log:         log,
		types:       make(map[ID]numberType),
		resultTypes: make(map[ID]ID),
	}
	return d.run(enc, opts.SkipUnknown)
}

func toWords(data []byte) ([]uint32, error) {
	if len(data) < HeaderWords*4 {
		return nil, malformed(0, "module is %d bytes, shorter than the header", len(data))
	}
	if len(data)%4 != 0 {
		return nil, malformed(0, "module length %d is not a multiple of 4", len(data))
	}
	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(data) == MagicNumber:
		order = binary.LittleEndian
	case binary.BigEndian.Uint32(data) == MagicNumber:
		order = binary.BigEndian
	default:
		return nil, malformed(0, "bad magic number 0x%08x", binary.LittleEndian.Uint32(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = order.Uint32(data[i*4:])
	}
	return words, nil
}

func malformed(offset int, format string, args ...any) *Error {
	e := NewError(ErrMalformedModule, fmt.Sprintf(format, args...))
	e.Offset = offset
	return e
}

func (d *decoder) run(enc Encoder, skipUnknown bool) error {
	offset := HeaderWords
	for offset < len(d.words) {
		first := d.words[offset]
		count := int(first >> 16)
		code := OpCode(first & 0xFFFF)
		if count == 0 || offset+count > len(d.words) {
			return malformed(offset, "instruction word count %d overruns the module", count)
		}
		spec, ok := LookupOpCode(code)
		if !ok {
			if skipUnknown {
				d.log.Debug("skipping unknown instruction", zap.Uint16("opcode", uint16(code)), zap.Int("offset", offset))
				offset += count
				continue
			}
			e := NewError(ErrUnknownInstruction, fmt.Sprintf("unknown opcode %d", code))
			e.Offset = offset
			return e
		}
		body := d.words[offset+1 : offset+count]
		operands, err := d.operands(spec, body)
		if err != nil {
			return d.at(err, spec, offset)
		}
		if err := enc.EmitSpec(spec, operands...); err != nil {
			return d.at(err, spec, offset)
		}
		d.track(spec, body)
		offset += count
	}
	return nil
}

func (d *decoder) at(err error, spec *InstructionSpec, offset int) error {
	var e *Error
	if errors.As(err, &e) {
		e.Offset = offset
		if e.Op == "" {
			e.Op = spec.Mnemonic()
		}
	}
	return err
}

// track records scalar type declarations and result types.
func (d *decoder) track(spec *InstructionSpec, body []uint32) {
	switch spec.Code {
	case OpTypeInt:
		d.types[ID(body[0])] = numberType{width: int(body[1]), signed: body[2] != 0}
	case OpTypeFloat:
		d.types[ID(body[0])] = numberType{width: int(body[1]), float: true}
	}
	if spec.HasResultType() {
		d.resultTypes[ID(body[1])] = ID(body[0])
	}
}

// numberContext returns the type that sizes the context-dependent literals
// of an instruction.
func (d *decoder) numberContext(spec *InstructionSpec, body []uint32) numberType {
	if len(body) == 0 {
		return defaultNumber
	}
	var typeID ID
	switch {
	case spec.HasResultType():
		typeID = ID(body[0])
	case spec.Code == OpSwitch:
		typeID = d.resultTypes[ID(body[0])]
	default:
		return defaultNumber
	}
	if t, ok := d.types[typeID]; ok {
		return t
	}
	return defaultNumber
}

// cursor reads leaf values from an instruction body.
type cursor struct {
	words []uint32
	pos   int
	num   numberType
}

func (c *cursor) remaining() int {
	return len(c.words) - c.pos
}

func (c *cursor) next() (uint32, error) {
	if c.pos >= len(c.words) {
		return 0, errors.New("instruction ends early")
	}
	w := c.words[c.pos]
	c.pos++
	return w, nil
}

func (d *decoder) operands(spec *InstructionSpec, body []uint32) ([]Operand, error) {
	c := &cursor{words: body, num: d.numberContext(spec, body)}
	operands := make([]Operand, 0, len(spec.Params))
	for i, p := range spec.Params {
		if p.Quant != One && c.remaining() == 0 {
			break
		}
		switch p.Quant {
		case Variadic:
			tail, err := c.tail(p)
			if err != nil {
				return nil, operandError(ErrMalformedModule, spec.Mnemonic(), i, "%v", err)
			}
			operands = append(operands, tail)
		default:
			o, err := c.leaf(p)
			if err != nil {
				return nil, operandError(ErrMalformedModule, spec.Mnemonic(), i, "%v", err)
			}
			operands = append(operands, o)
		}
	}
	if c.remaining() != 0 {
		return nil, operandError(ErrMalformedModule, spec.Mnemonic(), -1,
			"%d words left after the last operand", c.remaining())
	}
	return operands, nil
}

func (c *cursor) tail(p Param) (Operand, error) {
	if p.Kind == KindPair {
		var pairs []Pair
		for c.remaining() > 0 {
			first, err := c.leaf(Param{Kind: p.Pair[0]})
			if err != nil {
				return Operand{}, err
			}
			second, err := c.leaf(Param{Kind: p.Pair[1]})
			if err != nil {
				return Operand{}, err
			}
			pairs = append(pairs, P(first, second))
		}
		return Pairs(pairs...), nil
	}
	elem := p
	elem.Quant = One
	var elems []Operand
	for c.remaining() > 0 {
		o, err := c.leaf(elem)
		if err != nil {
			return Operand{}, err
		}
		elems = append(elems, o)
	}
	return List(elems...), nil
}

func (c *cursor) leaf(p Param) (Operand, error) {
	switch p.Kind {
	case KindLiteralString:
		s, n, err := decodeString(c.words[c.pos:])
		if err != nil {
			return Operand{}, err
		}
		c.pos += n
		return Str(s), nil
	case KindLiteralContextDependentNumber:
		return c.number()
	}

	w, err := c.next()
	if err != nil {
		return Operand{}, err
	}
	switch p.Kind {
	case KindIDResultType, KindIDResult, KindIDRef:
		return Ref(ID(w)), nil
	case KindEnumerant:
		params, _ := EnumerantParams(p.Enum, w)
		values := make([]Operand, len(params))
		for i, pp := range params {
			if values[i], err = c.leaf(pp); err != nil {
				return Operand{}, err
			}
		}
		return EnumValue(p.Enum, w, values...), nil
	default:
		return Lit(w), nil
	}
}

func (c *cursor) number() (Operand, error) {
	lo, err := c.next()
	if err != nil {
		return Operand{}, err
	}
	t := c.num
	if t.width > 32 {
		hi, err := c.next()
		if err != nil {
			return Operand{}, err
		}
		bits := uint64(hi)<<32 | uint64(lo)
		switch {
		case t.float:
			return Operand{tag: TagFloat, bits: bits, width: 64}, nil
		case t.signed:
			return LitI64(int64(bits)), nil
		default:
			return LitU64(bits), nil
		}
	}
	switch {
	case t.float && t.width == 32:
		return Operand{tag: TagFloat, bits: uint64(lo), width: 32}, nil
	case t.signed:
		return LitInt(int32(lo)), nil
	default:
		return Lit(lo), nil
	}
}
