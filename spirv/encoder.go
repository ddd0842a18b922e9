package spirv

import (
	"errors"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Encoder accepts module metadata and one emit call per instruction.
// Implementations never reorder instructions and never allocate ids.
type Encoder interface {
	// AddMetadata records the five header words. It may be called once.
	AddMetadata(magic, version, generator, bound, schema uint32) error

	// SetBound patches the id bound after AddMetadata.
	SetBound(bound uint32) error

	// Emit appends the instruction named by its mnemonic.
	Emit(name string, operands ...Operand) error

	// EmitOp appends the canonical instruction for code.
	EmitOp(code OpCode, operands ...Operand) error

	// EmitSpec appends an instruction without a table lookup.
	EmitSpec(spec *InstructionSpec, operands ...Operand) error
}

// encodedSink is implemented by encoders that accept an already lowered
// instruction, so a fan-out lowers each instruction once.
type encodedSink interface {
	appendEncoded(inst *EncodedInstruction)
	encoderLogger() *zap.Logger
}

func resolveName(name string) (*InstructionSpec, error) {
	spec, ok := Lookup(name)
	if !ok {
		e := NewError(ErrUnknownInstruction, "no instruction named "+name)
		e.Op = name
		return nil, e
	}
	return spec, nil
}

func resolveOpCode(code OpCode) (*InstructionSpec, error) {
	spec, ok := LookupOpCode(code)
	if !ok {
		return nil, NewError(ErrUnknownInstruction, "no instruction with opcode "+strconv.FormatUint(uint64(code), 10))
	}
	return spec, nil
}

// lowerLogged lowers an instruction and logs rejections.
func lowerLogged(log *zap.Logger, spec *InstructionSpec, operands []Operand) (*EncodedInstruction, error) {
	inst, err := EncodeInstruction(spec, operands...)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			log.Debug("instruction rejected",
				zap.String("op", e.Op),
				zap.Int("operand", e.Operand),
				zap.Stringer("kind", e.Kind),
				zap.String("reason", e.Message))
		}
		return nil, err
	}
	return inst, nil
}

type multiEncoder struct {
	encs []Encoder
	log  *zap.Logger
}

// MultiEncoder returns an Encoder that duplicates every call to each of
// encs, like io.MultiWriter. Instructions are lowered once and the same
// lowering reaches every target. Rejections are logged to the logger of
// the first BinaryEncoder or TextEncoder among encs, else to Logger().
//
// Metadata errors from all targets are combined. An instruction is offered
// to foreign Encoder implementations first, in order, and appended to this
// package's encoders only once all of them accepted it. When a foreign
// target fails, the foreign targets before it keep the instruction.
func MultiEncoder(encs ...Encoder) Encoder {
	m := &multiEncoder{encs: make([]Encoder, 0, len(encs))}
	for _, e := range encs {
		if inner, ok := e.(*multiEncoder); ok {
			m.encs = append(m.encs, inner.encs...)
			if m.log == nil {
				m.log = inner.log
			}
			continue
		}
		m.encs = append(m.encs, e)
		if sink, ok := e.(encodedSink); ok && m.log == nil {
			m.log = sink.encoderLogger()
		}
	}
	if m.log == nil {
		m.log = Logger()
	}
	return m
}

func (m *multiEncoder) AddMetadata(magic, version, generator, bound, schema uint32) error {
	var err error
	for _, e := range m.encs {
		err = multierr.Append(err, e.AddMetadata(magic, version, generator, bound, schema))
	}
	return err
}

func (m *multiEncoder) SetBound(bound uint32) error {
	var err error
	for _, e := range m.encs {
		err = multierr.Append(err, e.SetBound(bound))
	}
	return err
}

func (m *multiEncoder) Emit(name string, operands ...Operand) error {
	spec, err := resolveName(name)
	if err != nil {
		return err
	}
	return m.EmitSpec(spec, operands...)
}

func (m *multiEncoder) EmitOp(code OpCode, operands ...Operand) error {
	spec, err := resolveOpCode(code)
	if err != nil {
		return err
	}
	return m.EmitSpec(spec, operands...)
}

func (m *multiEncoder) EmitSpec(spec *InstructionSpec, operands ...Operand) error {
	inst, err := lowerLogged(m.log, spec, operands)
	if err != nil {
		return err
	}
	for _, e := range m.encs {
		if _, ok := e.(encodedSink); ok {
			continue
		}
		if err := e.EmitSpec(spec, operands...); err != nil {
			return err
		}
	}
	for _, e := range m.encs {
		if sink, ok := e.(encodedSink); ok {
			sink.appendEncoded(inst)
		}
	}
	return nil
}
