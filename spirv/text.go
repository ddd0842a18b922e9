package spirv

import (
	"strings"

	"go.uber.org/zap"
)

// TextEncoder renders instructions as disassembly lines.
type TextEncoder struct {
	opts   Options
	log    *zap.Logger
	header headerState
	lines  []string
}

// NewTextEncoder creates an empty text encoder.
func NewTextEncoder(opts Options) *TextEncoder {
	return &TextEncoder{
		opts:  opts,
		log:   opts.logger(),
		lines: make([]string, 0, 64),
	}
}

// AddMetadata records the header. A second call fails with ErrInvalidUsage
// and leaves the first header in place.
func (e *TextEncoder) AddMetadata(magic, version, generator, bound, schema uint32) error {
	if err := e.header.add(magic, version, generator, bound, schema); err != nil {
		e.log.Debug("duplicate module metadata", zap.Error(err))
		return err
	}
	return nil
}

// SetBound patches the id bound of the recorded header.
func (e *TextEncoder) SetBound(bound uint32) error {
	return e.header.setBound(bound)
}

// Emit appends the instruction named by its mnemonic.
func (e *TextEncoder) Emit(name string, operands ...Operand) error {
	spec, err := resolveName(name)
	if err != nil {
		return err
	}
	return e.EmitSpec(spec, operands...)
}

// EmitOp appends the canonical instruction for code.
func (e *TextEncoder) EmitOp(code OpCode, operands ...Operand) error {
	spec, err := resolveOpCode(code)
	if err != nil {
		return err
	}
	return e.EmitSpec(spec, operands...)
}

// EmitSpec appends an instruction. On error nothing is appended.
func (e *TextEncoder) EmitSpec(spec *InstructionSpec, operands ...Operand) error {
	inst, err := lowerLogged(e.log, spec, operands)
	if err != nil {
		return err
	}
	e.appendEncoded(inst)
	return nil
}

func (e *TextEncoder) encoderLogger() *zap.Logger {
	return e.log
}

func (e *TextEncoder) appendEncoded(inst *EncodedInstruction) {
	e.lines = append(e.lines, inst.Line())
}

// Lines returns the number of instruction lines emitted so far.
func (e *TextEncoder) Lines() int {
	return len(e.lines)
}

// Text returns the header comment followed by one line per instruction.
func (e *TextEncoder) Text() (string, error) {
	h, err := e.header.get()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(h.Comment())
	for _, line := range e.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	e.log.Debug("text module finalized", zap.Int("lines", len(e.lines)))
	return b.String(), nil
}
