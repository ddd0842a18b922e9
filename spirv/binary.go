package spirv

import (
	"go.uber.org/zap"
)

// BinaryEncoder packs instructions into 32-bit words.
type BinaryEncoder struct {
	opts   Options
	log    *zap.Logger
	header headerState

	// instruction stream, header excluded
	words []uint32
}

// NewBinaryEncoder creates an empty binary encoder.
func NewBinaryEncoder(opts Options) *BinaryEncoder {
	return &BinaryEncoder{
		opts:  opts,
		log:   opts.logger(),
		words: make([]uint32, 0, 256),
	}
}

// AddMetadata records the header. A second call fails with ErrInvalidUsage
// and leaves the first header in place.
func (e *BinaryEncoder) AddMetadata(magic, version, generator, bound, schema uint32) error {
	if err := e.header.add(magic, version, generator, bound, schema); err != nil {
		e.log.Debug("duplicate module metadata", zap.Error(err))
		return err
	}
	return nil
}

// SetBound patches the id bound of the recorded header.
func (e *BinaryEncoder) SetBound(bound uint32) error {
	return e.header.setBound(bound)
}

// Emit appends the instruction named by its mnemonic.
func (e *BinaryEncoder) Emit(name string, operands ...Operand) error {
	spec, err := resolveName(name)
	if err != nil {
		return err
	}
	return e.EmitSpec(spec, operands...)
}

// EmitOp appends the canonical instruction for code.
func (e *BinaryEncoder) EmitOp(code OpCode, operands ...Operand) error {
	spec, err := resolveOpCode(code)
	if err != nil {
		return err
	}
	return e.EmitSpec(spec, operands...)
}

// EmitSpec appends an instruction. On error nothing is appended.
func (e *BinaryEncoder) EmitSpec(spec *InstructionSpec, operands ...Operand) error {
	inst, err := lowerLogged(e.log, spec, operands)
	if err != nil {
		return err
	}
	e.appendEncoded(inst)
	return nil
}

func (e *BinaryEncoder) encoderLogger() *zap.Logger {
	return e.log
}

func (e *BinaryEncoder) appendEncoded(inst *EncodedInstruction) {
	e.words = append(e.words, inst.Words...)
}

// Len returns the number of instruction words emitted so far.
func (e *BinaryEncoder) Len() int {
	return len(e.words)
}

// Words returns the header followed by the instruction stream.
// The result is a copy; the encoder may keep emitting afterwards.
func (e *BinaryEncoder) Words() ([]uint32, error) {
	h, err := e.header.get()
	if err != nil {
		return nil, err
	}
	hw := h.Words()
	out := make([]uint32, 0, HeaderWords+len(e.words))
	out = append(out, hw[:]...)
	out = append(out, e.words...)
	return out, nil
}

// Bytes serializes the module in the configured word order.
// Calling it repeatedly without emitting yields identical output.
func (e *BinaryEncoder) Bytes() ([]byte, error) {
	words, err := e.Words()
	if err != nil {
		return nil, err
	}
	order := e.opts.WordOrder.ByteOrder()
	buffer := make([]byte, len(words)*4)
	offset := 0
	for _, word := range words {
		order.PutUint32(buffer[offset:], word)
		offset += 4
	}
	e.log.Debug("binary module finalized",
		zap.Int("words", len(words)),
		zap.Int("bytes", len(buffer)),
		zap.Stringer("order", e.opts.WordOrder))
	return buffer, nil
}
