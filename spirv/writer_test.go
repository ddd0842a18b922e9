package spirv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLookup(t testing.TB, name string) *InstructionSpec {
	t.Helper()
	spec, ok := Lookup(name)
	require.True(t, ok, "no instruction %s", name)
	return spec
}

func TestEncodeInstruction(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		operands []Operand
		words    []uint32
		line     string
	}{
		{
			name:  "no operands",
			op:    "FunctionEnd",
			words: []uint32{1<<16 | 56},
			line:  "OpFunctionEnd",
		},
		{
			name:     "result and operands",
			op:       "IAdd",
			operands: []Operand{Ref(1), Ref(5), Ref(3), Ref(4)},
			words:    []uint32{5<<16 | 128, 1, 5, 3, 4},
			line:     "%5 = OpIAdd %1 %3 %4",
		},
		{
			name:     "result without type",
			op:       "TypeInt",
			operands: []Operand{Ref(2), Lit(32), Lit(1)},
			words:    []uint32{4<<16 | 21, 2, 32, 1},
			line:     "%2 = OpTypeInt 32 1",
		},
		{
			name:     "string",
			op:       "EntryPoint",
			operands: []Operand{Enum(ExecutionModelGLCompute), Ref(4), Str("main"), Refs(7, 8)},
			words:    []uint32{7<<16 | 15, 5, 4, 0x6e69616d, 0, 7, 8},
			line:     `OpEntryPoint GLCompute %4 "main" %7 %8`,
		},
		{
			name:     "mask with unknown bit",
			op:       "ImageSampleExplicitLod",
			operands: []Operand{Ref(1), Ref(2), Ref(3), Ref(4), EnumValue(EnumImageOperands, uint32(ImageOperandsLod)|0x8000, Ref(5))},
			words:    []uint32{7<<16 | 88, 1, 2, 3, 4, 0x8002, 5},
			line:     "%2 = OpImageSampleExplicitLod %1 %3 %4 Lod|0x8000 %5",
		},
		{
			name:     "enumerant parameter",
			op:       "Decorate",
			operands: []Operand{Ref(9), Enum(DecorationBuiltIn, Enum(BuiltInPosition))},
			words:    []uint32{4<<16 | 71, 9, 11, 0},
			line:     "OpDecorate %9 BuiltIn Position",
		},
		{
			name:     "enumerant literal parameters",
			op:       "ExecutionMode",
			operands: []Operand{Ref(4), Enum(ExecutionModeLocalSize, Lit(8), Lit(8), Lit(1))},
			words:    []uint32{6<<16 | 16, 4, 17, 8, 8, 1},
			line:     "OpExecutionMode %4 LocalSize 8 8 1",
		},
		{
			name:     "optional present",
			op:       "Load",
			operands: []Operand{Ref(1), Ref(2), Ref(3), Opt(Enum(MemoryAccessAligned, Lit(4)))},
			words:    []uint32{6<<16 | 61, 1, 2, 3, 2, 4},
			line:     "%2 = OpLoad %1 %3 Aligned 4",
		},
		{
			name:     "optional absent",
			op:       "Load",
			operands: []Operand{Ref(1), Ref(2), Ref(3), None()},
			words:    []uint32{4<<16 | 61, 1, 2, 3},
			line:     "%2 = OpLoad %1 %3",
		},
		{
			name:     "optional omitted",
			op:       "Load",
			operands: []Operand{Ref(1), Ref(2), Ref(3)},
			words:    []uint32{4<<16 | 61, 1, 2, 3},
			line:     "%2 = OpLoad %1 %3",
		},
		{
			name:     "optional bare value",
			op:       "Variable",
			operands: []Operand{Ref(6), Ref(7), Enum(StorageClassPrivate), Ref(3)},
			words:    []uint32{5<<16 | 59, 6, 7, 6, 3},
			line:     "%7 = OpVariable %6 Private %3",
		},
		{
			name: "paired tail",
			op:   "Phi",
			operands: []Operand{Ref(1), Ref(10), Pairs(
				P(Ref(11), Ref(20)),
				P(Ref(12), Ref(21)),
			)},
			words: []uint32{7<<16 | 245, 1, 10, 11, 20, 12, 21},
			line:  "%10 = OpPhi %1 %11 %20 %12 %21",
		},
		{
			name: "switch literals",
			op:   "Switch",
			operands: []Operand{Ref(3), Ref(9), Pairs(
				P(Lit(1), Ref(10)),
				P(LitInt(-1), Ref(11)),
			)},
			words: []uint32{7<<16 | 251, 3, 9, 1, 10, 0xffffffff, 11},
			line:  "OpSwitch %3 %9 1 %10 -1 %11",
		},
		{
			name:     "64-bit float constant",
			op:       "Constant",
			operands: []Operand{Ref(2), Ref(3), LitF64(1.0)},
			words:    []uint32{5<<16 | 43, 2, 3, 0, 0x3ff00000},
			line:     "%3 = OpConstant %2 1",
		},
		{
			name:     "32-bit float constant",
			op:       "Constant",
			operands: []Operand{Ref(2), Ref(3), LitF32(0.5)},
			words:    []uint32{4<<16 | 43, 2, 3, 0x3f000000},
			line:     "%3 = OpConstant %2 0.5",
		},
		{
			name: "bitmask parameters in bit order",
			op:   "ImageSampleExplicitLod",
			operands: []Operand{Ref(1), Ref(2), Ref(3), Ref(4),
				Enum(ImageOperandsLod|ImageOperandsConstOffset, Ref(5), Ref(6))},
			words: []uint32{8<<16 | 88, 1, 2, 3, 4, 0xA, 5, 6},
			line:  "%2 = OpImageSampleExplicitLod %1 %3 %4 Lod|ConstOffset %5 %6",
		},
		{
			name:     "zero bitmask",
			op:       "Function",
			operands: []Operand{Ref(1), Ref(4), Enum(FunctionControlNone), Ref(3)},
			words:    []uint32{5<<16 | 54, 1, 4, 0, 3},
			line:     "%4 = OpFunction %1 None %3",
		},
		{
			name:     "spec constant op",
			op:       "SpecConstantOp",
			operands: []Operand{Ref(1), Ref(2), Lit(uint32(OpIAdd)), Refs(3, 4)},
			words:    []uint32{6<<16 | 52, 1, 2, 128, 3, 4},
			line:     "%2 = OpSpecConstantOp %1 IAdd %3 %4",
		},
		{
			name:     "unknown enumerant",
			op:       "Capability",
			operands: []Operand{EnumValue(EnumCapability, 99999)},
			words:    []uint32{2<<16 | 17, 99999},
			line:     "OpCapability 99999",
		},
		{
			name:     "empty variadic",
			op:       "CompositeConstruct",
			operands: []Operand{Ref(1), Ref(2), List()},
			words:    []uint32{3<<16 | 80, 1, 2},
			line:     "%2 = OpCompositeConstruct %1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := EncodeInstruction(mustLookup(t, tt.op), tt.operands...)
			require.NoError(t, err)
			assert.Equal(t, tt.words, inst.Words)
			assert.Equal(t, tt.line, inst.Line())
		})
	}
}

func TestEncodeInstruction_OptionalDelta(t *testing.T) {
	spec := mustLookup(t, "Store")
	without, err := EncodeInstruction(spec, Ref(1), Ref(2))
	require.NoError(t, err)
	with, err := EncodeInstruction(spec, Ref(1), Ref(2), Opt(Enum(MemoryAccessVolatile)))
	require.NoError(t, err)

	assert.Equal(t, without.WordCount()+1, with.WordCount())
	assert.Equal(t, without.Tokens, with.Tokens[:len(without.Tokens)])
	assert.Equal(t, []string{"Volatile"}, with.Tokens[len(without.Tokens):])
	assert.Equal(t, without.Line()+" Volatile", with.Line())
}

func TestEncodeInstruction_Errors(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		operands []Operand
		kind     ErrorKind
		operand  int
	}{
		{"missing operand", "IAdd", []Operand{Ref(1), Ref(2), Ref(3)}, ErrEncoding, 3},
		{"too many operands", "Return", []Operand{Ref(1)}, ErrEncoding, 0},
		{"wrong kind", "IAdd", []Operand{Ref(1), Ref(2), Lit(3), Ref(4)}, ErrEncoding, 2},
		{"zero operand", "Branch", []Operand{{}}, ErrEncoding, 0},
		{"wide literal", "TypeInt", []Operand{Ref(1), LitU64(32), Lit(0)}, ErrEncoding, 1},
		{"wrong enumeration", "Capability", []Operand{Enum(StorageClassInput)}, ErrEncoding, 0},
		{"missing enumerant parameter", "Decorate", []Operand{Ref(1), Enum(DecorationLocation)}, ErrEncoding, 1},
		{"extra enumerant parameter", "Decorate", []Operand{Ref(1), Enum(DecorationBlock, Lit(1))}, ErrEncoding, 1},
		{"unknown enumerant with parameter", "Decorate", []Operand{Ref(1), EnumValue(EnumDecoration, 9999, Lit(1))}, ErrEncoding, 1},
		{"unknown mask bit with extra parameter", "ImageSampleExplicitLod", []Operand{Ref(1), Ref(2), Ref(3), Ref(4), EnumValue(EnumImageOperands, 0x8000, Ref(5))}, ErrEncoding, 4},
		{"mask with unknown bit missing parameter", "ImageSampleExplicitLod", []Operand{Ref(1), Ref(2), Ref(3), Ref(4), EnumValue(EnumImageOperands, uint32(ImageOperandsLod)|0x8000)}, ErrEncoding, 4},
		{"bad string", "Name", []Operand{Ref(1), Str("a\x00b")}, ErrEncoding, 1},
		{"optional on required slot", "Branch", []Operand{Opt(Ref(1))}, ErrEncoding, 0},
		{"variadic without list", "CompositeConstruct", []Operand{Ref(1), Ref(2), Ref(3)}, ErrEncoding, 2},
		{"pairs without list", "Phi", []Operand{Ref(1), Ref(2), Ref(3)}, ErrEncoding, 2},
		{"present after absent", "CopyMemory", []Operand{Ref(1), Ref(2), None(), Opt(Enum(MemoryAccessVolatile))}, ErrEncoding, 3},
		{"bad pair member", "Phi", []Operand{Ref(1), Ref(2), Pairs(P(Ref(3), Lit(4)))}, ErrEncoding, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := mustLookup(t, tt.op)
			inst, err := EncodeInstruction(spec, tt.operands...)
			require.Error(t, err)
			assert.Nil(t, inst)

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, spec.Mnemonic(), e.Op)
			assert.Equal(t, tt.operand, e.Operand)
		})
	}
}

func TestEncodeInstruction_TooLarge(t *testing.T) {
	spec := mustLookup(t, "CompositeConstruct")

	// 1 opcode word + result type + result leaves room for 65532 constituents
	fits := make([]ID, MaxWordCount-3)
	inst, err := EncodeInstruction(spec, Ref(1), Ref(2), Refs(fits...))
	require.NoError(t, err)
	assert.Equal(t, MaxWordCount, inst.WordCount())

	over := make([]ID, MaxWordCount-2)
	_, err = EncodeInstruction(spec, Ref(1), Ref(2), Refs(over...))
	require.Error(t, err)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrInstructionTooLarge, e.Kind)
	assert.True(t, e.IsInstructionTooLarge())
}

func TestEncodeInstruction_LongString(t *testing.T) {
	spec := mustLookup(t, "Name")
	s := make([]byte, (MaxWordCount-2)*4)
	for i := range s {
		s[i] = 'a'
	}
	// the string alone fits, the target id pushes it over
	_, err := EncodeInstruction(spec, Ref(1), Str(string(s)))
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrInstructionTooLarge, kind)
}
