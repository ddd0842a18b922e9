package spirv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextEncoder_Module(t *testing.T) {
	enc := NewTextEncoder(DefaultOptions())
	require.NoError(t, enc.AddMetadata(MagicNumber, Version1_2.Word(), 0x10101010, 6, 0))

	require.NoError(t, enc.Emit("Capability", Enum(CapabilityShader)))
	require.NoError(t, enc.Emit("ExtInstImport", Ref(1), Str("GLSL.std.450")))
	require.NoError(t, enc.EmitOp(OpMemoryModel, Enum(AddressingModelLogical), Enum(MemoryModelGLSL450)))
	require.NoError(t, enc.Emit("OpName", Ref(3), Str(`say "hi"`)))
	require.NoError(t, enc.Emit("TypeFloat", Ref(2), Lit(32)))
	require.NoError(t, enc.Emit("Constant", Ref(2), Ref(3), LitF32(-0.25)))
	require.NoError(t, enc.Emit("ExtInst", Ref(2), Ref(4), Ref(1), Lit(31), Refs(3)))
	require.NoError(t, enc.Emit("LoopMerge", Ref(5), Ref(6), Enum(LoopControlUnroll|LoopControlDependencyLength, Lit(4))))
	assert.Equal(t, 8, enc.Lines())

	text, err := enc.Text()
	require.NoError(t, err)
	want := strings.Join([]string{
		"; Magic: 0x07230203",
		"; Version: 1.2",
		"; Generator: 0x10101010",
		"; Bound: 6",
		"; Schema: 0",
		"OpCapability Shader",
		`%1 = OpExtInstImport "GLSL.std.450"`,
		"OpMemoryModel Logical GLSL450",
		`OpName %3 "say \"hi\""`,
		"%2 = OpTypeFloat 32",
		"%3 = OpConstant %2 -0.25",
		"%4 = OpExtInst %2 %1 31 %3",
		"OpLoopMerge %5 %6 Unroll|DependencyLength 4",
	}, "\n") + "\n"
	assert.Equal(t, want, text)
}

func TestTextEncoder_OptionalPresence(t *testing.T) {
	render := func(operands ...Operand) string {
		enc := NewTextEncoder(DefaultOptions())
		require.NoError(t, enc.AddMetadata(MagicNumber, Version1_0.Word(), 0, 10, 0))
		require.NoError(t, enc.Emit("Source", operands...))
		text, err := enc.Text()
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(text), "\n")
		return lines[len(lines)-1]
	}

	without := render(Enum(SourceLanguageGLSL), Lit(450))
	with := render(Enum(SourceLanguageGLSL), Lit(450), Opt(Ref(7)))
	assert.Equal(t, "OpSource GLSL 450", without)
	assert.Equal(t, "OpSource GLSL 450 %7", with)
	assert.Equal(t, strings.Fields(without), strings.Fields(with)[:3])
}

func TestTextEncoder_Metadata(t *testing.T) {
	enc := NewTextEncoder(DefaultOptions())
	_, err := enc.Text()
	assert.True(t, isKind(err, ErrInvalidUsage))
	assert.True(t, isKind(enc.SetBound(3), ErrInvalidUsage))

	require.NoError(t, enc.AddMetadata(MagicNumber, Version1_5.Word(), 0, 1, 0))
	assert.True(t, isKind(enc.AddMetadata(MagicNumber, Version1_0.Word(), 0, 1, 0), ErrInvalidUsage))
	require.NoError(t, enc.SetBound(3))

	text, err := enc.Text()
	require.NoError(t, err)
	assert.Contains(t, text, "; Version: 1.5\n")
	assert.Contains(t, text, "; Bound: 3\n")
}

func TestTextEncoder_IdempotentFinalize(t *testing.T) {
	enc := NewTextEncoder(DefaultOptions())
	require.NoError(t, enc.AddMetadata(MagicNumber, Version1_0.Word(), 0, 2, 0))
	require.NoError(t, enc.Emit("TypeBool", Ref(1)))

	first, err := enc.Text()
	require.NoError(t, err)
	second, err := enc.Text()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTextEncoder_FailedEmitAppendsNothing(t *testing.T) {
	enc := NewTextEncoder(DefaultOptions())
	require.NoError(t, enc.Emit("TypeBool", Ref(1)))
	assert.Error(t, enc.Emit("TypeVector", Ref(2), Ref(1)))
	assert.Equal(t, 1, enc.Lines())
}

// Binary and text forms must agree on operand order and presence.
func TestCrossRepresentation(t *testing.T) {
	cases := []struct {
		op       string
		operands []Operand
	}{
		{"Load", []Operand{Ref(1), Ref(2), Ref(3), Opt(Enum(MemoryAccessAligned|MemoryAccessNontemporal, Lit(16)))}},
		{"Load", []Operand{Ref(1), Ref(2), Ref(3)}},
		{"Phi", []Operand{Ref(1), Ref(2), Pairs(P(Ref(3), Ref(4)))}},
		{"Decorate", []Operand{Ref(1), Enum(DecorationLinkageAttributes, Str("f"), Enum(LinkageTypeExport))}},
		{"Constant", []Operand{Ref(1), Ref(2), LitI64(-3)}},
		{"TypeImage", []Operand{Ref(1), Ref(2), Enum(Dim2D), Lit(0), Lit(0), Lit(0), Lit(1), Enum(ImageFormatUnknown)}},
		{"GroupNonUniformIAdd", []Operand{Ref(1), Ref(2), Ref(3), Enum(GroupOperationClusteredReduce), Ref(4), Opt(Ref(5))}},
	}

	for _, c := range cases {
		t.Run(c.op, func(t *testing.T) {
			inst, err := EncodeInstruction(mustLookup(t, c.op), c.operands...)
			require.NoError(t, err)

			bin := NewBinaryEncoder(DefaultOptions())
			txt := NewTextEncoder(DefaultOptions())
			require.NoError(t, bin.Emit(c.op, c.operands...))
			require.NoError(t, txt.Emit(c.op, c.operands...))

			assert.Equal(t, len(inst.Words), bin.Len())
			assert.Equal(t, inst.Line(), txt.lines[0])

			// each token owns a contiguous run of words in the same order
			pos := 1
			for i, w := range inst.Widths {
				require.Positive(t, w, "token %d", i)
				pos += w
			}
			assert.Equal(t, len(inst.Words), pos)
		})
	}
}
