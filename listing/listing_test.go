package listing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/spvgen/spirv"
)

const fragment = `
header: {magic: 0x07230203, version: 1.3, generator: 0x10, bound: 9, schema: 0}
instructions:
  - [Capability, Shader]
  - [MemoryModel, Logical, GLSL450]
  - [EntryPoint, Fragment, "%5", main, "%7"]
  - [ExecutionMode, "%5", OriginUpperLeft]
  - [Decorate, "%7", Location, 0]
  - ["%1", TypeVoid]
  - ["%2", TypeFloat, 32]
  - ["%3", TypeVector, "%2", 4]
  - ["%4", TypePointer, Output, "%3"]
  - ["%6", TypeFunction, "%1"]
  - ["%7", Variable, "%4", Output]
  - ["%5", Function, "%1", None, "%6"]
  - ["%8", Label]
  - Return
  - FunctionEnd
`

func TestParse_Fragment(t *testing.T) {
	l, err := Parse([]byte(fragment))
	require.NoError(t, err)

	assert.Equal(t, uint32(spirv.MagicNumber), l.Header.Magic)
	assert.Equal(t, spirv.Version1_3.Word(), l.Header.Version)
	assert.Equal(t, uint32(0x10), l.Header.Generator)
	assert.Equal(t, uint32(9), l.Header.Bound)
	require.Len(t, l.Instructions, 15)

	enc := spirv.NewTextEncoder(spirv.DefaultOptions())
	require.NoError(t, enc.AddMetadata(l.Header.Magic, l.Header.Version, l.Header.Generator, l.Header.Bound, l.Header.Schema))
	for _, inst := range l.Instructions {
		require.NoError(t, enc.Emit(inst.Name, inst.Operands...), inst.Name)
	}
	text, err := enc.Text()
	require.NoError(t, err)

	assert.Contains(t, text, "OpEntryPoint Fragment %5 \"main\" %7\n")
	assert.Contains(t, text, "OpDecorate %7 Location 0\n")
	assert.Contains(t, text, "%4 = OpTypePointer Output %3\n")
	assert.Contains(t, text, "%5 = OpFunction %1 None %6\n")
	assert.Contains(t, text, "OpFunctionEnd\n")
}

func TestParse_Operands(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"signed constant", `["%3", Constant, "%1", -12]`, "%3 = OpConstant %1 -12"},
		{"promoted to 64 bits", `["%3", Constant, "%1", 8589934592]`, "%3 = OpConstant %1 8589934592"},
		{"f32 by default", `["%3", Constant, "%1", 2.5]`, "%3 = OpConstant %1 2.5"},
		{"explicit f64", `["%3", Constant, "%1", !f64 0.1]`, "%3 = OpConstant %1 0.1"},
		{"explicit i64", `["%3", Constant, "%1", !i64 -1]`, "%3 = OpConstant %1 -1"},
		{"hex literal", `["%2", TypeInt, 0x20, 1]`, "%2 = OpTypeInt 32 1"},
		{"enumerant parameter", `[Decorate, "%4", BuiltIn, Position]`, "OpDecorate %4 BuiltIn Position"},
		{"mask parameters", `["%5", Load, "%1", "%2", Volatile|Aligned, 16]`, "%5 = OpLoad %1 %2 Volatile|Aligned 16"},
		{"absent optional", `["%5", Load, "%1", "%2", ~]`, "%5 = OpLoad %1 %2"},
		{"omitted optional", `["%5", Load, "%1", "%2"]`, "%5 = OpLoad %1 %2"},
		{"flat variadic", `["%5", CompositeConstruct, "%1", "%2", "%3", "%4"]`, "%5 = OpCompositeConstruct %1 %2 %3 %4"},
		{"nested variadic", `["%5", CompositeExtract, "%1", "%2", [0, 1]]`, "%5 = OpCompositeExtract %1 %2 0 1"},
		{"empty variadic", `["%5", FunctionCall, "%1", "%2", []]`, "%5 = OpFunctionCall %1 %2"},
		{"paired tail", `[Switch, "%5", "%6", [1, "%7", -2, "%8"]]`, "OpSwitch %5 %6 1 %7 -2 %8"},
		{"phi pairs", `["%9", Phi, "%1", "%2", "%3", "%4", "%5"]`, "%9 = OpPhi %1 %2 %3 %4 %5"},
		{"spec op by name", `["%4", SpecConstantOp, "%1", IAdd, "%2", "%3"]`, "%4 = OpSpecConstantOp %1 IAdd %2 %3"},
		{"alias mnemonic", `["%4", OpSDotKHR, "%1", "%2", "%3"]`, "%4 = OpSDotKHR %1 %2 %3"},
		{"quoted string", `[Name, "%1", "a \"b\""]`, `OpName %1 "a \"b\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Parse([]byte("instructions:\n  - " + tt.src + "\n"))
			require.NoError(t, err)
			require.Len(t, l.Instructions, 1)

			inst := l.Instructions[0]
			spec, ok := spirv.Lookup(inst.Name)
			require.True(t, ok)
			enc, err := spirv.EncodeInstruction(spec, inst.Operands...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, enc.Line())
		})
	}
}

func TestParse_ComputesBound(t *testing.T) {
	l, err := Parse([]byte(`
instructions:
  - ["%1", TypeVoid]
  - [Switch, "%2", "%3", [1, "%40"]]
`))
	require.NoError(t, err)
	assert.Equal(t, uint32(41), l.Header.Bound)
	assert.Equal(t, spirv.Version1_0.Word(), l.Header.Version)
	assert.Equal(t, uint32(spirv.MagicNumber), l.Header.Magic)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		entry   int
		operand int
	}{
		{"unknown mnemonic", "instructions:\n  - [Frobnicate]\n", 0, 0},
		{"missing result", "instructions:\n  - [Nop]\n  - [TypeVoid]\n", 1, -1},
		{"unexpected result", "instructions:\n  - [\"%1\", Nop]\n", 0, 0},
		{"bad id", "instructions:\n  - [\"%1\", TypeVector, x, 4]\n", 0, 2},
		{"missing operand", "instructions:\n  - [\"%1\", TypeVector, \"%2\"]\n", 0, 3},
		{"unknown enumerant", "instructions:\n  - [Capability, Teleport]\n", 0, 1},
		{"missing enumerant parameter", "instructions:\n  - [Decorate, \"%1\", Location]\n", 0, 2},
		{"extra operand", "instructions:\n  - [Return, \"%1\"]\n", 0, 1},
		{"odd pairs", "instructions:\n  - [Switch, \"%1\", \"%2\", [1, \"%3\", 2]]\n", 0, 3},
		{"bad literal", "instructions:\n  - [\"%1\", TypeInt, wide, 0]\n", 0, 2},
		{"bad version", "header: {version: one}\ninstructions: []\n", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)

			var le *Error
			require.True(t, errors.As(err, &le), "got %T: %v", err, err)
			assert.Equal(t, tt.entry, le.Entry)
			assert.Equal(t, tt.operand, le.Operand)
			assert.NotZero(t, le.Line)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("instructions: [[unterminated"))
	assert.Error(t, err)
}

func TestError_Message(t *testing.T) {
	err := &Error{Entry: 2, Operand: 1, Line: 7, Message: "unknown Capability enumerant \"X\""}
	assert.Equal(t, `listing: entry 2 operand 1 (line 7): unknown Capability enumerant "X"`, err.Error())

	err = &Error{Entry: -1, Operand: -1, Message: "bad version"}
	assert.Equal(t, "listing: header: bad version", err.Error())
}
