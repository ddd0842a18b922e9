package spirv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	spec, ok := Lookup("IAdd")
	require.True(t, ok)
	assert.Equal(t, OpIAdd, spec.Code)
	assert.Equal(t, "OpIAdd", spec.Mnemonic())
	assert.True(t, spec.HasResult())
	assert.True(t, spec.HasResultType())

	prefixed, ok := Lookup("OpIAdd")
	require.True(t, ok)
	assert.Same(t, spec, prefixed)

	_, ok = Lookup("OpFrobnicate")
	assert.False(t, ok)
}

func TestLookup_ResultShapes(t *testing.T) {
	tests := []struct {
		name          string
		hasResult     bool
		hasResultType bool
	}{
		{"Capability", false, false},
		{"TypeInt", true, false},
		{"Label", true, false},
		{"Load", true, true},
		{"Store", false, false},
		{"FunctionEnd", false, false},
		{"String", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.hasResult, spec.HasResult())
			assert.Equal(t, tt.hasResultType, spec.HasResultType())
		})
	}
}

func TestSpecString(t *testing.T) {
	spec, _ := Lookup("Phi")
	assert.Equal(t, "OpPhi IdResultType IdResult PairIdRefIdRef*", spec.String())

	spec, _ = Lookup("Load")
	assert.Equal(t, "OpLoad IdResultType IdResult IdRef MemoryAccess?", spec.String())
}

func TestOpcodeNumbers(t *testing.T) {
	// spot checks against the published grammar
	tests := map[string]OpCode{
		"Nop":                    0,
		"Capability":             17,
		"TypeFloat":              22,
		"Constant":               43,
		"Function":               54,
		"FunctionEnd":            56,
		"Variable":               59,
		"Load":                   61,
		"Decorate":               71,
		"CompositeExtract":       81,
		"ImageSampleImplicitLod": 87,
		"IAdd":                   128,
		"Any":                    154,
		"Select":                 169,
		"IEqual":                 170,
		"FUnordGreaterThanEqual": 191,
		"ShiftRightLogical":      194,
		"BitCount":               205,
		"DPdx":                   207,
		"ControlBarrier":         224,
		"AtomicXor":              242,
		"Phi":                    245,
		"Label":                  248,
		"Return":                 253,
		"GroupNonUniformElect":   333,
		"PtrDiff":                403,
		"TerminateInvocation":    4416,
		"SDot":                   4450,
		"DecorateString":         5632,
		"AtomicFAddEXT":          6035,
	}

	for name, code := range tests {
		spec, ok := Lookup(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, code, spec.Code, name)
		}
	}
}

func TestAliases(t *testing.T) {
	pairs := [][2]string{
		{"SDot", "SDotKHR"},
		{"UDot", "UDotKHR"},
		{"SUDot", "SUDotKHR"},
		{"SDotAccSat", "SDotAccSatKHR"},
		{"UDotAccSat", "UDotAccSatKHR"},
		{"SUDotAccSat", "SUDotAccSatKHR"},
		{"DecorateString", "DecorateStringGOOGLE"},
		{"MemberDecorateString", "MemberDecorateStringGOOGLE"},
		{"ReportIntersectionKHR", "ReportIntersectionNV"},
		{"TypeAccelerationStructureKHR", "TypeAccelerationStructureNV"},
		{"DemoteToHelperInvocation", "DemoteToHelperInvocationEXT"},
	}

	for _, p := range pairs {
		a, ok := Lookup(p[0])
		require.True(t, ok, p[0])
		b, ok := Lookup(p[1])
		require.True(t, ok, p[1])
		assert.Equal(t, a.Code, b.Code)
		assert.NotSame(t, a, b)

		all := Aliases(a.Code)
		require.Len(t, all, 2)
		assert.Same(t, a, all[0])
		assert.Same(t, b, all[1])

		canonical, ok := LookupOpCode(a.Code)
		require.True(t, ok)
		assert.Same(t, a, canonical)
	}
}

func TestSpecs_DeclarationOrder(t *testing.T) {
	specs := Specs()
	require.NotEmpty(t, specs)
	assert.Equal(t, "Nop", specs[0].Name)
	assert.Greater(t, len(specs), 330)

	names := make(map[string]bool, len(specs))
	for _, s := range specs {
		assert.False(t, names[s.Name], "duplicate %s", s.Name)
		names[s.Name] = true
		assert.NoError(t, validateSpec(s))
	}
}

func TestValidateSpec_Rejects(t *testing.T) {
	tests := []struct {
		name string
		spec InstructionSpec
	}{
		{"result type without result", op(1, "A", pRT, pID)},
		{"result after operand", op(1, "B", pID, pRes)},
		{"required after optional", op(1, "C", opt(pID), pID)},
		{"variadic not last", op(1, "D", pIDs, opt(pID))},
		{"paired not variadic", op(1, "E", Param{Kind: KindPair, Pair: [2]OperandKind{KindIDRef, KindIDRef}})},
		{"optional result", op(1, "F", opt(pRes))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, validateSpec(&tt.spec))
		})
	}
}

// synthesize builds a value for slot p and reports how many leaves it has.
func synthesize(p Param, next *ID) (Operand, int) {
	switch p.Kind {
	case KindIDResultType, KindIDResult, KindIDRef:
		*next++
		return Ref(*next), 1
	case KindLiteralString:
		return Str("x"), 1
	case KindEnumerant:
		info := enumTables[p.Enum].values[0]
		params, _ := enumTables[p.Enum].paramsFor(info.value)
		leaves := 1
		values := make([]Operand, len(params))
		for i, pp := range params {
			var n int
			values[i], n = synthesize(pp, next)
			leaves += n
		}
		return EnumValue(p.Enum, info.value, values...), leaves
	default:
		return Lit(1), 1
	}
}

func TestEveryRow_MinimalOperands(t *testing.T) {
	for _, spec := range Specs() {
		var next ID
		var operands []Operand
		leaves := 0
		for _, p := range spec.Params {
			if p.Quant != One {
				break
			}
			o, n := synthesize(p, &next)
			operands = append(operands, o)
			leaves += n
		}

		inst, err := EncodeInstruction(spec, operands...)
		require.NoError(t, err, spec.Name)

		sum := 0
		for _, w := range inst.Widths {
			sum += w
		}
		assert.Equal(t, len(inst.Words), inst.WordCount(), spec.Name)
		assert.Equal(t, 1+sum, inst.WordCount(), spec.Name)
		assert.Equal(t, uint32(spec.Code), inst.Words[0]&0xFFFF, spec.Name)
		assert.Len(t, inst.Tokens, leaves, spec.Name)
		assert.Equal(t, spec.HasResult(), inst.Result >= 0, spec.Name)
	}
}

func TestEveryRow_TrailingOperands(t *testing.T) {
	for _, spec := range Specs() {
		var next ID
		var operands []Operand
		for _, p := range spec.Params {
			switch {
			case p.Quant == One:
				o, _ := synthesize(p, &next)
				operands = append(operands, o)
			case p.Kind == KindPair:
				first, _ := synthesize(Param{Kind: p.Pair[0]}, &next)
				second, _ := synthesize(Param{Kind: p.Pair[1]}, &next)
				operands = append(operands, Pairs(P(first, second)))
			case p.Quant == Variadic:
				elem := p
				elem.Quant = One
				o, _ := synthesize(elem, &next)
				operands = append(operands, List(o))
			default:
				o, _ := synthesize(p, &next)
				operands = append(operands, Opt(o))
			}
		}

		inst, err := EncodeInstruction(spec, operands...)
		require.NoError(t, err, spec.Name)
		assert.Equal(t, len(inst.Words), inst.WordCount(), spec.Name)
		assert.Len(t, inst.Widths, len(inst.Tokens), spec.Name)
	}
}
