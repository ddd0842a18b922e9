package spvgen

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/spvgen/spirv"
)

// Section is one slot of the module's logical layout.
type Section uint8

// Sections in the order they appear in a module.
const (
	SectionCapability Section = iota
	SectionExtension
	SectionExtInstImport
	SectionMemoryModel
	SectionEntryPoint
	SectionExecutionMode
	SectionDebugString  // OpString, OpSource*
	SectionDebugName    // OpName, OpMemberName, OpModuleProcessed
	SectionAnnotation   // OpDecorate and friends
	SectionGlobal       // types, constants, global variables
	SectionFunction     // OpFunction ... OpFunctionEnd
	sectionCount
)

var sectionNames = [sectionCount]string{
	"capability", "extension", "ext-inst-import", "memory-model", "entry-point",
	"execution-mode", "debug-string", "debug-name", "annotation", "global", "function",
}

// String returns the section name.
func (s Section) String() string {
	if s < sectionCount {
		return sectionNames[s]
	}
	return fmt.Sprintf("Section(%d)", uint8(s))
}

type pending struct {
	spec     *spirv.InstructionSpec
	operands []spirv.Operand
}

// Builder collects instructions in any order and replays them into an
// Encoder in logical layout order. Every instruction is validated against
// its signature when it is added.
type Builder struct {
	// Header
	version   spirv.Version
	generator uint32
	schema    uint32

	sections   [sectionCount][]pending
	inFunction bool

	// ID allocation
	nextID spirv.ID
	maxRef spirv.ID
}

// NewBuilder creates a module builder for the given version.
func NewBuilder(version spirv.Version) *Builder {
	return &Builder{
		version:   version,
		generator: spirv.GeneratorID,
		nextID:    1,
	}
}

// SetGenerator records the generator word written to the header.
func (b *Builder) SetGenerator(generator uint32) {
	b.generator = generator
}

// AllocID allocates a new SPIR-V ID.
func (b *Builder) AllocID() spirv.ID {
	id := b.nextID
	b.nextID++
	return id
}

// Bound returns one past the highest id allocated or referenced so far.
func (b *Builder) Bound() uint32 {
	return uint32(max(b.nextID, b.maxRef+1))
}

// Add appends an instruction to the section its opcode belongs to.
// Instructions between OpFunction and OpFunctionEnd go to the function
// section in the order they are added.
func (b *Builder) Add(name string, operands ...spirv.Operand) error {
	spec, ok := spirv.Lookup(name)
	if !ok {
		return &spirv.Error{
			Kind:    spirv.ErrUnknownInstruction,
			Op:      name,
			Operand: -1,
			Offset:  -1,
			Message: "unknown instruction",
		}
	}
	return b.AddSpec(spec, operands...)
}

// AddSpec is Add with the table row already resolved.
func (b *Builder) AddSpec(spec *spirv.InstructionSpec, operands ...spirv.Operand) error {
	if _, err := spirv.EncodeInstruction(spec, operands...); err != nil {
		return err
	}
	ref := spirv.HighestID(operands...)
	if ref == math.MaxUint32 {
		return spirv.NewError(spirv.ErrInvalidUsage, fmt.Sprintf("%s references id %d, which leaves no room for the bound", spec.Mnemonic(), ref))
	}

	section, err := b.classify(spec)
	if err != nil {
		return err
	}
	switch spec.Code {
	case spirv.OpFunction:
		b.inFunction = true
	case spirv.OpFunctionEnd:
		b.inFunction = false
	}

	b.maxRef = max(b.maxRef, ref)
	b.sections[section] = append(b.sections[section], pending{spec: spec, operands: spirv.CloneOperands(operands...)})
	return nil
}

// Define allocates a result id, places it in the instruction's result slot
// and adds the instruction. Operands are given without the result id.
func (b *Builder) Define(name string, operands ...spirv.Operand) (spirv.ID, error) {
	spec, ok := spirv.Lookup(name)
	if !ok || !spec.HasResult() {
		return 0, spirv.NewError(spirv.ErrInvalidUsage, fmt.Sprintf("%q does not define a result id", name))
	}

	slot := 0
	if spec.HasResultType() {
		slot = 1
	}
	if len(operands) < slot {
		return 0, spirv.NewError(spirv.ErrInvalidUsage, fmt.Sprintf("%s needs a result type", spec.Mnemonic()))
	}

	id := b.AllocID()
	ops := make([]spirv.Operand, 0, len(operands)+1)
	ops = append(ops, operands[:slot]...)
	ops = append(ops, spirv.Ref(id))
	ops = append(ops, operands[slot:]...)
	if err := b.AddSpec(spec, ops...); err != nil {
		return 0, err
	}
	return id, nil
}

// Len returns the number of instructions collected in a section.
func (b *Builder) Len(s Section) int {
	return len(b.sections[s])
}

// Build writes the header, with the bound computed from the ids in use, and
// then every section in order.
func (b *Builder) Build(enc spirv.Encoder) error {
	if b.inFunction {
		return spirv.NewError(spirv.ErrInvalidUsage, "function is missing OpFunctionEnd")
	}
	if err := enc.AddMetadata(spirv.MagicNumber, b.version.Word(), b.generator, b.Bound(), b.schema); err != nil {
		return err
	}
	for _, section := range b.sections {
		for _, p := range section {
			if err := enc.EmitSpec(p.spec, p.operands...); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Builder) classify(spec *spirv.InstructionSpec) (Section, error) {
	if b.inFunction || spec.Code == spirv.OpFunction {
		if spec.Code == spirv.OpFunction && b.inFunction {
			return 0, spirv.NewError(spirv.ErrInvalidUsage, "OpFunction inside a function")
		}
		return SectionFunction, nil
	}

	switch spec.Code {
	case spirv.OpCapability:
		return SectionCapability, nil
	case spirv.OpExtension:
		return SectionExtension, nil
	case spirv.OpExtInstImport:
		return SectionExtInstImport, nil
	case spirv.OpMemoryModel:
		if len(b.sections[SectionMemoryModel]) > 0 {
			return 0, spirv.NewError(spirv.ErrInvalidUsage, "memory model already set")
		}
		return SectionMemoryModel, nil
	case spirv.OpEntryPoint:
		return SectionEntryPoint, nil
	case spirv.OpExecutionMode, spirv.OpExecutionModeId:
		return SectionExecutionMode, nil
	case spirv.OpString, spirv.OpSource, spirv.OpSourceContinued, spirv.OpSourceExtension:
		return SectionDebugString, nil
	case spirv.OpName, spirv.OpMemberName, spirv.OpModuleProcessed:
		return SectionDebugName, nil
	case spirv.OpDecorate, spirv.OpMemberDecorate, spirv.OpDecorationGroup, spirv.OpGroupDecorate,
		spirv.OpGroupMemberDecorate, spirv.OpDecorateId, spirv.OpDecorateString, spirv.OpMemberDecorateString:
		return SectionAnnotation, nil
	case spirv.OpFunctionEnd:
		return 0, spirv.NewError(spirv.ErrInvalidUsage, "OpFunctionEnd outside a function")
	case spirv.OpVariable, spirv.OpUndef, spirv.OpLine, spirv.OpNoLine, spirv.OpExtInst:
		return SectionGlobal, nil
	}

	if strings.HasPrefix(spec.Name, "Type") || strings.HasPrefix(spec.Name, "Constant") ||
		strings.HasPrefix(spec.Name, "SpecConstant") {
		return SectionGlobal, nil
	}
	return 0, spirv.NewError(spirv.ErrInvalidUsage, spec.Mnemonic()+" must appear inside a function")
}
