package spirv

// Capability represents a SPIR-V capability.
type Capability uint32

// EnumKind implements Enumerant.
func (Capability) EnumKind() EnumKind { return EnumCapability }

// Common capabilities
const (
	CapabilityMatrix                         Capability = 0
	CapabilityShader                         Capability = 1
	CapabilityGeometry                       Capability = 2
	CapabilityTessellation                   Capability = 3
	CapabilityAddresses                      Capability = 4
	CapabilityLinkage                        Capability = 5
	CapabilityKernel                         Capability = 6
	CapabilityFloat16                        Capability = 9
	CapabilityFloat64                        Capability = 10
	CapabilityInt64                          Capability = 11
	CapabilityInt64Atomics                   Capability = 12
	CapabilityInt16                          Capability = 22
	CapabilityInt8                           Capability = 39
	CapabilityImageQuery                     Capability = 50
	CapabilityGroupNonUniform                Capability = 61
	CapabilityVariablePointers               Capability = 4442
	CapabilityVulkanMemoryModel              Capability = 5345
	CapabilityPhysicalStorageBufferAddresses Capability = 5347
	CapabilityDotProduct                     Capability = 6019
)

// AddressingModel represents a SPIR-V addressing model.
type AddressingModel uint32

// EnumKind implements Enumerant.
func (AddressingModel) EnumKind() EnumKind { return EnumAddressingModel }

const (
	AddressingModelLogical                 AddressingModel = 0
	AddressingModelPhysical32              AddressingModel = 1
	AddressingModelPhysical64              AddressingModel = 2
	AddressingModelPhysicalStorageBuffer64 AddressingModel = 5348
)

// MemoryModel represents a SPIR-V memory model.
type MemoryModel uint32

// EnumKind implements Enumerant.
func (MemoryModel) EnumKind() EnumKind { return EnumMemoryModel }

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

// ExecutionModel represents a shader stage.
type ExecutionModel uint32

// EnumKind implements Enumerant.
func (ExecutionModel) EnumKind() EnumKind { return EnumExecutionModel }

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

// ExecutionMode represents an entry point execution mode.
type ExecutionMode uint32

// EnumKind implements Enumerant.
func (ExecutionMode) EnumKind() EnumKind { return EnumExecutionMode }

const (
	ExecutionModeOriginUpperLeft    ExecutionMode = 7
	ExecutionModeOriginLowerLeft    ExecutionMode = 8
	ExecutionModeEarlyFragmentTests ExecutionMode = 9
	ExecutionModeDepthReplacing     ExecutionMode = 12
	ExecutionModeLocalSize          ExecutionMode = 17
	ExecutionModeContractionOff     ExecutionMode = 31
	ExecutionModeLocalSizeID        ExecutionMode = 38
)

// StorageClass represents a pointer storage class.
type StorageClass uint32

// EnumKind implements Enumerant.
func (StorageClass) EnumKind() EnumKind { return EnumStorageClass }

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassStorageBuffer   StorageClass = 12
)

// Decoration represents a SPIR-V decoration.
type Decoration uint32

// EnumKind implements Enumerant.
func (Decoration) EnumKind() EnumKind { return EnumDecoration }

// Common decorations
const (
	DecorationRelaxedPrecision  Decoration = 0
	DecorationSpecID            Decoration = 1
	DecorationBlock             Decoration = 2
	DecorationRowMajor          Decoration = 4
	DecorationColMajor          Decoration = 5
	DecorationArrayStride       Decoration = 6
	DecorationMatrixStride      Decoration = 7
	DecorationBuiltIn           Decoration = 11
	DecorationFlat              Decoration = 14
	DecorationNonWritable       Decoration = 24
	DecorationNonReadable       Decoration = 25
	DecorationLocation          Decoration = 30
	DecorationBinding           Decoration = 33
	DecorationDescriptorSet     Decoration = 34
	DecorationOffset            Decoration = 35
	DecorationLinkageAttributes Decoration = 41
	DecorationAlignment         Decoration = 44
	DecorationUserSemantic      Decoration = 5635
)

// BuiltIn represents a built-in variable.
type BuiltIn uint32

// EnumKind implements Enumerant.
func (BuiltIn) EnumKind() EnumKind { return EnumBuiltIn }

const (
	BuiltInPosition             BuiltIn = 0
	BuiltInPointSize            BuiltIn = 1
	BuiltInVertexID             BuiltIn = 5
	BuiltInInstanceID           BuiltIn = 6
	BuiltInFragCoord            BuiltIn = 15
	BuiltInFrontFacing          BuiltIn = 17
	BuiltInFragDepth            BuiltIn = 22
	BuiltInNumWorkgroups        BuiltIn = 24
	BuiltInWorkgroupID          BuiltIn = 26
	BuiltInLocalInvocationID    BuiltIn = 27
	BuiltInGlobalInvocationID   BuiltIn = 28
	BuiltInLocalInvocationIndex BuiltIn = 29
	BuiltInVertexIndex          BuiltIn = 42
	BuiltInInstanceIndex        BuiltIn = 43
)

// Dim represents an image dimensionality.
type Dim uint32

// EnumKind implements Enumerant.
func (Dim) EnumKind() EnumKind { return EnumDim }

const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

// ImageFormat represents a storage image texel format.
type ImageFormat uint32

// EnumKind implements Enumerant.
func (ImageFormat) EnumKind() EnumKind { return EnumImageFormat }

const (
	ImageFormatUnknown ImageFormat = 0
	ImageFormatRgba32f ImageFormat = 1
	ImageFormatRgba8   ImageFormat = 4
	ImageFormatR32f    ImageFormat = 3
	ImageFormatR32ui   ImageFormat = 33
)

// AccessQualifier represents image and pipe access.
type AccessQualifier uint32

// EnumKind implements Enumerant.
func (AccessQualifier) EnumKind() EnumKind { return EnumAccessQualifier }

const (
	AccessQualifierReadOnly  AccessQualifier = 0
	AccessQualifierWriteOnly AccessQualifier = 1
	AccessQualifierReadWrite AccessQualifier = 2
)

// SourceLanguage represents the language named by OpSource.
type SourceLanguage uint32

// EnumKind implements Enumerant.
func (SourceLanguage) EnumKind() EnumKind { return EnumSourceLanguage }

const (
	SourceLanguageUnknown SourceLanguage = 0
	SourceLanguageGLSL    SourceLanguage = 2
	SourceLanguageOpenCLC SourceLanguage = 3
	SourceLanguageHLSL    SourceLanguage = 5
	SourceLanguageWGSL    SourceLanguage = 10
)

// GroupOperation represents a group reduction or scan.
type GroupOperation uint32

// EnumKind implements Enumerant.
func (GroupOperation) EnumKind() EnumKind { return EnumGroupOperation }

const (
	GroupOperationReduce          GroupOperation = 0
	GroupOperationInclusiveScan   GroupOperation = 1
	GroupOperationExclusiveScan   GroupOperation = 2
	GroupOperationClusteredReduce GroupOperation = 3
)

// LinkageType represents import/export linkage.
type LinkageType uint32

// EnumKind implements Enumerant.
func (LinkageType) EnumKind() EnumKind { return EnumLinkageType }

const (
	LinkageTypeExport LinkageType = 0
	LinkageTypeImport LinkageType = 1
)

// FPRoundingMode represents a floating-point rounding mode.
type FPRoundingMode uint32

// EnumKind implements Enumerant.
func (FPRoundingMode) EnumKind() EnumKind { return EnumFPRoundingMode }

const (
	FPRoundingModeRTE FPRoundingMode = 0
	FPRoundingModeRTZ FPRoundingMode = 1
	FPRoundingModeRTP FPRoundingMode = 2
	FPRoundingModeRTN FPRoundingMode = 3
)

// FunctionControl is the OpFunction control mask.
type FunctionControl uint32

// EnumKind implements Enumerant.
func (FunctionControl) EnumKind() EnumKind { return EnumFunctionControl }

const (
	FunctionControlNone       FunctionControl = 0x0
	FunctionControlInline     FunctionControl = 0x1
	FunctionControlDontInline FunctionControl = 0x2
	FunctionControlPure       FunctionControl = 0x4
	FunctionControlConst      FunctionControl = 0x8
)

// SelectionControl is the OpSelectionMerge control mask.
type SelectionControl uint32

// EnumKind implements Enumerant.
func (SelectionControl) EnumKind() EnumKind { return EnumSelectionControl }

const (
	SelectionControlNone        SelectionControl = 0x0
	SelectionControlFlatten     SelectionControl = 0x1
	SelectionControlDontFlatten SelectionControl = 0x2
)

// LoopControl is the OpLoopMerge control mask.
type LoopControl uint32

// EnumKind implements Enumerant.
func (LoopControl) EnumKind() EnumKind { return EnumLoopControl }

const (
	LoopControlNone             LoopControl = 0x0
	LoopControlUnroll           LoopControl = 0x1
	LoopControlDontUnroll       LoopControl = 0x2
	LoopControlDependencyLength LoopControl = 0x8
	LoopControlMaxIterations    LoopControl = 0x20
)

// MemoryAccess is the memory operand mask of loads, stores and copies.
type MemoryAccess uint32

// EnumKind implements Enumerant.
func (MemoryAccess) EnumKind() EnumKind { return EnumMemoryAccess }

const (
	MemoryAccessNone              MemoryAccess = 0x0
	MemoryAccessVolatile          MemoryAccess = 0x1
	MemoryAccessAligned           MemoryAccess = 0x2
	MemoryAccessNontemporal       MemoryAccess = 0x4
	MemoryAccessNonPrivatePointer MemoryAccess = 0x20
)

// ImageOperands is the optional image operand mask of sampling instructions.
type ImageOperands uint32

// EnumKind implements Enumerant.
func (ImageOperands) EnumKind() EnumKind { return EnumImageOperands }

const (
	ImageOperandsNone        ImageOperands = 0x0
	ImageOperandsBias        ImageOperands = 0x1
	ImageOperandsLod         ImageOperands = 0x2
	ImageOperandsGrad        ImageOperands = 0x4
	ImageOperandsConstOffset ImageOperands = 0x8
	ImageOperandsOffset      ImageOperands = 0x10
	ImageOperandsSample      ImageOperands = 0x40
	ImageOperandsMinLod      ImageOperands = 0x80
)

// FPFastMathMode is the fast-math flag mask.
type FPFastMathMode uint32

// EnumKind implements Enumerant.
func (FPFastMathMode) EnumKind() EnumKind { return EnumFPFastMathMode }

const (
	FPFastMathModeNone       FPFastMathMode = 0x0
	FPFastMathModeNotNaN     FPFastMathMode = 0x1
	FPFastMathModeNotInf     FPFastMathMode = 0x2
	FPFastMathModeNSZ        FPFastMathMode = 0x4
	FPFastMathModeAllowRecip FPFastMathMode = 0x8
	FPFastMathModeFast       FPFastMathMode = 0x10
)
