package spirv

import (
	"fmt"
	"strconv"
	"strings"
)

// EnumKind names an operand enumeration of the SPIR-V grammar.
type EnumKind uint8

const (
	EnumSourceLanguage EnumKind = iota + 1
	EnumExecutionModel
	EnumAddressingModel
	EnumMemoryModel
	EnumExecutionMode
	EnumStorageClass
	EnumDim
	EnumSamplerAddressingMode
	EnumSamplerFilterMode
	EnumImageFormat
	EnumAccessQualifier
	EnumFunctionParameterAttribute
	EnumDecoration
	EnumBuiltIn
	EnumGroupOperation
	EnumCapability
	EnumFPRoundingMode
	EnumLinkageType
	EnumPackedVectorFormat
	EnumImageOperands
	EnumMemoryAccess
	EnumLoopControl
	EnumSelectionControl
	EnumFunctionControl
	EnumFPFastMathMode

	enumKindCount
)

// String returns the grammar name of the enumeration.
func (k EnumKind) String() string {
	if t := enumTables[k]; t != nil {
		return t.name
	}
	return fmt.Sprintf("EnumKind(%d)", uint8(k))
}

// IsBitmask reports whether values of the kind combine as flags.
func (k EnumKind) IsBitmask() bool {
	t := enumTables[k]
	return t != nil && t.bitmask
}

type enumerantInfo struct {
	name   string
	value  uint32
	params []Param
}

type enumTable struct {
	name    string
	bitmask bool
	values  []enumerantInfo
	byValue map[uint32]*enumerantInfo
	byName  map[string]*enumerantInfo
}

func e(value uint32, name string, params ...Param) enumerantInfo {
	return enumerantInfo{name: name, value: value, params: params}
}

var (
	pLit = Param{Kind: KindLiteralInteger}
	pID  = Param{Kind: KindIDRef}
	pStr = Param{Kind: KindLiteralString}
)

func pEnum(k EnumKind) Param {
	return Param{Kind: KindEnumerant, Enum: k}
}

// lookup returns the enumerant with the given value, or nil.
func (t *enumTable) lookup(v uint32) *enumerantInfo {
	return t.byValue[v]
}

// paramsFor returns the parameter slots that follow value v, in stream
// order. For bitmasks the parameters of every set bit follow in ascending
// bit order. ok is false when v (or one of its bits) is unknown.
func (t *enumTable) paramsFor(v uint32) ([]Param, bool) {
	if !t.bitmask {
		info := t.byValue[v]
		if info == nil {
			return nil, false
		}
		return info.params, true
	}
	var params []Param
	known := true
	for bit := uint32(1); bit != 0 && bit <= v; bit <<= 1 {
		if v&bit == 0 {
			continue
		}
		info := t.byValue[bit]
		if info == nil {
			known = false
			continue
		}
		params = append(params, info.params...)
	}
	return params, known
}

// format renders v as the disassembler spells it.
func (t *enumTable) format(v uint32) string {
	if !t.bitmask {
		if info := t.byValue[v]; info != nil {
			return info.name
		}
		return strconv.FormatUint(uint64(v), 10)
	}
	if v == 0 {
		if info := t.byValue[0]; info != nil {
			return info.name
		}
		return "0"
	}
	var parts []string
	var unknown uint32
	for bit := uint32(1); bit != 0 && bit <= v; bit <<= 1 {
		if v&bit == 0 {
			continue
		}
		if info := t.byValue[bit]; info != nil {
			parts = append(parts, info.name)
		} else {
			unknown |= bit
		}
	}
	if unknown != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(unknown), 16))
	}
	return strings.Join(parts, "|")
}

// FormatEnumerant renders an enumerant value of kind k.
func FormatEnumerant(k EnumKind, v uint32) string {
	t := enumTables[k]
	if t == nil {
		return strconv.FormatUint(uint64(v), 10)
	}
	return t.format(v)
}

// ParseEnumerant resolves a symbolic enumerant name. Bitmask kinds accept
// "A|B" combinations; every kind accepts a decimal or 0x-prefixed number.
func ParseEnumerant(k EnumKind, s string) (uint32, error) {
	t := enumTables[k]
	if t == nil {
		return 0, fmt.Errorf("unknown enumeration %s", k)
	}
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return uint32(v), nil
	}
	if !t.bitmask {
		info := t.byName[s]
		if info == nil {
			return 0, fmt.Errorf("unknown %s enumerant %q", t.name, s)
		}
		return info.value, nil
	}
	var mask uint32
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if v, err := strconv.ParseUint(part, 0, 32); err == nil {
			mask |= uint32(v)
			continue
		}
		info := t.byName[part]
		if info == nil {
			return 0, fmt.Errorf("unknown %s flag %q", t.name, part)
		}
		mask |= info.value
	}
	return mask, nil
}

// EnumerantParams returns the parameter slots that follow value v of kind k.
// For a bitmask the slots of the known bits are returned even when v also
// sets unknown bits, which are taken to carry no parameters; ok is false
// whenever some part of v is missing from the table.
func EnumerantParams(k EnumKind, v uint32) ([]Param, bool) {
	t := enumTables[k]
	if t == nil {
		return nil, false
	}
	return t.paramsFor(v)
}

var enumTables [enumKindCount]*enumTable

func register(k EnumKind, name string, bitmask bool, values ...enumerantInfo) {
	t := &enumTable{
		name:    name,
		bitmask: bitmask,
		values:  values,
		byValue: make(map[uint32]*enumerantInfo, len(values)),
		byName:  make(map[string]*enumerantInfo, len(values)),
	}
	for i := range values {
		info := &t.values[i]
		if _, dup := t.byValue[info.value]; !dup {
			t.byValue[info.value] = info
		}
		t.byName[info.name] = info
	}
	enumTables[k] = t
}

func init() {
	register(EnumSourceLanguage, "SourceLanguage", false,
		e(0, "Unknown"), e(1, "ESSL"), e(2, "GLSL"), e(3, "OpenCL_C"),
		e(4, "OpenCL_CPP"), e(5, "HLSL"), e(6, "CPP_for_OpenCL"), e(7, "SYCL"),
		e(8, "HERO_C"), e(9, "NZSL"), e(10, "WGSL"), e(11, "Slang"), e(12, "Zig"),
	)

	register(EnumExecutionModel, "ExecutionModel", false,
		e(0, "Vertex"), e(1, "TessellationControl"), e(2, "TessellationEvaluation"),
		e(3, "Geometry"), e(4, "Fragment"), e(5, "GLCompute"), e(6, "Kernel"),
		e(5267, "TaskNV"), e(5268, "MeshNV"),
		e(5313, "RayGenerationKHR"), e(5314, "IntersectionKHR"), e(5315, "AnyHitKHR"),
		e(5316, "ClosestHitKHR"), e(5317, "MissKHR"), e(5318, "CallableKHR"),
		e(5364, "TaskEXT"), e(5365, "MeshEXT"),
	)

	register(EnumAddressingModel, "AddressingModel", false,
		e(0, "Logical"), e(1, "Physical32"), e(2, "Physical64"),
		e(5348, "PhysicalStorageBuffer64"),
	)

	register(EnumMemoryModel, "MemoryModel", false,
		e(0, "Simple"), e(1, "GLSL450"), e(2, "OpenCL"), e(3, "Vulkan"),
	)

	register(EnumExecutionMode, "ExecutionMode", false,
		e(0, "Invocations", pLit),
		e(1, "SpacingEqual"), e(2, "SpacingFractionalEven"), e(3, "SpacingFractionalOdd"),
		e(4, "VertexOrderCw"), e(5, "VertexOrderCcw"), e(6, "PixelCenterInteger"),
		e(7, "OriginUpperLeft"), e(8, "OriginLowerLeft"), e(9, "EarlyFragmentTests"),
		e(10, "PointMode"), e(11, "Xfb"), e(12, "DepthReplacing"),
		e(14, "DepthGreater"), e(15, "DepthLess"), e(16, "DepthUnchanged"),
		e(17, "LocalSize", pLit, pLit, pLit),
		e(18, "LocalSizeHint", pLit, pLit, pLit),
		e(19, "InputPoints"), e(20, "InputLines"), e(21, "InputLinesAdjacency"),
		e(22, "Triangles"), e(23, "InputTrianglesAdjacency"), e(24, "Quads"),
		e(25, "Isolines"),
		e(26, "OutputVertices", pLit),
		e(27, "OutputPoints"), e(28, "OutputLineStrip"), e(29, "OutputTriangleStrip"),
		e(30, "VecTypeHint", pLit),
		e(31, "ContractionOff"), e(33, "Initializer"), e(34, "Finalizer"),
		e(35, "SubgroupSize", pLit),
		e(36, "SubgroupsPerWorkgroup", pLit),
		e(37, "SubgroupsPerWorkgroupId", pID),
		e(38, "LocalSizeId", pID, pID, pID),
		e(39, "LocalSizeHintId", pID, pID, pID),
		e(4421, "SubgroupUniformControlFlowKHR"),
		e(4446, "PostDepthCoverage"),
		e(4459, "DenormPreserve", pLit),
		e(4460, "DenormFlushToZero", pLit),
		e(4461, "SignedZeroInfNanPreserve", pLit),
		e(4462, "RoundingModeRTE", pLit),
		e(4463, "RoundingModeRTZ", pLit),
		e(5017, "EarlyAndLateFragmentTestsAMD"),
		e(5027, "StencilRefReplacingEXT"),
		e(5269, "OutputLinesEXT"),
		e(5270, "OutputPrimitivesEXT", pLit),
		e(5289, "DerivativeGroupQuadsNV"), e(5290, "DerivativeGroupLinearNV"),
		e(5298, "OutputTrianglesEXT"),
		e(5366, "PixelInterlockOrderedEXT"), e(5367, "PixelInterlockUnorderedEXT"),
		e(5368, "SampleInterlockOrderedEXT"), e(5369, "SampleInterlockUnorderedEXT"),
		e(5370, "ShadingRateInterlockOrderedEXT"), e(5371, "ShadingRateInterlockUnorderedEXT"),
	)

	register(EnumStorageClass, "StorageClass", false,
		e(0, "UniformConstant"), e(1, "Input"), e(2, "Uniform"), e(3, "Output"),
		e(4, "Workgroup"), e(5, "CrossWorkgroup"), e(6, "Private"), e(7, "Function"),
		e(8, "Generic"), e(9, "PushConstant"), e(10, "AtomicCounter"), e(11, "Image"),
		e(12, "StorageBuffer"),
		e(5328, "CallableDataKHR"), e(5329, "IncomingCallableDataKHR"),
		e(5338, "RayPayloadKHR"), e(5339, "HitAttributeKHR"),
		e(5342, "IncomingRayPayloadKHR"), e(5343, "ShaderRecordBufferKHR"),
		e(5349, "PhysicalStorageBuffer"), e(5402, "TaskPayloadWorkgroupEXT"),
	)

	register(EnumDim, "Dim", false,
		e(0, "1D"), e(1, "2D"), e(2, "3D"), e(3, "Cube"), e(4, "Rect"),
		e(5, "Buffer"), e(6, "SubpassData"),
	)

	register(EnumSamplerAddressingMode, "SamplerAddressingMode", false,
		e(0, "None"), e(1, "ClampToEdge"), e(2, "Clamp"), e(3, "Repeat"), e(4, "RepeatMirrored"),
	)

	register(EnumSamplerFilterMode, "SamplerFilterMode", false,
		e(0, "Nearest"), e(1, "Linear"),
	)

	register(EnumImageFormat, "ImageFormat", false,
		e(0, "Unknown"), e(1, "Rgba32f"), e(2, "Rgba16f"), e(3, "R32f"), e(4, "Rgba8"),
		e(5, "Rgba8Snorm"), e(6, "Rg32f"), e(7, "Rg16f"), e(8, "R11fG11fB10f"),
		e(9, "R16f"), e(10, "Rgba16"), e(11, "Rgb10A2"), e(12, "Rg16"), e(13, "Rg8"),
		e(14, "R16"), e(15, "R8"), e(16, "Rgba16Snorm"), e(17, "Rg16Snorm"),
		e(18, "Rg8Snorm"), e(19, "R16Snorm"), e(20, "R8Snorm"), e(21, "Rgba32i"),
		e(22, "Rgba16i"), e(23, "Rgba8i"), e(24, "R32i"), e(25, "Rg32i"), e(26, "Rg16i"),
		e(27, "Rg8i"), e(28, "R16i"), e(29, "R8i"), e(30, "Rgba32ui"), e(31, "Rgba16ui"),
		e(32, "Rgba8ui"), e(33, "R32ui"), e(34, "Rgb10a2ui"), e(35, "Rg32ui"),
		e(36, "Rg16ui"), e(37, "Rg8ui"), e(38, "R16ui"), e(39, "R8ui"),
		e(40, "R64ui"), e(41, "R64i"),
	)

	register(EnumAccessQualifier, "AccessQualifier", false,
		e(0, "ReadOnly"), e(1, "WriteOnly"), e(2, "ReadWrite"),
	)

	register(EnumFunctionParameterAttribute, "FunctionParameterAttribute", false,
		e(0, "Zext"), e(1, "Sext"), e(2, "ByVal"), e(3, "Sret"), e(4, "NoAlias"),
		e(5, "NoCapture"), e(6, "NoWrite"), e(7, "NoReadWrite"),
	)

	register(EnumDecoration, "Decoration", false,
		e(0, "RelaxedPrecision"),
		e(1, "SpecId", pLit),
		e(2, "Block"), e(3, "BufferBlock"), e(4, "RowMajor"), e(5, "ColMajor"),
		e(6, "ArrayStride", pLit),
		e(7, "MatrixStride", pLit),
		e(8, "GLSLShared"), e(9, "GLSLPacked"), e(10, "CPacked"),
		e(11, "BuiltIn", pEnum(EnumBuiltIn)),
		e(13, "NoPerspective"), e(14, "Flat"), e(15, "Patch"), e(16, "Centroid"),
		e(17, "Sample"), e(18, "Invariant"), e(19, "Restrict"), e(20, "Aliased"),
		e(21, "Volatile"), e(22, "Constant"), e(23, "Coherent"), e(24, "NonWritable"),
		e(25, "NonReadable"), e(26, "Uniform"),
		e(27, "UniformId", pID),
		e(28, "SaturatedConversion"),
		e(29, "Stream", pLit),
		e(30, "Location", pLit),
		e(31, "Component", pLit),
		e(32, "Index", pLit),
		e(33, "Binding", pLit),
		e(34, "DescriptorSet", pLit),
		e(35, "Offset", pLit),
		e(36, "XfbBuffer", pLit),
		e(37, "XfbStride", pLit),
		e(38, "FuncParamAttr", pEnum(EnumFunctionParameterAttribute)),
		e(39, "FPRoundingMode", pEnum(EnumFPRoundingMode)),
		e(40, "FPFastMathMode", pEnum(EnumFPFastMathMode)),
		e(41, "LinkageAttributes", pStr, pEnum(EnumLinkageType)),
		e(42, "NoContraction"),
		e(43, "InputAttachmentIndex", pLit),
		e(44, "Alignment", pLit),
		e(45, "MaxByteOffset", pLit),
		e(46, "AlignmentId", pID),
		e(47, "MaxByteOffsetId", pID),
		e(4469, "NoSignedWrap"), e(4470, "NoUnsignedWrap"),
		e(4487, "WeightTextureQCOM"), e(4488, "BlockMatchTextureQCOM"),
		e(4999, "ExplicitInterpAMD"),
		e(5248, "OverrideCoverageNV"), e(5250, "PassthroughNV"), e(5252, "ViewportRelativeNV"),
		e(5256, "SecondaryViewportRelativeNV", pLit),
		e(5271, "PerPrimitiveEXT"), e(5272, "PerViewNV"), e(5273, "PerTaskNV"),
		e(5285, "PerVertexKHR"),
		e(5300, "NonUniform"),
		e(5355, "RestrictPointer"), e(5356, "AliasedPointer"),
		e(5634, "CounterBuffer", pID),
		e(5635, "UserSemantic", pStr),
		e(5636, "UserTypeGOOGLE", pStr),
	)

	register(EnumBuiltIn, "BuiltIn", false,
		e(0, "Position"), e(1, "PointSize"), e(3, "ClipDistance"), e(4, "CullDistance"),
		e(5, "VertexId"), e(6, "InstanceId"), e(7, "PrimitiveId"), e(8, "InvocationId"),
		e(9, "Layer"), e(10, "ViewportIndex"), e(11, "TessLevelOuter"),
		e(12, "TessLevelInner"), e(13, "TessCoord"), e(14, "PatchVertices"),
		e(15, "FragCoord"), e(16, "PointCoord"), e(17, "FrontFacing"), e(18, "SampleId"),
		e(19, "SamplePosition"), e(20, "SampleMask"), e(22, "FragDepth"),
		e(23, "HelperInvocation"), e(24, "NumWorkgroups"), e(25, "WorkgroupSize"),
		e(26, "WorkgroupId"), e(27, "LocalInvocationId"), e(28, "GlobalInvocationId"),
		e(29, "LocalInvocationIndex"), e(30, "WorkDim"), e(31, "GlobalSize"),
		e(32, "EnqueuedWorkgroupSize"), e(33, "GlobalOffset"), e(34, "GlobalLinearId"),
		e(36, "SubgroupSize"), e(37, "SubgroupMaxSize"), e(38, "NumSubgroups"),
		e(39, "NumEnqueuedSubgroups"), e(40, "SubgroupId"),
		e(41, "SubgroupLocalInvocationId"), e(42, "VertexIndex"), e(43, "InstanceIndex"),
		e(4416, "SubgroupEqMask"), e(4417, "SubgroupGeMask"), e(4418, "SubgroupGtMask"),
		e(4419, "SubgroupLeMask"), e(4420, "SubgroupLtMask"),
		e(4424, "BaseVertex"), e(4425, "BaseInstance"), e(4426, "DrawIndex"),
		e(4432, "PrimitiveShadingRateKHR"), e(4438, "DeviceIndex"), e(4440, "ViewIndex"),
		e(4444, "ShadingRateKHR"),
		e(5014, "FragStencilRefEXT"), e(5264, "FullyCoveredEXT"),
		e(5286, "BaryCoordKHR"), e(5287, "BaryCoordNoPerspKHR"),
		e(5292, "FragSizeEXT"), e(5293, "FragInvocationCountEXT"),
		e(5294, "PrimitivePointIndicesEXT"), e(5295, "PrimitiveLineIndicesEXT"),
		e(5296, "PrimitiveTriangleIndicesEXT"), e(5299, "CullPrimitiveEXT"),
		e(5319, "LaunchIdKHR"), e(5320, "LaunchSizeKHR"),
		e(5321, "WorldRayOriginKHR"), e(5322, "WorldRayDirectionKHR"),
		e(5323, "ObjectRayOriginKHR"), e(5324, "ObjectRayDirectionKHR"),
		e(5325, "RayTminKHR"), e(5326, "RayTmaxKHR"), e(5327, "InstanceCustomIndexKHR"),
		e(5330, "ObjectToWorldKHR"), e(5331, "WorldToObjectKHR"), e(5332, "HitTNV"),
		e(5333, "HitKindKHR"), e(5351, "IncomingRayFlagsKHR"),
		e(5352, "RayGeometryIndexKHR"),
	)

	register(EnumGroupOperation, "GroupOperation", false,
		e(0, "Reduce"), e(1, "InclusiveScan"), e(2, "ExclusiveScan"),
		e(3, "ClusteredReduce"),
		e(6, "PartitionedReduceNV"), e(7, "PartitionedInclusiveScanNV"),
		e(8, "PartitionedExclusiveScanNV"),
	)

	register(EnumCapability, "Capability", false,
		e(0, "Matrix"), e(1, "Shader"), e(2, "Geometry"), e(3, "Tessellation"),
		e(4, "Addresses"), e(5, "Linkage"), e(6, "Kernel"), e(7, "Vector16"),
		e(8, "Float16Buffer"), e(9, "Float16"), e(10, "Float64"), e(11, "Int64"),
		e(12, "Int64Atomics"), e(13, "ImageBasic"), e(14, "ImageReadWrite"),
		e(15, "ImageMipmap"), e(17, "Pipes"), e(18, "Groups"), e(19, "DeviceEnqueue"),
		e(20, "LiteralSampler"), e(21, "AtomicStorage"), e(22, "Int16"),
		e(23, "TessellationPointSize"), e(24, "GeometryPointSize"),
		e(25, "ImageGatherExtended"), e(27, "StorageImageMultisample"),
		e(28, "UniformBufferArrayDynamicIndexing"),
		e(29, "SampledImageArrayDynamicIndexing"),
		e(30, "StorageBufferArrayDynamicIndexing"),
		e(31, "StorageImageArrayDynamicIndexing"),
		e(32, "ClipDistance"), e(33, "CullDistance"), e(34, "ImageCubeArray"),
		e(35, "SampleRateShading"), e(36, "ImageRect"), e(37, "SampledRect"),
		e(38, "GenericPointer"), e(39, "Int8"), e(40, "InputAttachment"),
		e(41, "SparseResidency"), e(42, "MinLod"), e(43, "Sampled1D"), e(44, "Image1D"),
		e(45, "SampledCubeArray"), e(46, "SampledBuffer"), e(47, "ImageBuffer"),
		e(48, "ImageMSArray"), e(49, "StorageImageExtendedFormats"), e(50, "ImageQuery"),
		e(51, "DerivativeControl"), e(52, "InterpolationFunction"),
		e(53, "TransformFeedback"), e(54, "GeometryStreams"),
		e(55, "StorageImageReadWithoutFormat"), e(56, "StorageImageWriteWithoutFormat"),
		e(57, "MultiViewport"), e(58, "SubgroupDispatch"), e(59, "NamedBarrier"),
		e(60, "PipeStorage"), e(61, "GroupNonUniform"), e(62, "GroupNonUniformVote"),
		e(63, "GroupNonUniformArithmetic"), e(64, "GroupNonUniformBallot"),
		e(65, "GroupNonUniformShuffle"), e(66, "GroupNonUniformShuffleRelative"),
		e(67, "GroupNonUniformClustered"), e(68, "GroupNonUniformQuad"),
		e(69, "ShaderLayer"), e(70, "ShaderViewportIndex"), e(71, "UniformDecoration"),
		e(4422, "FragmentShadingRateKHR"), e(4423, "SubgroupBallotKHR"),
		e(4427, "DrawParameters"), e(4431, "SubgroupVoteKHR"),
		e(4433, "StorageBuffer16BitAccess"), e(4434, "UniformAndStorageBuffer16BitAccess"),
		e(4435, "StoragePushConstant16"), e(4436, "StorageInputOutput16"),
		e(4437, "DeviceGroup"), e(4439, "MultiView"),
		e(4441, "VariablePointersStorageBuffer"), e(4442, "VariablePointers"),
		e(4445, "AtomicStorageOps"), e(4447, "SampleMaskPostDepthCoverage"),
		e(4448, "StorageBuffer8BitAccess"), e(4449, "UniformAndStorageBuffer8BitAccess"),
		e(4450, "StoragePushConstant8"),
		e(4464, "DenormPreserve"), e(4465, "DenormFlushToZero"),
		e(4466, "SignedZeroInfNanPreserve"), e(4467, "RoundingModeRTE"),
		e(4468, "RoundingModeRTZ"),
		e(4471, "RayQueryProvisionalKHR"), e(4472, "RayQueryKHR"),
		e(4478, "RayTraversalPrimitiveCullingKHR"), e(4479, "RayTracingKHR"),
		e(5008, "Float16ImageAMD"), e(5009, "ImageGatherBiasLodAMD"),
		e(5010, "FragmentMaskAMD"), e(5013, "StencilExportEXT"),
		e(5015, "ImageReadWriteLodAMD"), e(5016, "Int64ImageEXT"),
		e(5055, "ShaderClockKHR"),
		e(5249, "SampleMaskOverrideCoverageNV"), e(5251, "GeometryShaderPassthroughNV"),
		e(5254, "ShaderViewportIndexLayerEXT"), e(5255, "ShaderViewportMaskNV"),
		e(5259, "ShaderStereoViewNV"), e(5260, "PerViewAttributesNV"),
		e(5265, "FragmentFullyCoveredEXT"), e(5266, "MeshShadingNV"),
		e(5282, "ImageFootprintNV"), e(5283, "MeshShadingEXT"),
		e(5284, "FragmentBarycentricKHR"), e(5288, "ComputeDerivativeGroupQuadsNV"),
		e(5291, "FragmentDensityEXT"), e(5297, "GroupNonUniformPartitionedNV"),
		e(5301, "ShaderNonUniform"), e(5302, "RuntimeDescriptorArray"),
		e(5303, "InputAttachmentArrayDynamicIndexing"),
		e(5304, "UniformTexelBufferArrayDynamicIndexing"),
		e(5305, "StorageTexelBufferArrayDynamicIndexing"),
		e(5306, "UniformBufferArrayNonUniformIndexing"),
		e(5307, "SampledImageArrayNonUniformIndexing"),
		e(5308, "StorageBufferArrayNonUniformIndexing"),
		e(5309, "StorageImageArrayNonUniformIndexing"),
		e(5310, "InputAttachmentArrayNonUniformIndexing"),
		e(5311, "UniformTexelBufferArrayNonUniformIndexing"),
		e(5312, "StorageTexelBufferArrayNonUniformIndexing"),
		e(5340, "RayTracingNV"), e(5345, "VulkanMemoryModel"),
		e(5346, "VulkanMemoryModelDeviceScope"), e(5347, "PhysicalStorageBufferAddresses"),
		e(5350, "ComputeDerivativeGroupLinearNV"), e(5357, "CooperativeMatrixNV"),
		e(5363, "FragmentShaderSampleInterlockEXT"),
		e(5372, "FragmentShaderShadingRateInterlockEXT"), e(5373, "ShaderSMBuiltinsNV"),
		e(5378, "FragmentShaderPixelInterlockEXT"), e(5379, "DemoteToHelperInvocation"),
		e(5568, "SubgroupShuffleINTEL"), e(5569, "SubgroupBufferBlockIOINTEL"),
		e(5570, "SubgroupImageBlockIOINTEL"), e(5579, "SubgroupImageMediaBlockIOINTEL"),
		e(6016, "DotProductInputAll"), e(6017, "DotProductInput4x8Bit"),
		e(6018, "DotProductInput4x8BitPacked"), e(6019, "DotProduct"),
		e(6033, "AtomicFloat32AddEXT"), e(6034, "AtomicFloat64AddEXT"),
	)

	register(EnumFPRoundingMode, "FPRoundingMode", false,
		e(0, "RTE"), e(1, "RTZ"), e(2, "RTP"), e(3, "RTN"),
	)

	register(EnumLinkageType, "LinkageType", false,
		e(0, "Export"), e(1, "Import"), e(2, "LinkOnceODR"),
	)

	register(EnumPackedVectorFormat, "PackedVectorFormat", false,
		e(0, "PackedVectorFormat4x8Bit"),
	)

	register(EnumImageOperands, "ImageOperands", true,
		e(0x0, "None"),
		e(0x1, "Bias", pID),
		e(0x2, "Lod", pID),
		e(0x4, "Grad", pID, pID),
		e(0x8, "ConstOffset", pID),
		e(0x10, "Offset", pID),
		e(0x20, "ConstOffsets", pID),
		e(0x40, "Sample", pID),
		e(0x80, "MinLod", pID),
		e(0x100, "MakeTexelAvailable", pID),
		e(0x200, "MakeTexelVisible", pID),
		e(0x400, "NonPrivateTexel"),
		e(0x800, "VolatileTexel"),
		e(0x1000, "SignExtend"),
		e(0x2000, "ZeroExtend"),
		e(0x4000, "Nontemporal"),
		e(0x10000, "Offsets", pID),
	)

	register(EnumMemoryAccess, "MemoryAccess", true,
		e(0x0, "None"),
		e(0x1, "Volatile"),
		e(0x2, "Aligned", pLit),
		e(0x4, "Nontemporal"),
		e(0x8, "MakePointerAvailable", pID),
		e(0x10, "MakePointerVisible", pID),
		e(0x20, "NonPrivatePointer"),
	)

	register(EnumLoopControl, "LoopControl", true,
		e(0x0, "None"),
		e(0x1, "Unroll"),
		e(0x2, "DontUnroll"),
		e(0x4, "DependencyInfinite"),
		e(0x8, "DependencyLength", pLit),
		e(0x10, "MinIterations", pLit),
		e(0x20, "MaxIterations", pLit),
		e(0x40, "IterationMultiple", pLit),
		e(0x80, "PeelCount", pLit),
		e(0x100, "PartialCount", pLit),
	)

	register(EnumSelectionControl, "SelectionControl", true,
		e(0x0, "None"), e(0x1, "Flatten"), e(0x2, "DontFlatten"),
	)

	register(EnumFunctionControl, "FunctionControl", true,
		e(0x0, "None"), e(0x1, "Inline"), e(0x2, "DontInline"), e(0x4, "Pure"),
		e(0x8, "Const"),
	)

	register(EnumFPFastMathMode, "FPFastMathMode", true,
		e(0x0, "None"), e(0x1, "NotNaN"), e(0x2, "NotInf"), e(0x4, "NSZ"),
		e(0x8, "AllowRecip"), e(0x10, "Fast"),
	)
}
