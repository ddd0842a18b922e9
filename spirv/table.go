package spirv

import (
	"fmt"
	"strings"
)

// InstructionSpec is one row of the instruction table: an opcode, its
// mnemonic without the "Op" prefix, and its operand signature.
type InstructionSpec struct {
	Code   OpCode
	Name   string
	Params []Param
}

// Mnemonic returns the name as disassemblers print it.
func (s *InstructionSpec) Mnemonic() string {
	return "Op" + s.Name
}

// HasResultType reports whether the first slot is a result type id.
func (s *InstructionSpec) HasResultType() bool {
	return len(s.Params) > 0 && s.Params[0].Kind == KindIDResultType
}

// HasResult reports whether the instruction defines a result id.
func (s *InstructionSpec) HasResult() bool {
	return s.resultSlot() >= 0
}

func (s *InstructionSpec) resultSlot() int {
	for i, p := range s.Params {
		if p.Kind == KindIDResult {
			return i
		}
		if i > 0 {
			break
		}
	}
	return -1
}

// String returns the mnemonic followed by the signature.
func (s *InstructionSpec) String() string {
	var b strings.Builder
	b.WriteString(s.Mnemonic())
	for _, p := range s.Params {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}

var (
	pRT     = Param{Name: "Result Type", Kind: KindIDResultType}
	pRes    = Param{Name: "Result", Kind: KindIDResult}
	pNum    = Param{Kind: KindLiteralContextDependentNumber}
	pExt    = Param{Name: "Instruction", Kind: KindLiteralExtInstInteger}
	pSpecOp = Param{Name: "Opcode", Kind: KindLiteralSpecConstantOpInteger}

	pIDs  = many(pID)
	pLits = many(pLit)
	pIO   = pEnum(EnumImageOperands)
	pMA   = opt(pEnum(EnumMemoryAccess))
	pGOp  = pEnum(EnumGroupOperation)
	pPVF  = opt(pEnum(EnumPackedVectorFormat))
)

func opt(p Param) Param {
	p.Quant = Optional
	return p
}

func many(p Param) Param {
	p.Quant = Variadic
	return p
}

func pairs(first, second OperandKind) Param {
	return Param{Kind: KindPair, Pair: [2]OperandKind{first, second}, Quant: Variadic}
}

func ids(n int) []Param {
	ps := make([]Param, n)
	for i := range ps {
		ps[i] = pID
	}
	return ps
}

// op declares an instruction without a result.
func op(code OpCode, name string, params ...Param) InstructionSpec {
	return InstructionSpec{Code: code, Name: name, Params: params}
}

// def declares an instruction with a result id and no result type.
func def(code OpCode, name string, params ...Param) InstructionSpec {
	return op(code, name, append([]Param{pRes}, params...)...)
}

// res declares an instruction with a result type and a result id.
func res(code OpCode, name string, params ...Param) InstructionSpec {
	return op(code, name, append([]Param{pRT, pRes}, params...)...)
}

func unary(code OpCode, name string) InstructionSpec {
	return res(code, name, pID)
}

func binaryOp(code OpCode, name string) InstructionSpec {
	return res(code, name, pID, pID)
}

var instructionTable = []InstructionSpec{
	op(0, "Nop"),
	res(1, "Undef"),
	op(2, "SourceContinued", pStr),
	op(3, "Source", pEnum(EnumSourceLanguage), pLit, opt(pID), opt(pStr)),
	op(4, "SourceExtension", pStr),
	op(5, "Name", pID, pStr),
	op(6, "MemberName", pID, pLit, pStr),
	def(7, "String", pStr),
	op(8, "Line", pID, pLit, pLit),
	op(10, "Extension", pStr),
	def(11, "ExtInstImport", pStr),
	res(12, "ExtInst", pID, pExt, pIDs),
	op(14, "MemoryModel", pEnum(EnumAddressingModel), pEnum(EnumMemoryModel)),
	op(15, "EntryPoint", pEnum(EnumExecutionModel), pID, pStr, pIDs),
	op(16, "ExecutionMode", pID, pEnum(EnumExecutionMode)),
	op(17, "Capability", pEnum(EnumCapability)),

	// Types
	def(19, "TypeVoid"),
	def(20, "TypeBool"),
	def(21, "TypeInt", pLit, pLit),
	def(22, "TypeFloat", pLit),
	def(23, "TypeVector", pID, pLit),
	def(24, "TypeMatrix", pID, pLit),
	def(25, "TypeImage", pID, pEnum(EnumDim), pLit, pLit, pLit, pLit,
		pEnum(EnumImageFormat), opt(pEnum(EnumAccessQualifier))),
	def(26, "TypeSampler"),
	def(27, "TypeSampledImage", pID),
	def(28, "TypeArray", pID, pID),
	def(29, "TypeRuntimeArray", pID),
	def(30, "TypeStruct", pIDs),
	def(31, "TypeOpaque", pStr),
	def(32, "TypePointer", pEnum(EnumStorageClass), pID),
	def(33, "TypeFunction", pID, pIDs),
	def(34, "TypeEvent"),
	def(35, "TypeDeviceEvent"),
	def(36, "TypeReserveId"),
	def(37, "TypeQueue"),
	def(38, "TypePipe", pEnum(EnumAccessQualifier)),
	op(39, "TypeForwardPointer", pID, pEnum(EnumStorageClass)),

	// Constants
	res(41, "ConstantTrue"),
	res(42, "ConstantFalse"),
	res(43, "Constant", pNum),
	res(44, "ConstantComposite", pIDs),
	res(45, "ConstantSampler", pEnum(EnumSamplerAddressingMode), pLit, pEnum(EnumSamplerFilterMode)),
	res(46, "ConstantNull"),
	res(48, "SpecConstantTrue"),
	res(49, "SpecConstantFalse"),
	res(50, "SpecConstant", pNum),
	res(51, "SpecConstantComposite", pIDs),
	res(52, "SpecConstantOp", pSpecOp, pIDs),

	// Functions
	res(54, "Function", pEnum(EnumFunctionControl), pID),
	res(55, "FunctionParameter"),
	op(56, "FunctionEnd"),
	res(57, "FunctionCall", pID, pIDs),

	// Memory
	res(59, "Variable", pEnum(EnumStorageClass), opt(pID)),
	res(60, "ImageTexelPointer", pID, pID, pID),
	res(61, "Load", pID, pMA),
	op(62, "Store", pID, pID, pMA),
	op(63, "CopyMemory", pID, pID, pMA, pMA),
	op(64, "CopyMemorySized", pID, pID, pID, pMA, pMA),
	res(65, "AccessChain", pID, pIDs),
	res(66, "InBoundsAccessChain", pID, pIDs),
	res(67, "PtrAccessChain", pID, pID, pIDs),
	res(68, "ArrayLength", pID, pLit),
	res(69, "GenericPtrMemSemantics", pID),
	res(70, "InBoundsPtrAccessChain", pID, pID, pIDs),

	// Annotations
	op(71, "Decorate", pID, pEnum(EnumDecoration)),
	op(72, "MemberDecorate", pID, pLit, pEnum(EnumDecoration)),
	def(73, "DecorationGroup"),
	op(74, "GroupDecorate", pID, pIDs),
	op(75, "GroupMemberDecorate", pID, pairs(KindIDRef, KindLiteralInteger)),

	// Composites
	res(77, "VectorExtractDynamic", pID, pID),
	res(78, "VectorInsertDynamic", pID, pID, pID),
	res(79, "VectorShuffle", pID, pID, pLits),
	res(80, "CompositeConstruct", pIDs),
	res(81, "CompositeExtract", pID, pLits),
	res(82, "CompositeInsert", pID, pID, pLits),
	unary(83, "CopyObject"),
	unary(84, "Transpose"),

	// Images
	res(86, "SampledImage", pID, pID),
	res(87, "ImageSampleImplicitLod", pID, pID, opt(pIO)),
	res(88, "ImageSampleExplicitLod", pID, pID, pIO),
	res(89, "ImageSampleDrefImplicitLod", pID, pID, pID, opt(pIO)),
	res(90, "ImageSampleDrefExplicitLod", pID, pID, pID, pIO),
	res(91, "ImageSampleProjImplicitLod", pID, pID, opt(pIO)),
	res(92, "ImageSampleProjExplicitLod", pID, pID, pIO),
	res(93, "ImageSampleProjDrefImplicitLod", pID, pID, pID, opt(pIO)),
	res(94, "ImageSampleProjDrefExplicitLod", pID, pID, pID, pIO),
	res(95, "ImageFetch", pID, pID, opt(pIO)),
	res(96, "ImageGather", pID, pID, pID, opt(pIO)),
	res(97, "ImageDrefGather", pID, pID, pID, opt(pIO)),
	res(98, "ImageRead", pID, pID, opt(pIO)),
	op(99, "ImageWrite", pID, pID, pID, opt(pIO)),
	unary(100, "Image"),
	unary(101, "ImageQueryFormat"),
	unary(102, "ImageQueryOrder"),
	binaryOp(103, "ImageQuerySizeLod"),
	unary(104, "ImageQuerySize"),
	binaryOp(105, "ImageQueryLod"),
	unary(106, "ImageQueryLevels"),
	unary(107, "ImageQuerySamples"),

	// Conversions
	unary(109, "ConvertFToU"),
	unary(110, "ConvertFToS"),
	unary(111, "ConvertSToF"),
	unary(112, "ConvertUToF"),
	unary(113, "UConvert"),
	unary(114, "SConvert"),
	unary(115, "FConvert"),
	unary(116, "QuantizeToF16"),
	unary(117, "ConvertPtrToU"),
	unary(118, "SatConvertSToU"),
	unary(119, "SatConvertUToS"),
	unary(120, "ConvertUToPtr"),
	unary(121, "PtrCastToGeneric"),
	unary(122, "GenericCastToPtr"),
	res(123, "GenericCastToPtrExplicit", pID, pEnum(EnumStorageClass)),
	unary(124, "Bitcast"),

	// Arithmetic
	unary(126, "SNegate"),
	unary(127, "FNegate"),
	binaryOp(128, "IAdd"),
	binaryOp(129, "FAdd"),
	binaryOp(130, "ISub"),
	binaryOp(131, "FSub"),
	binaryOp(132, "IMul"),
	binaryOp(133, "FMul"),
	binaryOp(134, "UDiv"),
	binaryOp(135, "SDiv"),
	binaryOp(136, "FDiv"),
	binaryOp(137, "UMod"),
	binaryOp(138, "SRem"),
	binaryOp(139, "SMod"),
	binaryOp(140, "FRem"),
	binaryOp(141, "FMod"),
	binaryOp(142, "VectorTimesScalar"),
	binaryOp(143, "MatrixTimesScalar"),
	binaryOp(144, "VectorTimesMatrix"),
	binaryOp(145, "MatrixTimesVector"),
	binaryOp(146, "MatrixTimesMatrix"),
	binaryOp(147, "OuterProduct"),
	binaryOp(148, "Dot"),
	binaryOp(149, "IAddCarry"),
	binaryOp(150, "ISubBorrow"),
	binaryOp(151, "UMulExtended"),
	binaryOp(152, "SMulExtended"),

	// Relational and logical
	unary(154, "Any"),
	unary(155, "All"),
	unary(156, "IsNan"),
	unary(157, "IsInf"),
	unary(158, "IsFinite"),
	unary(159, "IsNormal"),
	unary(160, "SignBitSet"),
	binaryOp(161, "LessOrGreater"),
	binaryOp(162, "Ordered"),
	binaryOp(163, "Unordered"),
	binaryOp(164, "LogicalEqual"),
	binaryOp(165, "LogicalNotEqual"),
	binaryOp(166, "LogicalOr"),
	binaryOp(167, "LogicalAnd"),
	unary(168, "LogicalNot"),
	res(169, "Select", pID, pID, pID),
	binaryOp(170, "IEqual"),
	binaryOp(171, "INotEqual"),
	binaryOp(172, "UGreaterThan"),
	binaryOp(173, "SGreaterThan"),
	binaryOp(174, "UGreaterThanEqual"),
	binaryOp(175, "SGreaterThanEqual"),
	binaryOp(176, "ULessThan"),
	binaryOp(177, "SLessThan"),
	binaryOp(178, "ULessThanEqual"),
	binaryOp(179, "SLessThanEqual"),
	binaryOp(180, "FOrdEqual"),
	binaryOp(181, "FUnordEqual"),
	binaryOp(182, "FOrdNotEqual"),
	binaryOp(183, "FUnordNotEqual"),
	binaryOp(184, "FOrdLessThan"),
	binaryOp(185, "FUnordLessThan"),
	binaryOp(186, "FOrdGreaterThan"),
	binaryOp(187, "FUnordGreaterThan"),
	binaryOp(188, "FOrdLessThanEqual"),
	binaryOp(189, "FUnordLessThanEqual"),
	binaryOp(190, "FOrdGreaterThanEqual"),
	binaryOp(191, "FUnordGreaterThanEqual"),

	// Bit
	binaryOp(194, "ShiftRightLogical"),
	binaryOp(195, "ShiftRightArithmetic"),
	binaryOp(196, "ShiftLeftLogical"),
	binaryOp(197, "BitwiseOr"),
	binaryOp(198, "BitwiseXor"),
	binaryOp(199, "BitwiseAnd"),
	unary(200, "Not"),
	res(201, "BitFieldInsert", ids(4)...),
	res(202, "BitFieldSExtract", ids(3)...),
	res(203, "BitFieldUExtract", ids(3)...),
	unary(204, "BitReverse"),
	unary(205, "BitCount"),

	// Derivatives
	unary(207, "DPdx"),
	unary(208, "DPdy"),
	unary(209, "Fwidth"),
	unary(210, "DPdxFine"),
	unary(211, "DPdyFine"),
	unary(212, "FwidthFine"),
	unary(213, "DPdxCoarse"),
	unary(214, "DPdyCoarse"),
	unary(215, "FwidthCoarse"),

	// Primitives and barriers
	op(218, "EmitVertex"),
	op(219, "EndPrimitive"),
	op(220, "EmitStreamVertex", pID),
	op(221, "EndStreamPrimitive", pID),
	op(224, "ControlBarrier", ids(3)...),
	op(225, "MemoryBarrier", ids(2)...),

	// Atomics
	res(227, "AtomicLoad", ids(3)...),
	op(228, "AtomicStore", ids(4)...),
	res(229, "AtomicExchange", ids(4)...),
	res(230, "AtomicCompareExchange", ids(6)...),
	res(231, "AtomicCompareExchangeWeak", ids(6)...),
	res(232, "AtomicIIncrement", ids(3)...),
	res(233, "AtomicIDecrement", ids(3)...),
	res(234, "AtomicIAdd", ids(4)...),
	res(235, "AtomicISub", ids(4)...),
	res(236, "AtomicSMin", ids(4)...),
	res(237, "AtomicUMin", ids(4)...),
	res(238, "AtomicSMax", ids(4)...),
	res(239, "AtomicUMax", ids(4)...),
	res(240, "AtomicAnd", ids(4)...),
	res(241, "AtomicOr", ids(4)...),
	res(242, "AtomicXor", ids(4)...),

	// Control flow
	res(245, "Phi", pairs(KindIDRef, KindIDRef)),
	op(246, "LoopMerge", pID, pID, pEnum(EnumLoopControl)),
	op(247, "SelectionMerge", pID, pEnum(EnumSelectionControl)),
	def(248, "Label"),
	op(249, "Branch", pID),
	op(250, "BranchConditional", pID, pID, pID, pLits),
	op(251, "Switch", pID, pID, pairs(KindLiteralContextDependentNumber, KindIDRef)),
	op(252, "Kill"),
	op(253, "Return"),
	op(254, "ReturnValue", pID),
	op(255, "Unreachable"),
	op(256, "LifetimeStart", pID, pLit),
	op(257, "LifetimeStop", pID, pLit),

	// Groups
	res(259, "GroupAsyncCopy", ids(6)...),
	op(260, "GroupWaitEvents", ids(3)...),
	res(261, "GroupAll", ids(2)...),
	res(262, "GroupAny", ids(2)...),
	res(263, "GroupBroadcast", ids(3)...),
	res(264, "GroupIAdd", pID, pGOp, pID),
	res(265, "GroupFAdd", pID, pGOp, pID),
	res(266, "GroupFMin", pID, pGOp, pID),
	res(267, "GroupUMin", pID, pGOp, pID),
	res(268, "GroupSMin", pID, pGOp, pID),
	res(269, "GroupFMax", pID, pGOp, pID),
	res(270, "GroupUMax", pID, pGOp, pID),
	res(271, "GroupSMax", pID, pGOp, pID),

	// Pipes
	res(274, "ReadPipe", ids(4)...),
	res(275, "WritePipe", ids(4)...),
	res(276, "ReservedReadPipe", ids(6)...),
	res(277, "ReservedWritePipe", ids(6)...),
	res(278, "ReserveReadPipePackets", ids(4)...),
	res(279, "ReserveWritePipePackets", ids(4)...),
	op(280, "CommitReadPipe", ids(4)...),
	op(281, "CommitWritePipe", ids(4)...),
	unary(282, "IsValidReserveId"),
	res(283, "GetNumPipePackets", ids(3)...),
	res(284, "GetMaxPipePackets", ids(3)...),
	res(285, "GroupReserveReadPipePackets", ids(5)...),
	res(286, "GroupReserveWritePipePackets", ids(5)...),
	op(287, "GroupCommitReadPipe", ids(5)...),
	op(288, "GroupCommitWritePipe", ids(5)...),

	// Device-side enqueue
	res(291, "EnqueueMarker", ids(4)...),
	res(292, "EnqueueKernel", append(ids(10), pIDs)...),
	res(293, "GetKernelNDrangeSubGroupCount", ids(5)...),
	res(294, "GetKernelNDrangeMaxSubGroupSize", ids(5)...),
	res(295, "GetKernelWorkGroupSize", ids(4)...),
	res(296, "GetKernelPreferredWorkGroupSizeMultiple", ids(4)...),
	op(297, "RetainEvent", pID),
	op(298, "ReleaseEvent", pID),
	res(299, "CreateUserEvent"),
	unary(300, "IsValidEvent"),
	op(301, "SetUserEventStatus", ids(2)...),
	op(302, "CaptureEventProfilingInfo", ids(3)...),
	res(303, "GetDefaultQueue"),
	res(304, "BuildNDRange", ids(3)...),

	// Sparse images
	res(305, "ImageSparseSampleImplicitLod", pID, pID, opt(pIO)),
	res(306, "ImageSparseSampleExplicitLod", pID, pID, pIO),
	res(307, "ImageSparseSampleDrefImplicitLod", pID, pID, pID, opt(pIO)),
	res(308, "ImageSparseSampleDrefExplicitLod", pID, pID, pID, pIO),
	res(309, "ImageSparseSampleProjImplicitLod", pID, pID, opt(pIO)),
	res(310, "ImageSparseSampleProjExplicitLod", pID, pID, pIO),
	res(311, "ImageSparseSampleProjDrefImplicitLod", pID, pID, pID, opt(pIO)),
	res(312, "ImageSparseSampleProjDrefExplicitLod", pID, pID, pID, pIO),
	res(313, "ImageSparseFetch", pID, pID, opt(pIO)),
	res(314, "ImageSparseGather", pID, pID, pID, opt(pIO)),
	res(315, "ImageSparseDrefGather", pID, pID, pID, opt(pIO)),
	unary(316, "ImageSparseTexelsResident"),
	op(317, "NoLine"),
	res(318, "AtomicFlagTestAndSet", ids(3)...),
	op(319, "AtomicFlagClear", ids(3)...),
	res(320, "ImageSparseRead", pID, pID, opt(pIO)),

	// 1.1 and 1.2
	unary(321, "SizeOf"),
	def(322, "TypePipeStorage"),
	res(323, "ConstantPipeStorage", pLit, pLit, pLit),
	unary(324, "CreatePipeFromPipeStorage"),
	res(325, "GetKernelLocalSizeForSubgroupCount", ids(5)...),
	res(326, "GetKernelMaxNumSubgroups", ids(4)...),
	def(327, "TypeNamedBarrier"),
	unary(328, "NamedBarrierInitialize"),
	op(329, "MemoryNamedBarrier", ids(3)...),
	op(330, "ModuleProcessed", pStr),
	op(331, "ExecutionModeId", pID, pEnum(EnumExecutionMode)),
	op(332, "DecorateId", pID, pEnum(EnumDecoration)),

	// Non-uniform groups
	unary(333, "GroupNonUniformElect"),
	binaryOp(334, "GroupNonUniformAll"),
	binaryOp(335, "GroupNonUniformAny"),
	binaryOp(336, "GroupNonUniformAllEqual"),
	res(337, "GroupNonUniformBroadcast", ids(3)...),
	binaryOp(338, "GroupNonUniformBroadcastFirst"),
	binaryOp(339, "GroupNonUniformBallot"),
	binaryOp(340, "GroupNonUniformInverseBallot"),
	res(341, "GroupNonUniformBallotBitExtract", ids(3)...),
	res(342, "GroupNonUniformBallotBitCount", pID, pGOp, pID),
	binaryOp(343, "GroupNonUniformBallotFindLSB"),
	binaryOp(344, "GroupNonUniformBallotFindMSB"),
	res(345, "GroupNonUniformShuffle", ids(3)...),
	res(346, "GroupNonUniformShuffleXor", ids(3)...),
	res(347, "GroupNonUniformShuffleUp", ids(3)...),
	res(348, "GroupNonUniformShuffleDown", ids(3)...),
	res(349, "GroupNonUniformIAdd", pID, pGOp, pID, opt(pID)),
	res(350, "GroupNonUniformFAdd", pID, pGOp, pID, opt(pID)),
	res(351, "GroupNonUniformIMul", pID, pGOp, pID, opt(pID)),
	res(352, "GroupNonUniformFMul", pID, pGOp, pID, opt(pID)),
	res(353, "GroupNonUniformSMin", pID, pGOp, pID, opt(pID)),
	res(354, "GroupNonUniformUMin", pID, pGOp, pID, opt(pID)),
	res(355, "GroupNonUniformFMin", pID, pGOp, pID, opt(pID)),
	res(356, "GroupNonUniformSMax", pID, pGOp, pID, opt(pID)),
	res(357, "GroupNonUniformUMax", pID, pGOp, pID, opt(pID)),
	res(358, "GroupNonUniformFMax", pID, pGOp, pID, opt(pID)),
	res(359, "GroupNonUniformBitwiseAnd", pID, pGOp, pID, opt(pID)),
	res(360, "GroupNonUniformBitwiseOr", pID, pGOp, pID, opt(pID)),
	res(361, "GroupNonUniformBitwiseXor", pID, pGOp, pID, opt(pID)),
	res(362, "GroupNonUniformLogicalAnd", pID, pGOp, pID, opt(pID)),
	res(363, "GroupNonUniformLogicalOr", pID, pGOp, pID, opt(pID)),
	res(364, "GroupNonUniformLogicalXor", pID, pGOp, pID, opt(pID)),
	res(365, "GroupNonUniformQuadBroadcast", ids(3)...),
	res(366, "GroupNonUniformQuadSwap", ids(3)...),

	// 1.4
	unary(400, "CopyLogical"),
	binaryOp(401, "PtrEqual"),
	binaryOp(402, "PtrNotEqual"),
	binaryOp(403, "PtrDiff"),

	// KHR and EXT
	op(4416, "TerminateInvocation"),
	unary(4421, "SubgroupBallotKHR"),
	unary(4422, "SubgroupFirstInvocationKHR"),
	unary(4428, "SubgroupAllKHR"),
	unary(4429, "SubgroupAnyKHR"),
	unary(4430, "SubgroupAllEqualKHR"),
	res(4431, "GroupNonUniformRotateKHR", pID, pID, pID, opt(pID)),
	binaryOp(4432, "SubgroupReadInvocationKHR"),
	res(4433, "ExtInstWithForwardRefsKHR", pID, pExt, pIDs),
	op(4445, "TraceRayKHR", ids(11)...),
	op(4446, "ExecuteCallableKHR", ids(2)...),
	unary(4447, "ConvertUToAccelerationStructureKHR"),
	op(4448, "IgnoreIntersectionKHR"),
	op(4449, "TerminateRayKHR"),
	res(4450, "SDot", pID, pID, pPVF),
	res(4450, "SDotKHR", pID, pID, pPVF),
	res(4451, "UDot", pID, pID, pPVF),
	res(4451, "UDotKHR", pID, pID, pPVF),
	res(4452, "SUDot", pID, pID, pPVF),
	res(4452, "SUDotKHR", pID, pID, pPVF),
	res(4453, "SDotAccSat", pID, pID, pID, pPVF),
	res(4453, "SDotAccSatKHR", pID, pID, pID, pPVF),
	res(4454, "UDotAccSat", pID, pID, pID, pPVF),
	res(4454, "UDotAccSatKHR", pID, pID, pID, pPVF),
	res(4455, "SUDotAccSat", pID, pID, pID, pPVF),
	res(4455, "SUDotAccSatKHR", pID, pID, pID, pPVF),
	def(4472, "TypeRayQueryKHR"),
	op(4473, "RayQueryInitializeKHR", ids(8)...),
	op(4474, "RayQueryTerminateKHR", pID),
	op(4475, "RayQueryGenerateIntersectionKHR", ids(2)...),
	op(4476, "RayQueryConfirmIntersectionKHR", pID),
	unary(4477, "RayQueryProceedKHR"),
	binaryOp(4479, "RayQueryGetIntersectionTypeKHR"),

	// AMD
	res(5000, "GroupIAddNonUniformAMD", pID, pGOp, pID),
	res(5001, "GroupFAddNonUniformAMD", pID, pGOp, pID),
	res(5002, "GroupFMinNonUniformAMD", pID, pGOp, pID),
	res(5003, "GroupUMinNonUniformAMD", pID, pGOp, pID),
	res(5004, "GroupSMinNonUniformAMD", pID, pGOp, pID),
	res(5005, "GroupFMaxNonUniformAMD", pID, pGOp, pID),
	res(5006, "GroupUMaxNonUniformAMD", pID, pGOp, pID),
	res(5007, "GroupSMaxNonUniformAMD", pID, pGOp, pID),
	binaryOp(5011, "FragmentMaskFetchAMD"),
	res(5012, "FragmentFetchAMD", ids(3)...),
	unary(5056, "ReadClockKHR"),

	// Mesh shading and ray tracing
	op(5294, "EmitMeshTasksEXT", pID, pID, pID, opt(pID)),
	op(5295, "SetMeshOutputsEXT", ids(2)...),
	unary(5296, "GroupNonUniformPartitionNV"),
	op(5299, "WritePackedPrimitiveIndices4x8NV", ids(2)...),
	binaryOp(5334, "ReportIntersectionKHR"),
	binaryOp(5334, "ReportIntersectionNV"),
	op(5335, "IgnoreIntersectionNV"),
	op(5336, "TerminateRayNV"),
	op(5337, "TraceNV", ids(11)...),
	op(5338, "TraceMotionNV", ids(12)...),
	op(5339, "TraceRayMotionNV", ids(12)...),
	binaryOp(5340, "RayQueryGetIntersectionTriangleVertexPositionsKHR"),
	def(5341, "TypeAccelerationStructureKHR"),
	def(5341, "TypeAccelerationStructureNV"),
	op(5344, "ExecuteCallableNV", ids(2)...),
	op(5364, "BeginInvocationInterlockEXT"),
	op(5365, "EndInvocationInterlockEXT"),
	op(5380, "DemoteToHelperInvocation"),
	op(5380, "DemoteToHelperInvocationEXT"),
	res(5381, "IsHelperInvocationEXT"),

	// INTEL
	binaryOp(5571, "SubgroupShuffleINTEL"),
	res(5572, "SubgroupShuffleDownINTEL", ids(3)...),
	res(5573, "SubgroupShuffleUpINTEL", ids(3)...),
	binaryOp(5574, "SubgroupShuffleXorINTEL"),
	unary(5575, "SubgroupBlockReadINTEL"),
	op(5576, "SubgroupBlockWriteINTEL", ids(2)...),
	binaryOp(5577, "SubgroupImageBlockReadINTEL"),
	op(5578, "SubgroupImageBlockWriteINTEL", ids(3)...),

	// Float atomics, assumptions and string decorations
	res(5614, "AtomicFMinEXT", ids(4)...),
	res(5615, "AtomicFMaxEXT", ids(4)...),
	op(5630, "AssumeTrueKHR", pID),
	binaryOp(5631, "ExpectKHR"),
	op(5632, "DecorateString", pID, pEnum(EnumDecoration)),
	op(5632, "DecorateStringGOOGLE", pID, pEnum(EnumDecoration)),
	op(5633, "MemberDecorateString", pID, pLit, pEnum(EnumDecoration)),
	op(5633, "MemberDecorateStringGOOGLE", pID, pLit, pEnum(EnumDecoration)),
	res(6035, "AtomicFAddEXT", ids(4)...),
}

var (
	specsByName map[string]*InstructionSpec
	specsByCode map[OpCode][]*InstructionSpec
)

func init() {
	specsByName = make(map[string]*InstructionSpec, len(instructionTable))
	specsByCode = make(map[OpCode][]*InstructionSpec, len(instructionTable))
	for i := range instructionTable {
		spec := &instructionTable[i]
		if err := validateSpec(spec); err != nil {
			panic(err)
		}
		if _, dup := specsByName[spec.Name]; dup {
			panic(fmt.Sprintf("spirv: duplicate instruction name %q", spec.Name))
		}
		specsByName[spec.Name] = spec
		specsByCode[spec.Code] = append(specsByCode[spec.Code], spec)
	}
}

// validateSpec checks the structural rules every signature obeys.
func validateSpec(spec *InstructionSpec) error {
	trailing := false
	for i, p := range spec.Params {
		switch p.Kind {
		case KindIDResultType:
			if i != 0 || len(spec.Params) < 2 || spec.Params[1].Kind != KindIDResult {
				return fmt.Errorf("spirv: %s: result type must be followed by a result", spec.Name)
			}
		case KindIDResult:
			if i > 1 || (i == 1 && spec.Params[0].Kind != KindIDResultType) {
				return fmt.Errorf("spirv: %s: result id in slot %d", spec.Name, i)
			}
		case KindPair:
			if p.Quant != Variadic {
				return fmt.Errorf("spirv: %s: paired slot %d is not variadic", spec.Name, i)
			}
		case KindEnumerant:
			if enumTables[p.Enum] == nil {
				return fmt.Errorf("spirv: %s: slot %d names unknown enumeration", spec.Name, i)
			}
		}
		if p.Quant != One && (p.Kind == KindIDResultType || p.Kind == KindIDResult) {
			return fmt.Errorf("spirv: %s: result slots cannot be optional", spec.Name)
		}
		if trailing && p.Quant == One {
			return fmt.Errorf("spirv: %s: required slot %d follows an optional one", spec.Name, i)
		}
		if p.Quant == Variadic && i != len(spec.Params)-1 {
			return fmt.Errorf("spirv: %s: variadic slot %d is not last", spec.Name, i)
		}
		if p.Quant != One {
			trailing = true
		}
	}
	return nil
}

// Lookup returns the row for a mnemonic, with or without the "Op" prefix.
func Lookup(name string) (*InstructionSpec, bool) {
	if spec, ok := specsByName[name]; ok {
		return spec, true
	}
	spec, ok := specsByName[strings.TrimPrefix(name, "Op")]
	return spec, ok
}

// LookupOpCode returns the first row declared for code.
func LookupOpCode(code OpCode) (*InstructionSpec, bool) {
	specs := specsByCode[code]
	if len(specs) == 0 {
		return nil, false
	}
	return specs[0], true
}

// Aliases returns every row sharing code, in declaration order.
func Aliases(code OpCode) []*InstructionSpec {
	return specsByCode[code]
}

// Specs returns every row in declaration order.
func Specs() []*InstructionSpec {
	out := make([]*InstructionSpec, len(instructionTable))
	for i := range instructionTable {
		out[i] = &instructionTable[i]
	}
	return out
}
