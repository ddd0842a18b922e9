package spirv

// Opcodes of every instruction in the table. Alias mnemonics share a value.
const (
	OpNop             OpCode = 0
	OpUndef           OpCode = 1
	OpSourceContinued OpCode = 2
	OpSource          OpCode = 3
	OpSourceExtension OpCode = 4
	OpName            OpCode = 5
	OpMemberName      OpCode = 6
	OpString          OpCode = 7
	OpLine            OpCode = 8
	OpExtension       OpCode = 10
	OpExtInstImport   OpCode = 11
	OpExtInst         OpCode = 12
	OpMemoryModel     OpCode = 14
	OpEntryPoint      OpCode = 15
	OpExecutionMode   OpCode = 16
	OpCapability      OpCode = 17

	// Types
	OpTypeVoid           OpCode = 19
	OpTypeBool           OpCode = 20
	OpTypeInt            OpCode = 21
	OpTypeFloat          OpCode = 22
	OpTypeVector         OpCode = 23
	OpTypeMatrix         OpCode = 24
	OpTypeImage          OpCode = 25
	OpTypeSampler        OpCode = 26
	OpTypeSampledImage   OpCode = 27
	OpTypeArray          OpCode = 28
	OpTypeRuntimeArray   OpCode = 29
	OpTypeStruct         OpCode = 30
	OpTypeOpaque         OpCode = 31
	OpTypePointer        OpCode = 32
	OpTypeFunction       OpCode = 33
	OpTypeEvent          OpCode = 34
	OpTypeDeviceEvent    OpCode = 35
	OpTypeReserveId      OpCode = 36
	OpTypeQueue          OpCode = 37
	OpTypePipe           OpCode = 38
	OpTypeForwardPointer OpCode = 39

	// Constants
	OpConstantTrue          OpCode = 41
	OpConstantFalse         OpCode = 42
	OpConstant              OpCode = 43
	OpConstantComposite     OpCode = 44
	OpConstantSampler       OpCode = 45
	OpConstantNull          OpCode = 46
	OpSpecConstantTrue      OpCode = 48
	OpSpecConstantFalse     OpCode = 49
	OpSpecConstant          OpCode = 50
	OpSpecConstantComposite OpCode = 51
	OpSpecConstantOp        OpCode = 52

	// Functions
	OpFunction          OpCode = 54
	OpFunctionParameter OpCode = 55
	OpFunctionEnd       OpCode = 56
	OpFunctionCall      OpCode = 57

	// Memory
	OpVariable               OpCode = 59
	OpImageTexelPointer      OpCode = 60
	OpLoad                   OpCode = 61
	OpStore                  OpCode = 62
	OpCopyMemory             OpCode = 63
	OpCopyMemorySized        OpCode = 64
	OpAccessChain            OpCode = 65
	OpInBoundsAccessChain    OpCode = 66
	OpPtrAccessChain         OpCode = 67
	OpArrayLength            OpCode = 68
	OpGenericPtrMemSemantics OpCode = 69
	OpInBoundsPtrAccessChain OpCode = 70

	// Annotations
	OpDecorate            OpCode = 71
	OpMemberDecorate      OpCode = 72
	OpDecorationGroup     OpCode = 73
	OpGroupDecorate       OpCode = 74
	OpGroupMemberDecorate OpCode = 75

	// Composites
	OpVectorExtractDynamic OpCode = 77
	OpVectorInsertDynamic  OpCode = 78
	OpVectorShuffle        OpCode = 79
	OpCompositeConstruct   OpCode = 80
	OpCompositeExtract     OpCode = 81
	OpCompositeInsert      OpCode = 82
	OpCopyObject           OpCode = 83
	OpTranspose            OpCode = 84

	// Images
	OpSampledImage                   OpCode = 86
	OpImageSampleImplicitLod         OpCode = 87
	OpImageSampleExplicitLod         OpCode = 88
	OpImageSampleDrefImplicitLod     OpCode = 89
	OpImageSampleDrefExplicitLod     OpCode = 90
	OpImageSampleProjImplicitLod     OpCode = 91
	OpImageSampleProjExplicitLod     OpCode = 92
	OpImageSampleProjDrefImplicitLod OpCode = 93
	OpImageSampleProjDrefExplicitLod OpCode = 94
	OpImageFetch                     OpCode = 95
	OpImageGather                    OpCode = 96
	OpImageDrefGather                OpCode = 97
	OpImageRead                      OpCode = 98
	OpImageWrite                     OpCode = 99
	OpImage                          OpCode = 100
	OpImageQueryFormat               OpCode = 101
	OpImageQueryOrder                OpCode = 102
	OpImageQuerySizeLod              OpCode = 103
	OpImageQuerySize                 OpCode = 104
	OpImageQueryLod                  OpCode = 105
	OpImageQueryLevels               OpCode = 106
	OpImageQuerySamples              OpCode = 107

	// Conversions
	OpConvertFToU              OpCode = 109
	OpConvertFToS              OpCode = 110
	OpConvertSToF              OpCode = 111
	OpConvertUToF              OpCode = 112
	OpUConvert                 OpCode = 113
	OpSConvert                 OpCode = 114
	OpFConvert                 OpCode = 115
	OpQuantizeToF16            OpCode = 116
	OpConvertPtrToU            OpCode = 117
	OpSatConvertSToU           OpCode = 118
	OpSatConvertUToS           OpCode = 119
	OpConvertUToPtr            OpCode = 120
	OpPtrCastToGeneric         OpCode = 121
	OpGenericCastToPtr         OpCode = 122
	OpGenericCastToPtrExplicit OpCode = 123
	OpBitcast                  OpCode = 124

	// Arithmetic
	OpSNegate           OpCode = 126
	OpFNegate           OpCode = 127
	OpIAdd              OpCode = 128
	OpFAdd              OpCode = 129
	OpISub              OpCode = 130
	OpFSub              OpCode = 131
	OpIMul              OpCode = 132
	OpFMul              OpCode = 133
	OpUDiv              OpCode = 134
	OpSDiv              OpCode = 135
	OpFDiv              OpCode = 136
	OpUMod              OpCode = 137
	OpSRem              OpCode = 138
	OpSMod              OpCode = 139
	OpFRem              OpCode = 140
	OpFMod              OpCode = 141
	OpVectorTimesScalar OpCode = 142
	OpMatrixTimesScalar OpCode = 143
	OpVectorTimesMatrix OpCode = 144
	OpMatrixTimesVector OpCode = 145
	OpMatrixTimesMatrix OpCode = 146
	OpOuterProduct      OpCode = 147
	OpDot               OpCode = 148
	OpIAddCarry         OpCode = 149
	OpISubBorrow        OpCode = 150
	OpUMulExtended      OpCode = 151
	OpSMulExtended      OpCode = 152

	// Relational and logical
	OpAny                    OpCode = 154
	OpAll                    OpCode = 155
	OpIsNan                  OpCode = 156
	OpIsInf                  OpCode = 157
	OpIsFinite               OpCode = 158
	OpIsNormal               OpCode = 159
	OpSignBitSet             OpCode = 160
	OpLessOrGreater          OpCode = 161
	OpOrdered                OpCode = 162
	OpUnordered              OpCode = 163
	OpLogicalEqual           OpCode = 164
	OpLogicalNotEqual        OpCode = 165
	OpLogicalOr              OpCode = 166
	OpLogicalAnd             OpCode = 167
	OpLogicalNot             OpCode = 168
	OpSelect                 OpCode = 169
	OpIEqual                 OpCode = 170
	OpINotEqual              OpCode = 171
	OpUGreaterThan           OpCode = 172
	OpSGreaterThan           OpCode = 173
	OpUGreaterThanEqual      OpCode = 174
	OpSGreaterThanEqual      OpCode = 175
	OpULessThan              OpCode = 176
	OpSLessThan              OpCode = 177
	OpULessThanEqual         OpCode = 178
	OpSLessThanEqual         OpCode = 179
	OpFOrdEqual              OpCode = 180
	OpFUnordEqual            OpCode = 181
	OpFOrdNotEqual           OpCode = 182
	OpFUnordNotEqual         OpCode = 183
	OpFOrdLessThan           OpCode = 184
	OpFUnordLessThan         OpCode = 185
	OpFOrdGreaterThan        OpCode = 186
	OpFUnordGreaterThan      OpCode = 187
	OpFOrdLessThanEqual      OpCode = 188
	OpFUnordLessThanEqual    OpCode = 189
	OpFOrdGreaterThanEqual   OpCode = 190
	OpFUnordGreaterThanEqual OpCode = 191

	// Bit
	OpShiftRightLogical    OpCode = 194
	OpShiftRightArithmetic OpCode = 195
	OpShiftLeftLogical     OpCode = 196
	OpBitwiseOr            OpCode = 197
	OpBitwiseXor           OpCode = 198
	OpBitwiseAnd           OpCode = 199
	OpNot                  OpCode = 200
	OpBitFieldInsert       OpCode = 201
	OpBitFieldSExtract     OpCode = 202
	OpBitFieldUExtract     OpCode = 203
	OpBitReverse           OpCode = 204
	OpBitCount             OpCode = 205

	// Derivatives
	OpDPdx         OpCode = 207
	OpDPdy         OpCode = 208
	OpFwidth       OpCode = 209
	OpDPdxFine     OpCode = 210
	OpDPdyFine     OpCode = 211
	OpFwidthFine   OpCode = 212
	OpDPdxCoarse   OpCode = 213
	OpDPdyCoarse   OpCode = 214
	OpFwidthCoarse OpCode = 215

	// Primitives and barriers
	OpEmitVertex         OpCode = 218
	OpEndPrimitive       OpCode = 219
	OpEmitStreamVertex   OpCode = 220
	OpEndStreamPrimitive OpCode = 221
	OpControlBarrier     OpCode = 224
	OpMemoryBarrier      OpCode = 225

	// Atomics
	OpAtomicLoad                OpCode = 227
	OpAtomicStore               OpCode = 228
	OpAtomicExchange            OpCode = 229
	OpAtomicCompareExchange     OpCode = 230
	OpAtomicCompareExchangeWeak OpCode = 231
	OpAtomicIIncrement          OpCode = 232
	OpAtomicIDecrement          OpCode = 233
	OpAtomicIAdd                OpCode = 234
	OpAtomicISub                OpCode = 235
	OpAtomicSMin                OpCode = 236
	OpAtomicUMin                OpCode = 237
	OpAtomicSMax                OpCode = 238
	OpAtomicUMax                OpCode = 239
	OpAtomicAnd                 OpCode = 240
	OpAtomicOr                  OpCode = 241
	OpAtomicXor                 OpCode = 242

	// Control flow
	OpPhi               OpCode = 245
	OpLoopMerge         OpCode = 246
	OpSelectionMerge    OpCode = 247
	OpLabel             OpCode = 248
	OpBranch            OpCode = 249
	OpBranchConditional OpCode = 250
	OpSwitch            OpCode = 251
	OpKill              OpCode = 252
	OpReturn            OpCode = 253
	OpReturnValue       OpCode = 254
	OpUnreachable       OpCode = 255
	OpLifetimeStart     OpCode = 256
	OpLifetimeStop      OpCode = 257

	// Groups
	OpGroupAsyncCopy  OpCode = 259
	OpGroupWaitEvents OpCode = 260
	OpGroupAll        OpCode = 261
	OpGroupAny        OpCode = 262
	OpGroupBroadcast  OpCode = 263
	OpGroupIAdd       OpCode = 264
	OpGroupFAdd       OpCode = 265
	OpGroupFMin       OpCode = 266
	OpGroupUMin       OpCode = 267
	OpGroupSMin       OpCode = 268
	OpGroupFMax       OpCode = 269
	OpGroupUMax       OpCode = 270
	OpGroupSMax       OpCode = 271

	// Pipes
	OpReadPipe                     OpCode = 274
	OpWritePipe                    OpCode = 275
	OpReservedReadPipe             OpCode = 276
	OpReservedWritePipe            OpCode = 277
	OpReserveReadPipePackets       OpCode = 278
	OpReserveWritePipePackets      OpCode = 279
	OpCommitReadPipe               OpCode = 280
	OpCommitWritePipe              OpCode = 281
	OpIsValidReserveId             OpCode = 282
	OpGetNumPipePackets            OpCode = 283
	OpGetMaxPipePackets            OpCode = 284
	OpGroupReserveReadPipePackets  OpCode = 285
	OpGroupReserveWritePipePackets OpCode = 286
	OpGroupCommitReadPipe          OpCode = 287
	OpGroupCommitWritePipe         OpCode = 288

	// Device-side enqueue
	OpEnqueueMarker                           OpCode = 291
	OpEnqueueKernel                           OpCode = 292
	OpGetKernelNDrangeSubGroupCount           OpCode = 293
	OpGetKernelNDrangeMaxSubGroupSize         OpCode = 294
	OpGetKernelWorkGroupSize                  OpCode = 295
	OpGetKernelPreferredWorkGroupSizeMultiple OpCode = 296
	OpRetainEvent                             OpCode = 297
	OpReleaseEvent                            OpCode = 298
	OpCreateUserEvent                         OpCode = 299
	OpIsValidEvent                            OpCode = 300
	OpSetUserEventStatus                      OpCode = 301
	OpCaptureEventProfilingInfo               OpCode = 302
	OpGetDefaultQueue                         OpCode = 303
	OpBuildNDRange                            OpCode = 304

	// Sparse images
	OpImageSparseSampleImplicitLod         OpCode = 305
	OpImageSparseSampleExplicitLod         OpCode = 306
	OpImageSparseSampleDrefImplicitLod     OpCode = 307
	OpImageSparseSampleDrefExplicitLod     OpCode = 308
	OpImageSparseSampleProjImplicitLod     OpCode = 309
	OpImageSparseSampleProjExplicitLod     OpCode = 310
	OpImageSparseSampleProjDrefImplicitLod OpCode = 311
	OpImageSparseSampleProjDrefExplicitLod OpCode = 312
	OpImageSparseFetch                     OpCode = 313
	OpImageSparseGather                    OpCode = 314
	OpImageSparseDrefGather                OpCode = 315
	OpImageSparseTexelsResident            OpCode = 316
	OpNoLine                               OpCode = 317
	OpAtomicFlagTestAndSet                 OpCode = 318
	OpAtomicFlagClear                      OpCode = 319
	OpImageSparseRead                      OpCode = 320

	// 1.1 and 1.2
	OpSizeOf                             OpCode = 321
	OpTypePipeStorage                    OpCode = 322
	OpConstantPipeStorage                OpCode = 323
	OpCreatePipeFromPipeStorage          OpCode = 324
	OpGetKernelLocalSizeForSubgroupCount OpCode = 325
	OpGetKernelMaxNumSubgroups           OpCode = 326
	OpTypeNamedBarrier                   OpCode = 327
	OpNamedBarrierInitialize             OpCode = 328
	OpMemoryNamedBarrier                 OpCode = 329
	OpModuleProcessed                    OpCode = 330
	OpExecutionModeId                    OpCode = 331
	OpDecorateId                         OpCode = 332

	// Non-uniform groups
	OpGroupNonUniformElect            OpCode = 333
	OpGroupNonUniformAll              OpCode = 334
	OpGroupNonUniformAny              OpCode = 335
	OpGroupNonUniformAllEqual         OpCode = 336
	OpGroupNonUniformBroadcast        OpCode = 337
	OpGroupNonUniformBroadcastFirst   OpCode = 338
	OpGroupNonUniformBallot           OpCode = 339
	OpGroupNonUniformInverseBallot    OpCode = 340
	OpGroupNonUniformBallotBitExtract OpCode = 341
	OpGroupNonUniformBallotBitCount   OpCode = 342
	OpGroupNonUniformBallotFindLSB    OpCode = 343
	OpGroupNonUniformBallotFindMSB    OpCode = 344
	OpGroupNonUniformShuffle          OpCode = 345
	OpGroupNonUniformShuffleXor       OpCode = 346
	OpGroupNonUniformShuffleUp        OpCode = 347
	OpGroupNonUniformShuffleDown      OpCode = 348
	OpGroupNonUniformIAdd             OpCode = 349
	OpGroupNonUniformFAdd             OpCode = 350
	OpGroupNonUniformIMul             OpCode = 351
	OpGroupNonUniformFMul             OpCode = 352
	OpGroupNonUniformSMin             OpCode = 353
	OpGroupNonUniformUMin             OpCode = 354
	OpGroupNonUniformFMin             OpCode = 355
	OpGroupNonUniformSMax             OpCode = 356
	OpGroupNonUniformUMax             OpCode = 357
	OpGroupNonUniformFMax             OpCode = 358
	OpGroupNonUniformBitwiseAnd       OpCode = 359
	OpGroupNonUniformBitwiseOr        OpCode = 360
	OpGroupNonUniformBitwiseXor       OpCode = 361
	OpGroupNonUniformLogicalAnd       OpCode = 362
	OpGroupNonUniformLogicalOr        OpCode = 363
	OpGroupNonUniformLogicalXor       OpCode = 364
	OpGroupNonUniformQuadBroadcast    OpCode = 365
	OpGroupNonUniformQuadSwap         OpCode = 366

	// 1.4
	OpCopyLogical OpCode = 400
	OpPtrEqual    OpCode = 401
	OpPtrNotEqual OpCode = 402
	OpPtrDiff     OpCode = 403

	// KHR and EXT
	OpTerminateInvocation                OpCode = 4416
	OpSubgroupBallotKHR                  OpCode = 4421
	OpSubgroupFirstInvocationKHR         OpCode = 4422
	OpSubgroupAllKHR                     OpCode = 4428
	OpSubgroupAnyKHR                     OpCode = 4429
	OpSubgroupAllEqualKHR                OpCode = 4430
	OpGroupNonUniformRotateKHR           OpCode = 4431
	OpSubgroupReadInvocationKHR          OpCode = 4432
	OpExtInstWithForwardRefsKHR          OpCode = 4433
	OpTraceRayKHR                        OpCode = 4445
	OpExecuteCallableKHR                 OpCode = 4446
	OpConvertUToAccelerationStructureKHR OpCode = 4447
	OpIgnoreIntersectionKHR              OpCode = 4448
	OpTerminateRayKHR                    OpCode = 4449
	OpSDot                               OpCode = 4450
	OpSDotKHR                            OpCode = 4450
	OpUDot                               OpCode = 4451
	OpUDotKHR                            OpCode = 4451
	OpSUDot                              OpCode = 4452
	OpSUDotKHR                           OpCode = 4452
	OpSDotAccSat                         OpCode = 4453
	OpSDotAccSatKHR                      OpCode = 4453
	OpUDotAccSat                         OpCode = 4454
	OpUDotAccSatKHR                      OpCode = 4454
	OpSUDotAccSat                        OpCode = 4455
	OpSUDotAccSatKHR                     OpCode = 4455
	OpTypeRayQueryKHR                    OpCode = 4472
	OpRayQueryInitializeKHR              OpCode = 4473
	OpRayQueryTerminateKHR               OpCode = 4474
	OpRayQueryGenerateIntersectionKHR    OpCode = 4475
	OpRayQueryConfirmIntersectionKHR     OpCode = 4476
	OpRayQueryProceedKHR                 OpCode = 4477
	OpRayQueryGetIntersectionTypeKHR     OpCode = 4479

	// AMD
	OpGroupIAddNonUniformAMD OpCode = 5000
	OpGroupFAddNonUniformAMD OpCode = 5001
	OpGroupFMinNonUniformAMD OpCode = 5002
	OpGroupUMinNonUniformAMD OpCode = 5003
	OpGroupSMinNonUniformAMD OpCode = 5004
	OpGroupFMaxNonUniformAMD OpCode = 5005
	OpGroupUMaxNonUniformAMD OpCode = 5006
	OpGroupSMaxNonUniformAMD OpCode = 5007
	OpFragmentMaskFetchAMD   OpCode = 5011
	OpFragmentFetchAMD       OpCode = 5012
	OpReadClockKHR           OpCode = 5056

	// Mesh shading and ray tracing
	OpEmitMeshTasksEXT                                  OpCode = 5294
	OpSetMeshOutputsEXT                                 OpCode = 5295
	OpGroupNonUniformPartitionNV                        OpCode = 5296
	OpWritePackedPrimitiveIndices4x8NV                  OpCode = 5299
	OpReportIntersectionKHR                             OpCode = 5334
	OpReportIntersectionNV                              OpCode = 5334
	OpIgnoreIntersectionNV                              OpCode = 5335
	OpTerminateRayNV                                    OpCode = 5336
	OpTraceNV                                           OpCode = 5337
	OpTraceMotionNV                                     OpCode = 5338
	OpTraceRayMotionNV                                  OpCode = 5339
	OpRayQueryGetIntersectionTriangleVertexPositionsKHR OpCode = 5340
	OpTypeAccelerationStructureKHR                      OpCode = 5341
	OpTypeAccelerationStructureNV                       OpCode = 5341
	OpExecuteCallableNV                                 OpCode = 5344
	OpBeginInvocationInterlockEXT                       OpCode = 5364
	OpEndInvocationInterlockEXT                         OpCode = 5365
	OpDemoteToHelperInvocation                          OpCode = 5380
	OpDemoteToHelperInvocationEXT                       OpCode = 5380
	OpIsHelperInvocationEXT                             OpCode = 5381

	// INTEL
	OpSubgroupShuffleINTEL         OpCode = 5571
	OpSubgroupShuffleDownINTEL     OpCode = 5572
	OpSubgroupShuffleUpINTEL       OpCode = 5573
	OpSubgroupShuffleXorINTEL      OpCode = 5574
	OpSubgroupBlockReadINTEL       OpCode = 5575
	OpSubgroupBlockWriteINTEL      OpCode = 5576
	OpSubgroupImageBlockReadINTEL  OpCode = 5577
	OpSubgroupImageBlockWriteINTEL OpCode = 5578

	// Float atomics, assumptions and string decorations
	OpAtomicFMinEXT              OpCode = 5614
	OpAtomicFMaxEXT              OpCode = 5615
	OpAssumeTrueKHR              OpCode = 5630
	OpExpectKHR                  OpCode = 5631
	OpDecorateString             OpCode = 5632
	OpDecorateStringGOOGLE       OpCode = 5632
	OpMemberDecorateString       OpCode = 5633
	OpMemberDecorateStringGOOGLE OpCode = 5633
	OpAtomicFAddEXT              OpCode = 6035
)
