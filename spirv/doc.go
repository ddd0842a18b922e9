// Package spirv encodes SPIR-V modules from a declarative instruction table.
//
// SPIR-V is the standard intermediate language for GPU shaders,
// used by Vulkan, OpenCL, and other APIs.
//
// # Instruction Table
//
// Every supported opcode is one InstructionSpec row: its numeric code, its
// mnemonic and its operand signature. Cross-vendor synonyms such as SDot and
// SDotKHR are separate rows sharing one code.
//
//	spec, _ := spirv.Lookup("IAdd")
//	fmt.Println(spec) // OpIAdd IdResultType IdResult IdRef IdRef
//
// # Operands
//
// Operand values are built at the call site and checked against the
// signature slot they fill:
//
//	spirv.Ref(id)                                   // %id
//	spirv.Lit(32), spirv.LitF32(1.5)                // literals
//	spirv.Str("main")                               // nul-terminated string
//	spirv.Enum(spirv.DecorationBuiltIn,
//		spirv.Enum(spirv.BuiltInPosition))          // enumerant with parameter
//	spirv.Opt(x), spirv.None()                      // trailing optional
//	spirv.Refs(a, b), spirv.List(x, y)              // variadic tail
//	spirv.Pairs(spirv.P(v, label))                  // paired tail
//
// # Encoders
//
// BinaryEncoder and TextEncoder implement the same Encoder interface over
// one shared lowering, so the word stream and the disassembly text always
// agree on operand order and presence:
//
//	bin := spirv.NewBinaryEncoder(spirv.DefaultOptions())
//	txt := spirv.NewTextEncoder(spirv.DefaultOptions())
//	enc := spirv.MultiEncoder(bin, txt)
//
//	enc.AddMetadata(spirv.MagicNumber, spirv.Version1_3.Word(), 0, 8, 0)
//	enc.Emit("Capability", spirv.Enum(spirv.CapabilityShader))
//	enc.EmitOp(spirv.OpMemoryModel,
//		spirv.Enum(spirv.AddressingModelLogical),
//		spirv.Enum(spirv.MemoryModelGLSL450))
//
//	data, err := bin.Bytes()
//	text, err := txt.Text()
//
// The encoders accept instructions in the order given. They never allocate
// ids, never reorder sections and never check opcode semantics.
//
// # Binary Layout
//
// Word 0 of every instruction holds the opcode in its low 16 bits and the
// total word count in its high 16 bits. A module starts with five header
// words: magic, version, generator, id bound and schema. Words are
// little-endian unless Options.WordOrder says otherwise.
//
// # Errors
//
// Failures are *Error values carrying an ErrorKind, the mnemonic and the
// index of the failing operand. A failed emit appends nothing.
//
// # References
//
// SPIR-V Specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
package spirv
