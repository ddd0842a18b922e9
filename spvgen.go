// Package spvgen assembles SPIR-V modules from instruction listings.
//
// spvgen drives the binary and text encoders of the spirv package in
// lockstep, so one pass over a listing yields a module binary ready for a
// Vulkan or OpenCL consumer together with its disassembly-style text.
//
// Example usage:
//
//	listing := []spirv.Instruction{
//	    {Name: "Capability", Operands: []spirv.Operand{spirv.Enum(spirv.CapabilityShader)}},
//	    {Name: "MemoryModel", Operands: []spirv.Operand{
//	        spirv.Enum(spirv.AddressingModelLogical), spirv.Enum(spirv.MemoryModelGLSL450)}},
//	}
//	result, err := spvgen.Assemble(spirv.NewHeader(spirv.Version1_3, 1), listing, spvgen.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Listings can also be written as YAML, see the listing package:
//
//	result, err := spvgen.AssembleListing(data)
//
// For modules built programmatically, Builder allocates ids and orders
// instructions into the module's logical layout.
package spvgen

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gogpu/spvgen/listing"
	"github.com/gogpu/spvgen/spirv"
)

// Options configures assembly.
type Options struct {
	// WordOrder selects the byte order of the binary (default: little-endian)
	WordOrder spirv.WordOrder

	// Logger receives debug events from the encoders (default: spirv.Logger())
	Logger *zap.Logger
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{WordOrder: spirv.LittleEndian}
}

func (o Options) encoderOptions() spirv.Options {
	return spirv.Options{WordOrder: o.WordOrder, Logger: o.Logger}
}

// Result holds both representations of an assembled module.
type Result struct {
	Binary []byte
	Text   string
}

// Assemble encodes the header and every instruction of the listing into a
// binary module and its text form.
//
// Errors wrap the underlying *spirv.Error and name the index of the failing
// instruction.
func Assemble(h spirv.Header, instructions []spirv.Instruction, opts Options) (*Result, error) {
	bin := spirv.NewBinaryEncoder(opts.encoderOptions())
	txt := spirv.NewTextEncoder(opts.encoderOptions())
	enc := spirv.MultiEncoder(bin, txt)

	if err := enc.AddMetadata(h.Magic, h.Version, h.Generator, h.Bound, h.Schema); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	for i, inst := range instructions {
		if err := enc.Emit(inst.Name, inst.Operands...); err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	return finish(bin, txt)
}

// AssembleListing parses a YAML listing and assembles it with default options.
func AssembleListing(data []byte) (*Result, error) {
	return AssembleListingWithOptions(data, DefaultOptions())
}

// AssembleListingWithOptions parses a YAML listing and assembles it.
func AssembleListingWithOptions(data []byte, opts Options) (*Result, error) {
	l, err := listing.Parse(data)
	if err != nil {
		return nil, err
	}
	return Assemble(l.Header, l.Instructions, opts)
}

// Disassemble decodes a binary module into its text form.
func Disassemble(data []byte) (string, error) {
	txt := spirv.NewTextEncoder(spirv.DefaultOptions())
	if err := spirv.Decode(data, txt, spirv.DecodeOptions{}); err != nil {
		return "", err
	}
	return txt.Text()
}

func finish(bin *spirv.BinaryEncoder, txt *spirv.TextEncoder) (*Result, error) {
	data, err := bin.Bytes()
	if err != nil {
		return nil, err
	}
	text, err := txt.Text()
	if err != nil {
		return nil, err
	}
	return &Result{Binary: data, Text: text}, nil
}
