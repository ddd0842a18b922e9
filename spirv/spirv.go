package spirv

import (
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sys/cpu"
)

// ID names a result, a type, or a forward reference inside a module.
// IDs are plain values; the encoder never allocates or tracks them.
type ID uint32

// Version represents a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions
var (
	Version1_0 = Version{1, 0}
	Version1_2 = Version{1, 2}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// Word returns the header word for the version: 0 | major | minor | 0.
func (v Version) Word() uint32 {
	return (uint32(v.Major) << 16) | (uint32(v.Minor) << 8)
}

// String returns "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// VersionFromWord splits a header version word.
func VersionFromWord(w uint32) Version {
	return Version{Major: uint8(w >> 16), Minor: uint8(w >> 8)}
}

// SPIR-V magic number and constants
const (
	MagicNumber = 0x07230203
	GeneratorID = 0x00000000 // Unregistered generator

	// HeaderWords is the size of the module preamble.
	HeaderWords = 5

	// MaxWordCount is the largest word count the 16-bit field can hold.
	MaxWordCount = 0xFFFF
)

// OpCode represents a SPIR-V opcode.
type OpCode uint16

// WordOrder selects the byte order used when words are serialized.
type WordOrder uint8

const (
	// LittleEndian is the order every known consumer expects.
	LittleEndian WordOrder = iota

	// BigEndian is accepted by consumers that check the magic number.
	BigEndian

	// HostEndian follows the byte order of the machine running the encoder.
	HostEndian
)

// String returns the order name.
func (o WordOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	case HostEndian:
		return "host-endian"
	default:
		return fmt.Sprintf("WordOrder(%d)", uint8(o))
	}
}

// ByteOrder resolves the order to a concrete encoding/binary order.
func (o WordOrder) ByteOrder() binary.ByteOrder {
	switch o {
	case BigEndian:
		return binary.BigEndian
	case HostEndian:
		if cpu.IsBigEndian {
			return binary.BigEndian
		}
		return binary.LittleEndian
	default:
		return binary.LittleEndian
	}
}

// Options configures the encoders.
type Options struct {
	// WordOrder is the byte order of serialized words
	WordOrder WordOrder

	// Logger receives debug diagnostics; nil uses the package logger
	Logger *zap.Logger
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		WordOrder: LittleEndian,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return Logger()
}

// Header is the fixed five-word module preamble.
type Header struct {
	Magic     uint32
	Version   uint32
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// NewHeader returns a header for the given version with the standard magic
// number, the unregistered generator and a zero schema.
func NewHeader(version Version, bound uint32) Header {
	return Header{
		Magic:     MagicNumber,
		Version:   version.Word(),
		Generator: GeneratorID,
		Bound:     bound,
		Schema:    0,
	}
}

// Words returns the header in stream order.
func (h Header) Words() [HeaderWords]uint32 {
	return [HeaderWords]uint32{h.Magic, h.Version, h.Generator, h.Bound, h.Schema}
}

// Instruction is one emit call in listing form.
type Instruction struct {
	Name     string
	Operands []Operand
}
