package spirv

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxStringWords is the largest string that still leaves room for the
// opcode word inside one instruction.
const maxStringWords = MaxWordCount - 1

var (
	errInvalidUTF8   = errors.New("string is not valid UTF-8")
	errInteriorNUL   = errors.New("string contains a NUL byte")
	errStringTooLong = errors.New("string does not fit in one instruction")
	errUnterminated  = errors.New("string is missing its NUL terminator")
)

func float32bits(f float32) uint32 { return math.Float32bits(f) }

func float64bits(f float64) uint64 { return math.Float64bits(f) }

// stringWords is the number of words a string of n bytes occupies:
// the bytes, one NUL, then zero padding to the next word boundary.
func stringWords(n int) int {
	return n/4 + 1
}

// encodeString packs s as a nul-terminated UTF-8 literal.
// Bytes fill each word from the least significant end.
func encodeString(s string) ([]uint32, error) {
	if !utf8.ValidString(s) {
		return nil, errInvalidUTF8
	}
	if strings.IndexByte(s, 0) >= 0 {
		return nil, errInteriorNUL
	}
	n := stringWords(len(s))
	if n > maxStringWords {
		return nil, errStringTooLong
	}
	words := make([]uint32, n)
	for i := 0; i < len(s); i++ {
		words[i/4] |= uint32(s[i]) << (8 * uint(i%4))
	}
	return words, nil
}

// decodeString reads a literal string from the front of words and reports
// how many words it consumed.
func decodeString(words []uint32) (string, int, error) {
	var b strings.Builder
	for i, w := range words {
		for shift := uint(0); shift < 32; shift += 8 {
			c := byte(w >> shift)
			if c == 0 {
				s := b.String()
				if !utf8.ValidString(s) {
					return "", 0, errInvalidUTF8
				}
				return s, i + 1, nil
			}
			b.WriteByte(c)
		}
	}
	return "", 0, errUnterminated
}

// encodeNumber splits a literal into words, low-order word first.
func encodeNumber(bits uint64, width int) []uint32 {
	if width > 32 {
		return []uint32{uint32(bits), uint32(bits >> 32)}
	}
	return []uint32{uint32(bits)}
}

// numberWords is the word footprint of a literal of the given bit width.
func numberWords(width int) int {
	if width > 32 {
		return 2
	}
	return 1
}

// quoteString renders s as a text literal, escaping quotes and backslashes.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

func formatID(id ID) string {
	return "%" + strconv.FormatUint(uint64(id), 10)
}

// formatNumber renders an integer or float operand in decimal.
func formatNumber(o Operand) string {
	if o.tag == TagFloat {
		if o.width > 32 {
			return formatFloat(math.Float64frombits(o.bits), 64)
		}
		return formatFloat(float64(math.Float32frombits(uint32(o.bits))), 32)
	}
	if o.signed {
		if o.width > 32 {
			return strconv.FormatInt(int64(o.bits), 10)
		}
		return strconv.FormatInt(int64(int32(uint32(o.bits))), 10)
	}
	return strconv.FormatUint(o.bits, 10)
}

// formatFloat prints the shortest decimal that round-trips at bitSize,
// switching to exponent form only outside [1e-6, 1e21).
func formatFloat(f float64, bitSize int) string {
	if abs := math.Abs(f); abs != 0 && !math.IsInf(f, 0) && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// leaf is one lowered operand: the words it contributes to the binary
// stream and the token it contributes to the text line.
type leaf struct {
	words []uint32
	token string
}

func lowerID(o Operand) leaf {
	return leaf{words: []uint32{uint32(o.bits)}, token: formatID(ID(o.bits))}
}

func lowerNumber(o Operand) leaf {
	return leaf{words: encodeNumber(o.bits, int(o.width)), token: formatNumber(o)}
}

func lowerString(o Operand) (leaf, error) {
	words, err := encodeString(o.str)
	if err != nil {
		return leaf{}, err
	}
	return leaf{words: words, token: quoteString(o.str)}, nil
}

func lowerEnumerant(o Operand) leaf {
	v := uint32(o.bits)
	return leaf{words: []uint32{v}, token: FormatEnumerant(o.enum, v)}
}

// lowerSpecOp renders the opcode embedded in OpSpecConstantOp by name.
func lowerSpecOp(o Operand) leaf {
	v := uint32(o.bits)
	token := strconv.FormatUint(uint64(v), 10)
	if v <= math.MaxUint16 {
		if spec, ok := LookupOpCode(OpCode(v)); ok {
			token = spec.Name
		}
	}
	return leaf{words: []uint32{v}, token: token}
}
