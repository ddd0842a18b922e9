package spirv

import (
	"encoding/binary"
	"math"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeString_Padding(t *testing.T) {
	tests := []struct {
		in    string
		words int
	}{
		{"", 1},
		{"a", 1},
		{"abc", 1},
		{"main", 2},
		{"GLSL.std.450", 4},
		{"héllo", 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			words, err := encodeString(tt.in)
			require.NoError(t, err)
			assert.Len(t, words, tt.words)
			assert.Equal(t, (len(tt.in)+1+3)/4, len(words))

			buf := make([]byte, len(words)*4)
			for i, w := range words {
				binary.LittleEndian.PutUint32(buf[i*4:], w)
			}
			assert.Equal(t, tt.in, string(buf[:len(tt.in)]))
			for _, c := range buf[len(tt.in):] {
				assert.Zero(t, c)
			}
		})
	}
}

func TestEncodeString_MainBytes(t *testing.T) {
	words, err := encodeString("main")
	require.NoError(t, err)
	require.Len(t, words, 2)

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:], words[0])
	binary.LittleEndian.PutUint32(buf[4:], words[1])
	assert.Equal(t, []byte{'m', 'a', 'i', 'n', 0, 0, 0, 0}, buf)
	assert.Equal(t, uint32(0x6e69616d), words[0])
}

func TestEncodeString_Errors(t *testing.T) {
	_, err := encodeString("bad\xff")
	assert.ErrorIs(t, err, errInvalidUTF8)

	_, err = encodeString("a\x00b")
	assert.ErrorIs(t, err, errInteriorNUL)

	long := make([]byte, maxStringWords*4)
	for i := range long {
		long[i] = 'x'
	}
	_, err = encodeString(string(long))
	assert.ErrorIs(t, err, errStringTooLong)
}

func TestDecodeString(t *testing.T) {
	words, err := encodeString("GLSL.std.450")
	require.NoError(t, err)
	words = append(words, 0xdeadbeef)

	s, n, err := decodeString(words)
	require.NoError(t, err)
	assert.Equal(t, "GLSL.std.450", s)
	assert.Equal(t, 4, n)

	_, _, err = decodeString([]uint32{0x41414141})
	assert.ErrorIs(t, err, errUnterminated)
}

func TestEncodeNumber_LowWordFirst(t *testing.T) {
	assert.Equal(t, []uint32{7}, encodeNumber(7, 32))
	assert.Equal(t, []uint32{0x89abcdef, 0x01234567}, encodeNumber(0x0123456789abcdef, 64))

	bits := math.Float64bits(1.0)
	assert.Equal(t, []uint32{0, 0x3ff00000}, encodeNumber(bits, 64))
}

func TestQuoteString(t *testing.T) {
	assert.Equal(t, `"main"`, quoteString("main"))
	assert.Equal(t, `"a\"b"`, quoteString(`a"b`))
	assert.Equal(t, `"c:\\dir"`, quoteString(`c:\dir`))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		op   Operand
		want string
	}{
		{"uint", Lit(42), "42"},
		{"negative int", LitInt(-5), "-5"},
		{"uint64", LitU64(1 << 40), "1099511627776"},
		{"int64", LitI64(-1 << 40), "-1099511627776"},
		{"float32", LitF32(1.5), "1.5"},
		{"float32 fraction", LitF32(0.1), "0.1"},
		{"float64", LitF64(-2.25), "-2.25"},
		{"float32 million", LitF32(1e6), "1000000"},
		{"float64 large", LitF64(1e20), "100000000000000000000"},
		{"float64 exponent", LitF64(1e21), "1e+21"},
		{"float32 small", LitF32(0.0001), "0.0001"},
		{"float64 tiny", LitF64(1e-7), "1e-07"},
		{"float64 zero", LitF64(0), "0"},
		{"float64 inf", LitF64(math.Inf(1)), "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumber(tt.op))
		})
	}
}

func FuzzStringPadding(f *testing.F) {
	f.Add("")
	f.Add("main")
	f.Add("GLSL.std.450")
	f.Fuzz(func(t *testing.T, s string) {
		words, err := encodeString(s)
		if !utf8.ValidString(s) || containsNUL(s) {
			if err == nil {
				t.Fatalf("expected error for %q", s)
			}
			return
		}
		if err != nil {
			t.Fatalf("encodeString(%q): %v", s, err)
		}
		if want := (len(s) + 4) / 4; len(words) != want {
			t.Fatalf("len(words) = %d, want %d", len(words), want)
		}
		if last := words[len(words)-1]; last>>24 != 0 {
			t.Fatalf("last byte of %q is not zero", s)
		}
		got, n, err := decodeString(words)
		if err != nil || got != s || n != len(words) {
			t.Fatalf("decodeString = %q, %d, %v", got, n, err)
		}
	})
}

func containsNUL(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return true
		}
	}
	return false
}
