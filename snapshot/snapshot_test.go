// Package snapshot_test provides golden snapshot tests for the assembler.
//
// For each YAML listing in testdata/in/, the test assembles the binary and
// text forms in one pass and compares the text to golden files stored in
// testdata/golden/spvasm/. The binary is decoded back to text and must match
// the directly emitted text exactly.
//
// To regenerate golden files after intentional changes:
//
//	UPDATE_GOLDEN=1 go test ./snapshot/...
package snapshot_test

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/gogpu/spvgen"
	"github.com/gogpu/spvgen/spirv"
)

// ---------------------------------------------------------------------------
// Test Runner
// ---------------------------------------------------------------------------

// listingFile represents an input listing loaded from disk.
type listingFile struct {
	name string // base name without extension (e.g., "compute_switch")
	data []byte
}

// TestSnapshots is the main golden snapshot test.
func TestSnapshots(t *testing.T) {
	listings := loadListings(t, "testdata/in")
	if len(listings) == 0 {
		t.Fatal("no input listings found in testdata/in/")
	}

	for i := range listings {
		l := &listings[i]
		t.Run(l.name, func(t *testing.T) {
			result, err := spvgen.AssembleListing(l.data)
			if err != nil {
				t.Fatalf("assemble %s: %v", l.name, err)
			}

			t.Run("spvasm", func(t *testing.T) {
				compareGolden(t, filepath.Join("testdata", "golden", "spvasm", l.name+".spvasm"), result.Text)
			})

			t.Run("layout", func(t *testing.T) {
				checkLayout(t, result.Binary)
			})

			t.Run("decode", func(t *testing.T) {
				text, err := spvgen.Disassemble(result.Binary)
				if err != nil {
					t.Fatalf("decode: %v", err)
				}
				if text != result.Text {
					t.Errorf("decoded binary differs from emitted text:\n%s", diffStrings(result.Text, text))
				}
			})
		})
	}
}

// ---------------------------------------------------------------------------
// Listing Loading
// ---------------------------------------------------------------------------

func loadListings(t *testing.T, dir string) []listingFile {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read input directory %q: %v", dir, err)
	}

	var listings []listingFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, readErr := os.ReadFile(filepath.Join(dir, entry.Name()))
		if readErr != nil {
			t.Fatalf("read listing %q: %v", entry.Name(), readErr)
		}
		listings = append(listings, listingFile{name: strings.TrimSuffix(entry.Name(), ".yaml"), data: data})
	}

	// Sort for deterministic test order
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].name < listings[j].name
	})

	return listings
}

// checkLayout walks the instruction stream using only the word counts and
// requires it to end exactly at the end of the binary.
func checkLayout(t *testing.T, data []byte) {
	t.Helper()

	if len(data)%4 != 0 {
		t.Fatalf("binary length %d is not a multiple of 4", len(data))
	}
	words := len(data) / 4
	if words < spirv.HeaderWords {
		t.Fatalf("binary holds %d words, shorter than the header", words)
	}
	if magic := binary.LittleEndian.Uint32(data); magic != spirv.MagicNumber {
		t.Fatalf("magic = 0x%08x", magic)
	}

	pos := spirv.HeaderWords
	for pos < words {
		count := int(binary.LittleEndian.Uint32(data[pos*4:]) >> 16)
		if count == 0 {
			t.Fatalf("zero word count at word %d", pos)
		}
		pos += count
	}
	if pos != words {
		t.Errorf("instruction stream ends at word %d, binary holds %d", pos, words)
	}
}

// ---------------------------------------------------------------------------
// Golden File Comparison
// ---------------------------------------------------------------------------

func compareGolden(t *testing.T, path, actual string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			t.Fatalf("create golden dir: %v", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(actual), 0o644); wErr != nil {
			t.Fatalf("write golden file: %v", wErr)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Fatalf("golden file missing: %s\nRun with UPDATE_GOLDEN=1 to create.\n\nActual output:\n%s", path, truncate(actual, 500))
	}
	if err != nil {
		t.Fatalf("read golden file %s: %v", path, err)
	}

	// Git may convert \n to \r\n on Windows checkout.
	expectedStr := strings.ReplaceAll(string(expected), "\r\n", "\n")

	if expectedStr != actual {
		t.Errorf("output differs from golden %s:\n%s", path, diffStrings(expectedStr, actual))
	}
}

// diffStrings reports the first differing line with a few lines of context.
func diffStrings(expected, actual string) string {
	want := strings.Split(expected, "\n")
	got := strings.Split(actual, "\n")
	n := max(len(want), len(got))

	line := func(lines []string, i int) string {
		if i < len(lines) {
			return lines[i]
		}
		return ""
	}

	first := -1
	for i := 0; i < n; i++ {
		if line(want, i) != line(got, i) {
			first = i
			break
		}
	}
	if first < 0 {
		return "(no difference found)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "first difference at line %d (expected %d lines, got %d):\n\n", first+1, len(want), len(got))

	const context = 3
	for i := max(first-context, 0); i < min(first+context+1, n); i++ {
		e, a := line(want, i), line(got, i)
		if e == a {
			fmt.Fprintf(&sb, "  %4d %s\n", i+1, truncate(e, 120))
			continue
		}
		fmt.Fprintf(&sb, "- %4d %s\n", i+1, truncate(e, 120))
		fmt.Fprintf(&sb, "+ %4d %s\n", i+1, truncate(a, 120))
	}
	return sb.String()
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
