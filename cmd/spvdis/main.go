// Command spvdis disassembles SPIR-V binaries into .spvasm text.
//
// Usage:
//
//	spvdis [options] <file.spv>
//
// Examples:
//
//	spvdis shader.spv                 # Aligned text, colored on a terminal
//	spvdis -raw shader.spv            # One instruction per line, no alignment
//	spvdis -i shader.spv              # Scrollable viewer
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gogpu/spvgen/spirv"
)

var (
	interactive = flag.Bool("i", false, "browse the disassembly in a scrollable viewer")
	colorMode   = flag.String("color", "auto", "colorize output: auto, always or never")
	raw         = flag.Bool("raw", false, "do not align result ids")
	skipUnknown = flag.Bool("skip-unknown", false, "skip instructions missing from the opcode table")
	verbose     = flag.Bool("v", false, "log decoder events to stderr")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = dev
	}
	defer func() { _ = log.Sync() }()

	lines, err := disassemble(args[0], log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(args[0], lines); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	color, err := useColor(*colorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p := newPalette(color)
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(p.line(line))
		b.WriteByte('\n')
	}
	if _, err := os.Stdout.WriteString(b.String()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// disassemble decodes the file and returns its text lines, aligned unless
// -raw is set.
func disassemble(path string, log *zap.Logger) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	txt := spirv.NewTextEncoder(spirv.Options{Logger: log})
	if err := spirv.Decode(data, txt, spirv.DecodeOptions{SkipUnknown: *skipUnknown, Logger: log}); err != nil {
		return nil, err
	}
	text, err := txt.Text()
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if !*raw {
		for i, line := range lines {
			lines[i] = align(line)
		}
	}
	return lines, nil
}

func useColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("invalid -color value %q", mode)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: spvdis [options] <file.spv>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  spvdis shader.spv         Disassemble to stdout\n")
	fmt.Fprintf(os.Stderr, "  spvdis -i shader.spv      Browse interactively\n")
}
