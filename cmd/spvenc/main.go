// Command spvenc assembles YAML instruction listings into SPIR-V.
//
// Usage:
//
//	spvenc [options] <listing.yaml>
//
// Examples:
//
//	spvenc shader.yaml                       # Print the text form
//	spvenc -o shader.spv shader.yaml         # Write the binary
//	spvenc -o shader.spv -S shader.spvasm shader.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gogpu/spvgen"
	"github.com/gogpu/spvgen/spirv"
)

var (
	output    = flag.String("o", "", "binary output file")
	textOut   = flag.String("S", "", "text output file (default: stdout when -o is not set)")
	bigEndian = flag.Bool("be", false, "write big-endian words")
	verbose   = flag.Bool("v", false, "log encoder events to stderr")
	version   = flag.Bool("version", false, "print version")
)

const spvencVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("spvenc version %s\n", spvencVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	if err := run(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath string) error {
	opts := spvgen.DefaultOptions()
	if *bigEndian {
		opts.WordOrder = spirv.BigEndian
	}
	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		opts.Logger = log
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	result, err := spvgen.AssembleListingWithOptions(source, opts)
	if err != nil {
		return err
	}

	if *output != "" {
		if err := os.WriteFile(*output, result.Binary, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Assembled %s to %s (%d bytes)\n", inputPath, *output, len(result.Binary))
	}

	switch {
	case *textOut != "":
		if err := os.WriteFile(*textOut, []byte(result.Text), 0o644); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	case *output == "":
		if _, err := os.Stdout.WriteString(result.Text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: spvenc [options] <listing.yaml>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  spvenc shader.yaml                 Print the text form\n")
	fmt.Fprintf(os.Stderr, "  spvenc -o shader.spv shader.yaml   Write the binary\n")
}
