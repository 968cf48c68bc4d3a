package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jsnhynh/riscv-oom/assemble"
	"github.com/jsnhynh/riscv-oom/config"
	"github.com/jsnhynh/riscv-oom/listing"
	"github.com/jsnhynh/riscv-oom/parser"
	"github.com/jsnhynh/riscv-oom/tools"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		configPath  = flag.String("config", "", "Path to a TOML config file (default: platform config dir)")
		strictMode  = flag.Bool("strict", false, "Promote lint warnings to errors")
		outPath     = flag.String("o", "", "Output .hex path (default: input path with .hex extension)")
		showListing = flag.Bool("listing", false, "Print an assembly listing (address, hex word, source line) to stdout")
		browseMode  = flag.Bool("browse", false, "Open the interactive TUI listing viewer instead of exiting immediately")
		lintMode    = flag.Bool("lint", false, "Run static checks and print them to stderr as warnings")
		dumpSymbols = flag.Bool("dump-symbols", false, "Dump the label/constant tables after assembling")
		symbolsFile = flag.String("dump-symbols-file", "", "Symbol dump output file (default: stdout, used with -dump-symbols)")
		verboseMode = flag.Bool("verbose", false, "Verbose output")
	)

	flag.Usage = printHelp
	flag.Parse()

	if *showVersion {
		fmt.Printf("rv32asm %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp || flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rv32asm: %v\n", err)
		os.Exit(1)
	}
	if *strictMode {
		cfg.Assemble.Strict = true
	}

	inPath := flag.Arg(0)
	outputPath := *outPath
	if outputPath == "" && flag.NArg() > 1 {
		outputPath = flag.Arg(1)
	}
	if outputPath == "" {
		outputPath = defaultOutputPath(inPath)
	}

	if *verboseMode {
		fmt.Printf("Assembling: %s\n", inPath)
		fmt.Printf("Output to: %s\n", outputPath)
	}

	if _, err := os.Stat(inPath); err != nil {
		reportFatal(outputPath, parser.NewError(parser.Position{Filename: inPath}, parser.ErrorMissingInput, err.Error()))
	}

	if *lintMode {
		if runLint(inPath, cfg.Assemble.Strict) && cfg.Assemble.Strict {
			os.Exit(1)
		}
	}

	result, err := assemble.File(inPath, cfg)
	if err != nil {
		reportFatal(outputPath, err)
	}

	if err := writeOutput(outputPath, result, cfg); err != nil {
		reportFatal(outputPath, err)
	}

	if *showListing {
		if err := listing.Print(os.Stdout, result.Program, result.Words, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "rv32asm: error printing listing: %v\n", err)
			os.Exit(1)
		}
	}

	if *dumpSymbols {
		if err := dumpSymbolTable(result.Program, *symbolsFile); err != nil {
			fmt.Fprintf(os.Stderr, "rv32asm: error dumping symbols: %v\n", err)
			os.Exit(1)
		}
	}

	if *browseMode {
		if err := listing.Browse(result.Program, result.Words, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "rv32asm: browser error: %v\n", err)
			os.Exit(1)
		}
	}

	if *verboseMode {
		fmt.Printf("Wrote %d word(s)\n", len(result.Words))
	}
}

// loadConfig loads the config file at path, or the platform default
// location when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// defaultOutputPath implements spec.md §6's CLI rule: the output path
// is the input path with its extension replaced by .hex.
func defaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	return strings.TrimSuffix(inPath, ext) + ".hex"
}

// writeOutput runs S4 over result, writing the formatted word stream to
// outputPath.
func writeOutput(outputPath string, result *assemble.Result, cfg *config.Config) error {
	f, err := os.Create(outputPath) // #nosec G304 -- user-specified output path, mirrors input path trust level
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return assemble.Emit(f, result, cfg)
}

// reportFatal implements spec.md §7: a single diagnostic line to
// stderr, the output file removed or truncated, and a non-zero exit.
func reportFatal(outputPath string, err error) {
	fmt.Fprintf(os.Stderr, "rv32asm: %v\n", err)
	if info, statErr := os.Stat(outputPath); statErr == nil && !info.IsDir() {
		_ = os.Truncate(outputPath, 0)
	}
	os.Exit(1)
}

// runLint runs the static checker over inPath and writes its findings
// to stderr. It returns whether any finding was an error, which the
// caller treats as fatal only when strict is also set.
func runLint(inPath string, strict bool) bool {
	src, err := os.ReadFile(inPath) // #nosec G304 -- user-provided assembly file path, already validated to exist
	if err != nil {
		fmt.Fprintf(os.Stderr, "rv32asm: lint: %v\n", err)
		return false
	}
	opts := tools.DefaultLintOptions()
	opts.Strict = strict
	linter := tools.NewLinter(opts)
	issues := linter.Lint(string(src), filepath.Base(inPath))
	for _, issue := range issues {
		fmt.Fprintln(os.Stderr, issue.String())
	}
	return tools.HasErrors(issues)
}

func printHelp() {
	fmt.Printf(`rv32asm %s

Usage: rv32asm [options] <input.s> [<output.hex>]

A two-pass assembler for a subset of RV32IM: source in, one zero-padded
8-hex-digit machine word per line out.

Options:
  -help                 Show this help message
  -version              Show version information
  -config PATH          Path to a TOML config file (default: platform config dir)
  -strict               Promote lint warnings to errors
  -o PATH               Output .hex path (default: input path with .hex extension)
  -listing              Print an assembly listing (address, hex word, source) to stdout
  -browse               Open the interactive TUI listing viewer
  -lint                 Run static checks, printed to stderr as warnings
  -dump-symbols         Dump the label/constant tables after assembling
  -dump-symbols-file F  Symbol dump output file (default: stdout)
  -verbose              Verbose output

Examples:
  rv32asm program.s
  rv32asm program.s program.hex
  rv32asm -listing -o build/program.hex program.s
  rv32asm -browse program.s
  rv32asm -lint -strict program.s

On any fatal error, a single diagnostic line is written to stderr, the
output file (if any) is truncated to zero bytes, and the process exits
non-zero.
`, Version)
}

// dumpSymbolTable writes the label and constant tables in a readable
// format, mirroring the CSV-free plain-text style of -dump-symbols.
func dumpSymbolTable(program *parser.Program, filename string) error {
	var w *os.File
	var err error

	if filename == "" {
		w = os.Stdout
	} else {
		w, err = os.Create(filename) // #nosec G304 -- user-specified symbol dump path
		if err != nil {
			return fmt.Errorf("failed to create symbol file: %w", err)
		}
		defer func() {
			_ = w.Close()
		}()
	}

	fmt.Fprintln(w, "Labels")
	fmt.Fprintln(w, "======")
	labels := program.Labels.All()
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sym := labels[name]
		fmt.Fprintf(w, "%-30s 0x%08X\n", name, sym.Address)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Constants (.equ)")
	fmt.Fprintln(w, "================")
	constants := program.Constants.All()
	cnames := make([]string, 0, len(constants))
	for name := range constants {
		cnames = append(cnames, name)
	}
	sort.Strings(cnames)
	for _, name := range cnames {
		c := constants[name]
		fmt.Fprintf(w, "%-30s 0x%08X\n", name, c.Value)
	}

	return nil
}
