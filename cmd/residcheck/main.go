// Command residcheck checks the resource ID values defined in one or more
// C4D-style .h files for uniqueness, suggests free ID values, and lists
// blocks of consecutively used IDs.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/fwilleke80/residcheck"
	"github.com/fwilleke80/residcheck/cmd/internal/cliutil"
	"github.com/fwilleke80/residcheck/resid"
)

// Exit codes.
const (
	exitOK         = 0 // success, no collisions
	exitError      = 1 // user error, unreadable path, or malformed header
	exitCollisions = 2 // analysis ran and found colliding IDs
)

const usage = `residcheck - resource ID checker for C4D-style headers

Usage:
  residcheck [options] PATH

PATH is a single .h file or a directory; in a directory every .h file
(extension matched case-insensitively) is analyzed independently.

Options:
  --minval V         Minimum ID value considered (default: 100)
  --floor V          Suggestion floor for empty headers (default: --minval)
  -u, --checkunique  Report IDs sharing the same value
  -s, --suggest      Suggest free ID values (gaps first, then after largest)
  -b, --showblocks   List blocks of consecutively used IDs
  --json             Output results as JSON
  -o, --output FILE  Write the report to FILE instead of stdout
  -v, --verbose      Enable debug logging
  -vv                Enable trace logging (implies -v)
  --version          Show version
  -h, --help         Show help

If none of -u, -s, -b is given, only the collision report runs.

Examples:
  residcheck res/c4d_symbols.h
  residcheck -u -s res/dialogs
  residcheck --minval 1000 -b res/c4d_symbols.h
  residcheck --json -s res > report.json
`

type cli struct {
	minVal      int
	floor       int
	checkUnique bool
	suggest     bool
	showBlocks  bool
	jsonOut     bool
	output      string
	verbose     int
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("residcheck", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	var c cli
	fs.IntVar(&c.minVal, "minval", residcheck.DefaultMinValue, "minimum ID value")
	fs.IntVar(&c.floor, "floor", 0, "suggestion floor for empty headers")
	fs.BoolVar(&c.checkUnique, "u", false, "report colliding IDs")
	fs.BoolVar(&c.checkUnique, "checkunique", false, "report colliding IDs")
	fs.BoolVar(&c.suggest, "s", false, "suggest free ID values")
	fs.BoolVar(&c.suggest, "suggest", false, "suggest free ID values")
	fs.BoolVar(&c.showBlocks, "b", false, "list ID blocks")
	fs.BoolVar(&c.showBlocks, "showblocks", false, "list ID blocks")
	fs.BoolVar(&c.jsonOut, "json", false, "JSON output")
	fs.StringVar(&c.output, "o", "", "output file")
	fs.StringVar(&c.output, "output", "", "output file")
	verbose := fs.Bool("v", false, "debug logging")
	fs.BoolVar(verbose, "verbose", false, "debug logging")
	trace := fs.Bool("vv", false, "trace logging")
	version := fs.Bool("version", false, "show version")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help {
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	}
	if *version {
		printVersion()
		return exitOK
	}

	if *verbose {
		c.verbose = 1
	}
	if *trace {
		c.verbose = 2
	}

	// Default report selection: collisions only.
	if !c.checkUnique && !c.suggest && !c.showBlocks {
		c.checkUnique = true
	}

	if fs.NArg() != 1 {
		cliutil.PrintError("expected exactly one PATH argument")
		fmt.Fprint(os.Stderr, usage)
		return exitError
	}
	path := fs.Arg(0)

	out, closeOut, err := cliutil.GetOutput(c.output)
	if err != nil {
		cliutil.PrintError("cannot open output: %v", err)
		return exitError
	}
	defer closeOut()

	return c.check(path, out)
}

// check analyzes path (file or directory) and writes the selected reports.
func (c *cli) check(path string, out io.Writer) int {
	info, err := os.Stat(path)
	if err != nil {
		cliutil.PrintError("path %q does not exist", path)
		return exitError
	}

	opts := []residcheck.Option{residcheck.WithMinValue(c.minVal)}
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, residcheck.WithLogger(logger))
	}

	var files []string
	if info.IsDir() {
		src, err := residcheck.Dir(path)
		if err != nil {
			cliutil.PrintError("cannot read directory %q: %v", path, err)
			return exitError
		}
		files, err = src.ListFiles()
		if err != nil {
			cliutil.PrintError("cannot read directory %q: %v", path, err)
			return exitError
		}
	} else {
		files = []string{path}
	}

	rep := report{Floor: c.effectiveFloor()}
	exit := exitOK

	for _, file := range files {
		h, err := residcheck.AnalyzeFile(file, opts...)
		if err != nil {
			rep.Files = append(rep.Files, fileReport{Path: file, Error: err.Error()})
			exit = exitError
			continue
		}
		fr := c.buildFileReport(h)
		if len(fr.Collisions) > 0 && exit == exitOK {
			exit = exitCollisions
		}
		rep.Files = append(rep.Files, fr)
	}

	if c.jsonOut {
		if err := printJSON(out, rep); err != nil {
			cliutil.PrintError("output encoding failed: %v", err)
			return exitError
		}
	} else {
		c.printText(out, rep)
	}
	return exit
}

// effectiveFloor returns the suggestion floor: the configured floor, but
// never below the minimum ID value.
func (c *cli) effectiveFloor() int {
	return max(c.minVal, c.floor)
}

func (c *cli) buildFileReport(h *resid.Header) fileReport {
	fr := fileReport{
		Path:         h.Path,
		Declarations: len(h.Decls),
	}
	if c.checkUnique {
		for _, col := range h.Collisions() {
			fr.Collisions = append(fr.Collisions, collisionReport{
				Value: col.Value,
				Names: col.Names,
			})
		}
	}
	if c.suggest {
		for _, s := range h.Suggestions(c.effectiveFloor()) {
			fr.Suggestions = append(fr.Suggestions, suggestionReport{
				Value:  s.Value,
				Reason: s.Reason.String(),
			})
		}
	}
	if c.showBlocks {
		for _, b := range h.Blocks() {
			fr.Blocks = append(fr.Blocks, b.Values)
		}
	}
	return fr
}

func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = residcheck.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("residcheck %s\n", version)
}
