// Package parser extracts resource-ID declarations from header source text.
//
// A declaration line has the shape NAME=VALUE, optionally followed by a
// trailing comma and/or a // comment. Lines starting with '/' or '#' and
// lines without an assignment are skipped.
package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fwilleke80/residcheck/internal/types"
	"github.com/fwilleke80/residcheck/resid"
)

// ValueError reports a declaration line whose value text is not a base-10
// integer. It aborts processing of the surrounding file.
type ValueError struct {
	Line int    // 1-based source line
	Text string // offending value text
	Err  error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("line %d: invalid ID value %q", e.Line, e.Text)
}

func (e *ValueError) Unwrap() error { return e.Err }

// Parser extracts declarations from one header's source text.
type Parser struct {
	minValue int
	types.Logger
}

// New returns a Parser that keeps only declarations with value >= minValue.
func New(minValue int, logger *slog.Logger) *Parser {
	return &Parser{
		minValue: minValue,
		Logger:   types.Logger{L: logger},
	}
}

// Parse scans source line by line and returns the declarations found, in
// source order. A line whose value text fails integer conversion yields a
// *ValueError and no declarations.
func (p *Parser) Parse(source []byte) ([]resid.Declaration, error) {
	var decls []resid.Declaration

	sc := bufio.NewScanner(bytes.NewReader(source))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := normalizeLine(sc.Text())
		if !keepLine(line) {
			continue
		}
		name, valueText, ok := splitDeclaration(cleanLine(line))
		if !ok {
			continue
		}

		value, err := strconv.Atoi(valueText)
		if err != nil {
			return nil, &ValueError{Line: lineNo, Text: valueText, Err: err}
		}
		if value < p.minValue {
			p.Trace("declaration below threshold",
				slog.String("name", name),
				slog.Int("value", value),
				slog.Int("line", lineNo))
			continue
		}

		decls = append(decls, resid.Declaration{Name: name, Value: value, Line: lineNo})
		p.Trace("declaration",
			slog.String("name", name),
			slog.Int("value", value),
			slog.Int("line", lineNo))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	p.Log(slog.LevelDebug, "parse complete",
		slog.Int("lines", lineNo),
		slog.Int("declarations", len(decls)))
	return decls, nil
}

// whitespaceStripper removes every tab and space, embedded ones included.
var whitespaceStripper = strings.NewReplacer("\t", "", " ", "")

// normalizeLine drops trailing CR/LF and removes all tabs and spaces.
func normalizeLine(line string) string {
	line = strings.TrimRight(line, "\r\n")
	return whitespaceStripper.Replace(line)
}

// keepLine reports whether a normalized line can hold a declaration:
// long enough, not a comment, not a preprocessor directive, and with an
// assignment.
func keepLine(line string) bool {
	return len(line) > 3 &&
		line[0] != '/' &&
		line[0] != '#' &&
		strings.ContainsRune(line, '=')
}

// cleanLine drops an inline // comment and a single trailing comma.
// The result may be empty; splitDeclaration handles that.
func cleanLine(line string) string {
	if pos := strings.Index(line, "//"); pos != -1 {
		line = line[:pos]
	}
	return strings.TrimSuffix(line, ",")
}

// splitDeclaration splits a cleaned line on '='. Field 0 is the name,
// field 1 the value text; extra fields past the second are ignored.
// Lines with fewer than two fields hold no declaration.
func splitDeclaration(line string) (name, valueText string, ok bool) {
	fields := strings.Split(line, "=")
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}
