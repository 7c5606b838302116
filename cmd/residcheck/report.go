package main

import (
	"encoding/json"
	"fmt"
	"io"
)

type report struct {
	Floor int          `json:"floor"`
	Files []fileReport `json:"files"`
}

type fileReport struct {
	Path         string             `json:"path"`
	Declarations int                `json:"declarations"`
	Collisions   []collisionReport  `json:"collisions,omitempty"`
	Suggestions  []suggestionReport `json:"suggestions,omitempty"`
	Blocks       [][]int            `json:"blocks,omitempty"`
	Error        string             `json:"error,omitempty"`
}

type collisionReport struct {
	Value int      `json:"value"`
	Names []string `json:"names"`
}

type suggestionReport struct {
	Value  int    `json:"value"`
	Reason string `json:"reason"`
}

func (c *cli) printText(out io.Writer, rep report) {
	for i, fr := range rep.Files {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "Parsing '%s'...\n", fr.Path)

		if fr.Error != "" {
			fmt.Fprintf(out, "  error: %s\n", fr.Error)
			continue
		}
		fmt.Fprintf(out, "%d IDs defined\n", fr.Declarations)

		if c.checkUnique {
			printCollisionsText(out, fr)
		}
		if c.suggest {
			printSuggestionsText(out, fr)
		}
		if c.showBlocks {
			printBlocksText(out, fr)
		}
	}
}

func printCollisionsText(out io.Writer, fr fileReport) {
	switch {
	case fr.Declarations == 0:
		fmt.Fprintln(out, "No IDs defined")
	case len(fr.Collisions) == 0:
		fmt.Fprintln(out, "All IDs are unique")
	default:
		fmt.Fprintln(out, "ID collisions:")
		for _, col := range fr.Collisions {
			fmt.Fprintf(out, "\t%d\n", col.Value)
			for _, name := range col.Names {
				fmt.Fprintf(out, "\t\t%s\n", name)
			}
		}
	}
}

func printSuggestionsText(out io.Writer, fr fileReport) {
	fmt.Fprintln(out, "Suggested free ID values:")
	for _, s := range fr.Suggestions {
		fmt.Fprintf(out, "\t%d (%s)\n", s.Value, s.Reason)
	}
}

func printBlocksText(out io.Writer, fr fileReport) {
	if len(fr.Blocks) == 0 {
		fmt.Fprintln(out, "No ID blocks")
		return
	}
	fmt.Fprintln(out, "ID blocks:")
	for _, b := range fr.Blocks {
		first, last := b[0], b[len(b)-1]
		if first == last {
			fmt.Fprintf(out, "\t%d (1 ID)\n", first)
		} else {
			fmt.Fprintf(out, "\t%d - %d (%d IDs)\n", first, last, len(b))
		}
	}
}

func printJSON(out io.Writer, rep report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
