// Package benchmarks compares the edit scripts of this module with other diff libraries.
package benchmarks

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	sourcegraph "github.com/sourcegraph/go-diff/diff"
	"znkr.io/editscript"
)

type Impl struct {
	Name string
	// Edits returns the number of inserted and deleted lines needed to transform x into y.
	Edits func(x, y []byte) (int, error)
}

var Impls = []Impl{
	{
		Name: "editscript",
		Edits: func(x, y []byte) (int, error) {
			return editscript.Distance(editscript.Script(lines(x), lines(y))), nil
		},
	},
	{
		Name: "editscript-edits",
		Edits: func(x, y []byte) (int, error) {
			edits := 0
			for _, edit := range editscript.Edits(lines(x), lines(y)) {
				if edit.Op != editscript.Keep {
					edits++
				}
			}
			return edits, nil
		},
	},
	{
		Name: "go-internal",
		Edits: func(x, y []byte) (int, error) {
			return countUnified(gointernal.Diff("x", x, "y", y))
		},
	},
	{
		Name: "diffmatchpatch",
		Edits: func(x, y []byte) (int, error) {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			edits := 0
			for _, diff := range diffs {
				if diff.Type != diffmatchpatch.DiffEqual {
					edits += countLines(diff.Text)
				}
			}
			return edits, nil
		},
	},
	{
		Name: "godebug",
		Edits: func(x, y []byte) (int, error) {
			// Every line of the output is prefixed with '+', '-', or ' '.
			edits := 0
			for line := range strings.Lines(godebug.Diff(string(x), string(y))) {
				if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
					edits++
				}
			}
			return edits, nil
		},
	},
	{
		Name: "mb0",
		Edits: func(x, y []byte) (int, error) {
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			edits := 0
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				edits += ch.Del + ch.Ins
			}
			return edits, nil
		},
	},
	{
		Name: "udiff",
		Edits: func(x, y []byte) (int, error) {
			return countUnified([]byte(udiff.Unified("x", "y", string(x), string(y))))
		},
	},
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }

// lines splits text into lines, keeping the line endings.
func lines(text []byte) []string {
	var out []string
	for line := range strings.Lines(string(text)) {
		out = append(out, line)
	}
	return out
}

func countLines(text string) int {
	n := strings.Count(text, "\n")
	if len(text) > 0 && text[len(text)-1] != '\n' {
		n++
	}
	return n
}

// countUnified counts the inserted and deleted lines in a unified diff.
func countUnified(out []byte) (int, error) {
	if len(out) == 0 {
		return 0, nil
	}
	fd, err := sourcegraph.ParseFileDiff(out)
	if err != nil {
		return 0, fmt.Errorf("parsing unified diff: %v", err)
	}
	edits := 0
	for _, hunk := range fd.Hunks {
		for line := range bytes.Lines(hunk.Body) {
			if line[0] == '+' || line[0] == '-' {
				edits++
			}
		}
	}
	return edits, nil
}
