package msg

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff computes a line level diff between two texts
func LineDiff(oldText, newText string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// Diff writes the lines that differ between oldText and newText as +/- lines
// and returns the number of added and removed lines
func Diff(w io.Writer, oldText, newText string) (added, removed int) {
	for _, d := range LineDiff(oldText, newText) {
		var prefix string
		var paint func(string, ...any) string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+ ", color.GreenString
		case diffmatchpatch.DiffDelete:
			prefix, paint = "- ", color.RedString
		default:
			continue
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if d.Type == diffmatchpatch.DiffInsert {
				added++
			} else {
				removed++
			}
			fmt.Fprint(w, paint("%s", prefix+strings.TrimSuffix(line, "\n")), "\n")
		}
	}
	return added, removed
}
