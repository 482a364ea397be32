package msg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Output receives every message. Tests swap it for a buffer.
var Output io.Writer = os.Stdout

var exit = os.Exit

func printMsg(prefix, format string, a ...any) {
	fmt.Fprint(Output, prefix, ": ")
	fmt.Fprintf(Output, format, a...)
	fmt.Fprint(Output, "\n")
}

func Error(format string, a ...any) { printMsg(color.HiRedString("error"), format, a...) }
func Warn(format string, a ...any)  { printMsg(color.YellowString("warn"), format, a...) }
func Info(format string, a ...any)  { printMsg(color.HiGreenString("info"), format, a...) }

func Fatal(format string, a ...any) {
	printMsg(color.RedString("fatal"), format, a...)
	exit(1)
}

// Created prints a "Created <what>: <path>" line
func Created(what, path string) {
	fmt.Fprintf(Output, "%s %s: %s\n", color.HiGreenString("Created"), what, filepath.ToSlash(path))
}

type IndentWriter struct {
	Indent    string
	W         io.Writer
	didIndent bool
}

func (w *IndentWriter) Write(p []byte) (n int, err error) {
	for _, c := range p {
		if !w.didIndent {
			w.W.Write([]byte(w.Indent))
			w.didIndent = true
		}
		w.W.Write([]byte{c}) // FIXME-perf: buffer this
		if c == '\n' || c == '\r' {
			w.didIndent = false
		}
	}
	return len(p), nil
}
