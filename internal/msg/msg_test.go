package msg

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	old := Output
	Output = &buf
	t.Cleanup(func() { Output = old })
	return &buf
}

func TestMessages(t *testing.T) {
	buf := capture(t)
	Info("wrote %d files", 2)
	Warn("ignoring %q", "-x")
	Error("oops")
	Created("directory", "src/Source Files")
	assert.Equal(t, "info: wrote 2 files\nwarn: ignoring \"-x\"\nerror: oops\nCreated directory: src/Source Files\n", buf.String())
}

func TestFatal(t *testing.T) {
	buf := capture(t)
	code := -1
	old := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = old })

	Fatal("mkdir %s", "src")
	assert.Equal(t, 1, code)
	assert.Equal(t, "fatal: mkdir src\n", buf.String())
}

func TestIndentWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &IndentWriter{Indent: "  ", W: &buf}
	w.Write([]byte("a\nb"))
	w.Write([]byte("c\n"))
	assert.Equal(t, "  a\n  bc\n", buf.String())
}

func TestDiff(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	added, removed := Diff(&buf, "one\ntwo\nthree\n", "one\n2\nthree\nfour\n")
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)
	assert.Contains(t, buf.String(), "- two\n")
	assert.Contains(t, buf.String(), "+ 2\n")
	assert.Contains(t, buf.String(), "+ four\n")
	assert.NotContains(t, buf.String(), "one")
}

func TestDiff_Identical(t *testing.T) {
	var buf bytes.Buffer
	added, removed := Diff(&buf, "same\n", "same\n")
	assert.Zero(t, added)
	assert.Zero(t, removed)
	assert.Empty(t, buf.String())
}
