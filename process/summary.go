package process

import (
	"fmt"
	"strconv"
	"strings"

	"slidefx/patch"
)

// treeWriter produces indented plain text for debug report.
type treeWriter struct {
	w *strings.Builder
}

func newTreeWriter() *treeWriter {
	return &treeWriter{w: &strings.Builder{}}
}

func (tw treeWriter) String() string {
	return tw.w.String()
}

func (tw treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw treeWriter) value(depth int, label, value string) {
	if value != "" {
		value = strconv.Quote(value)
	}
	tw.line(depth, "%s: %s", label, value)
}

// summary describes single pipeline run for debug report.
func summary(src, dst string, res *patch.Result, err error) []byte {
	tw := newTreeWriter()
	tw.line(0, "presentation")
	tw.value(1, "source", src)
	tw.value(1, "result", dst)
	tw.line(1, "state: %s", res.State)
	if err != nil {
		tw.value(1, "error", err.Error())
	}

	skipped := make(map[string]string, len(res.Warnings))
	for _, w := range res.Warnings {
		skipped[w.Path] = w.Error()
	}
	applied := make(map[string]string, len(res.Applied))
	for _, a := range res.Applied {
		applied[a.Path] = a.Transition.String()
	}

	tw.line(1, "slides: %d", len(res.Slides))
	for i, s := range res.Slides {
		tw.line(2, "%d: %s (ordinal %d)", i, s.Path, s.Ordinal)
		switch {
		case i == 0:
			tw.line(3, "first slide, unchanged")
		case applied[s.Path] != "":
			tw.line(3, "transition: %s", applied[s.Path])
		case skipped[s.Path] != "":
			tw.value(3, "skipped", skipped[s.Path])
		}
	}
	return []byte(tw.String())
}
