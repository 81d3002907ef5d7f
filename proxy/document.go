package proxy

import (
	"fmt"
	"io"
	"os"
)

// Document is the subject contract: one operation, side effect only.
//
// Every realization must be substitutable for any other wherever the
// contract is used; callers may not observe which concrete type they hold,
// apart from when the load side effect fires.
type Document interface {
	Render()
}

// RealDocument is the expensive realization of Document.
//
// The load step runs once, at construction, and writes a notification to
// the sink. Rendering afterwards only emits the stored content.
type RealDocument struct {
	content string
	out     io.Writer
}

// NewRealDocument stores content and performs the load step immediately.
//
// A nil out falls back to os.Stdout.
func NewRealDocument(content string, out io.Writer) *RealDocument {
	if out == nil {
		out = os.Stdout
	}
	d := &RealDocument{content: content, out: out}
	d.load()
	return d
}

// load is the conceptually time-consuming step; here it only announces
// itself on the sink.
func (d *RealDocument) load() {
	fmt.Fprintf(d.out, "Loading Document: %s\n", d.content)
}

// Render emits the stored content. Idempotent: repeat calls write the same
// line again with no further loading cost.
func (d *RealDocument) Render() {
	fmt.Fprintf(d.out, "Displaying Document: %s\n", d.content)
}

// Content returns the stored payload.
func (d *RealDocument) Content() string { return d.content }
