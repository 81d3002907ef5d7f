package proxy

import "io"

// DocumentProxy is the v1 deferring wrapper: it stores the payload and the
// sink, and constructs the RealDocument on the first Render via a plain
// nil check.
//
// Construction is cheap and produces no output; the load side effect fires
// on first use, at most once per proxy. Not safe for concurrent Render
// calls; use DocumentProxyV2 when more than one goroutine may trigger the
// first render.
type DocumentProxy struct {
	content string
	out     io.Writer
	real    *RealDocument
}

// NewDocumentProxy stores content and sink only. The real document does
// not exist yet.
func NewDocumentProxy(content string, out io.Writer) *DocumentProxy {
	return &DocumentProxy{content: content, out: out}
}

// Render constructs the real document on the first call, then delegates.
// The held reference transitions from nil at most once and keeps its
// identity for the life of the proxy.
func (p *DocumentProxy) Render() {
	if p.real == nil {
		p.real = NewRealDocument(p.content, p.out)
	}
	p.real.Render()
}

// Initialized reports whether the real document has been constructed.
func (p *DocumentProxy) Initialized() bool { return p.real != nil }
