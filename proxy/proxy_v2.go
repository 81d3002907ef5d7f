package proxy

import (
	"io"

	"github.com/sghaida/prox/lazy"
)

// DocumentProxyV2 is the v2 deferring wrapper. Same observable contract as
// DocumentProxy, but the one-time construction sits behind lazy.Value, so
// goroutines racing the first Render still construct the real document
// exactly once and all delegate to the same instance.
//
// The sink must tolerate concurrent writes if Render itself is called
// concurrently; the wrapper only guarantees the construction side.
type DocumentProxyV2 struct {
	content string
	real    *lazy.Value[RealDocument]
}

// NewDocumentProxyV2 stores content and sink only; the load side effect is
// deferred to the first Render. A nil out falls back to os.Stdout at load
// time.
func NewDocumentProxyV2(content string, out io.Writer) *DocumentProxyV2 {
	return &DocumentProxyV2{
		content: content,
		real: lazy.Defer(func() *RealDocument {
			return NewRealDocument(content, out)
		}),
	}
}

// Render constructs the real document on first use, then delegates.
func (p *DocumentProxyV2) Render() {
	p.real.Get().Render()
}

// Initialized reports whether the first Render has already constructed the
// real document.
func (p *DocumentProxyV2) Initialized() bool { return p.real.Initialized() }

// Content returns the stored payload without triggering construction.
func (p *DocumentProxyV2) Content() string { return p.content }
