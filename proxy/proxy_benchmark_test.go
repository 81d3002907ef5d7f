package proxy_test

import (
	"io"
	"testing"

	"github.com/sghaida/prox/proxy"
)

// Construction cost is the point of the pattern: building a wrapper should
// be allocation-cheap next to building the real document.

func BenchmarkNewRealDocument(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = proxy.NewRealDocument("bench payload", io.Discard)
	}
}

func BenchmarkNewDocumentProxy(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = proxy.NewDocumentProxy("bench payload", io.Discard)
	}
}

func BenchmarkNewDocumentProxyV2(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = proxy.NewDocumentProxyV2("bench payload", io.Discard)
	}
}

func BenchmarkDocumentProxyV2_Render(b *testing.B) {
	doc := proxy.NewDocumentProxyV2("bench payload", io.Discard)
	doc.Render() // pay the load up front

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc.Render()
	}
}
