// Package proxy implements a document subject behind deferring wrappers.
//
// This package intentionally supports two approaches:
//
//   - v1: DocumentProxy — the classic rendition: a nil check guards
//     one-time construction of the real document on the first Render.
//     Best when exactly one caller renders.
//
//   - v2: DocumentProxyV2 — the same observable contract with the
//     construction step behind a one-shot lazy.Value, so racing first
//     renders still construct exactly once. Best as a default.
//
// Both versions keep the subject contract to a single Render operation and
// write to an injected sink, so the load and display side effects stay
// observable in tests. Neither validates the payload; whatever was stored
// is what gets rendered.
//
// Quick guidance
//
// Use v1 when you want:
//   - The smallest possible moving parts
//   - A strictly single-threaded caller
//
// Use v2 when you want:
//   - Safety when several goroutines may trigger the first render
//   - An Initialized probe for the one-shot state
//
// A Library is also provided: a shelf of named payloads that hands out
// deferring wrappers, so opening documents costs nothing until one is
// actually rendered.
//
// Import
//
//	"github.com/sghaida/prox/proxy"
package proxy
