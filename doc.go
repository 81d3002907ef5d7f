// Package prox explores the deferring-wrapper (proxy) pattern for Go.
//
// This repository keeps one toy domain, a document that is expensive to
// load, and shows a small progression of stand-ins for it:
//
//   - v1: DocumentProxy — plain nil-check lazy construction, for a strictly
//     single-threaded caller
//   - v2: DocumentProxyV2 — the construction step behind a one-shot
//     lazy.Value, safe when several goroutines race the first render
//
// The goal is to keep the subject contract tiny (one Render operation),
// keep construction of the wrapper cheap, and pay the load cost at most
// once, on first use, never eagerly.
//
// Start with the examples in the repo for end-to-end usage.
//
// Package prox See subpackages:
//   - proxy: subject contract, real document, deferring wrappers, library
//   - lazy: generic one-shot deferred-construction slot
//   - cmd/prox: demo CLI
//   - examples/*: runnable examples for each version
package prox
