package proxy

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ErrLibraryPanic is returned if Resolve panics internally.
var ErrLibraryPanic = errors.New("proxy: panic during Resolve")

// MissingDocumentError is the panic value of MustOpen for absent names.
//
// It avoids fmt.Errorf so the lookup path stays cheap.
type MissingDocumentError struct{ Name string }

// Error implements the error interface.
func (e MissingDocumentError) Error() string {
	// Example: proxy: document "readme" missing
	return "proxy: document " + strconv.Quote(e.Name) + " missing"
}

// Library is a simple in-memory shelf of named documents.
//
// It stores raw payloads and hands out deferring wrappers, so holding a
// library, listing it, or even opening every entry loads nothing; each
// document pays its load cost on its own first Render.
type Library struct {
	// out is the sink shared by every document opened from this library.
	out   io.Writer
	items map[string]string
}

// NewLibrary constructs an empty library writing to out.
// A nil out falls back to os.Stdout at load time.
func NewLibrary(out io.Writer) *Library {
	return &Library{out: out, items: map[string]string{}}
}

// Provide stores content under a name and returns the library for chaining.
// Last write wins.
func (l *Library) Provide(name, content string) *Library {
	l.items[name] = content
	return l
}

// Open returns a deferring wrapper for the named document.
// ok is false if the name is absent.
func (l *Library) Open(name string) (Document, bool) {
	content, ok := l.items[name]
	if !ok {
		return nil, false
	}
	return NewDocumentProxyV2(content, l.out), true
}

// Resolve is Open with internal panics converted into errors.
func (l *Library) Resolve(name string) (doc Document, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrLibraryPanic, rec)
		}
	}()

	doc, ok = l.Open(name)
	return doc, ok, nil
}

// MustOpen returns the wrapper or panics with a helpful error.
// Useful in examples/tests where missing names should fail fast.
func (l *Library) MustOpen(name string) Document {
	d, ok := l.Open(name)
	if !ok {
		panic(MissingDocumentError{Name: name})
	}
	return d
}

// Names lists the stored document names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.items))
	for name := range l.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
