package proxy_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/prox/proxy"
)

//
// -----------------------------------------------------------------------------
// NewLibrary / Provide
// -----------------------------------------------------------------------------

// TestNewLibrary_Empty verifies a fresh library holds no names.
func TestNewLibrary_Empty(t *testing.T) {
	t.Parallel()

	lib := proxy.NewLibrary(nil)
	require.NotNil(t, lib)
	assert.Empty(t, lib.Names())
}

// TestProvide_ChainsAndStores verifies Provide stores entries and returns
// the same library for chaining; Names comes back sorted.
func TestProvide_ChainsAndStores(t *testing.T) {
	t.Parallel()

	lib := proxy.NewLibrary(nil)

	ret := lib.Provide("notes", "n").Provide("agenda", "a")
	require.Same(t, lib, ret)
	assert.Equal(t, []string{"agenda", "notes"}, lib.Names())
}

// TestProvide_LastWriteWins verifies re-providing a name replaces the
// stored payload.
func TestProvide_LastWriteWins(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lib := proxy.NewLibrary(&buf).
		Provide("draft", "first pass").
		Provide("draft", "second pass")

	doc, ok := lib.Open("draft")
	require.True(t, ok)
	doc.Render()

	assert.Contains(t, buf.String(), "Displaying Document: second pass\n")
	assert.NotContains(t, buf.String(), "first pass")
}

//
// -----------------------------------------------------------------------------
// Open / Resolve / MustOpen
// -----------------------------------------------------------------------------

// TestOpen_Missing verifies Open returns (nil,false) for absent names.
func TestOpen_Missing(t *testing.T) {
	t.Parallel()

	doc, ok := proxy.NewLibrary(nil).Open("ghost")
	assert.Nil(t, doc)
	assert.False(t, ok)
}

// TestOpen_LoadsNothing verifies opening every entry emits no output; only
// rendering one pays its load cost.
func TestOpen_LoadsNothing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lib := proxy.NewLibrary(&buf).
		Provide("a", "alpha").
		Provide("b", "beta").
		Provide("c", "gamma")

	docs := make([]proxy.Document, 0, 3)
	for _, name := range lib.Names() {
		doc, ok := lib.Open(name)
		require.True(t, ok)
		docs = append(docs, doc)
	}
	assert.Empty(t, buf.String())

	docs[1].Render()

	out := buf.String()
	assert.Equal(t, 1, countLines(out, "Loading Document:"))
	assert.Equal(t, "Loading Document: beta\nDisplaying Document: beta\n", out)
}

// TestResolve_HappyPath verifies Resolve mirrors Open on the non-panicking
// path.
func TestResolve_HappyPath(t *testing.T) {
	t.Parallel()

	lib := proxy.NewLibrary(nil).Provide("readme", "hello")

	doc, ok, err := lib.Resolve("readme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotNil(t, doc)

	doc, ok, err = lib.Resolve("ghost")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, doc)
}

// TestMustOpen_PanicsOnMissing verifies MustOpen panics with the typed
// error for absent names and succeeds otherwise.
func TestMustOpen_PanicsOnMissing(t *testing.T) {
	t.Parallel()

	lib := proxy.NewLibrary(nil).Provide("readme", "hello")

	assert.NotNil(t, lib.MustOpen("readme"))
	assert.PanicsWithValue(t, proxy.MissingDocumentError{Name: "ghost"}, func() {
		lib.MustOpen("ghost")
	})
}

// TestMissingDocumentError_Message verifies the error message quotes the
// name.
func TestMissingDocumentError_Message(t *testing.T) {
	t.Parallel()

	err := proxy.MissingDocumentError{Name: "ghost"}
	assert.Equal(t, `proxy: document "ghost" missing`, err.Error())
}
