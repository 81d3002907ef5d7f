package main

import (
	"github.com/spf13/cobra"

	"github.com/sghaida/prox/internal/logging"
	"github.com/sghaida/prox/proxy"
)

const defaultText = "Hello, Proxy Pattern!"

var (
	eager  bool
	repeat int
)

var renderCmd = &cobra.Command{
	Use:   "render [text]",
	Short: "Render a document, loading it on first use",
	Long: `render builds a document and renders it.

By default a deferring wrapper is used: construction emits nothing and the
load notification appears on the first render only. With --eager the real
document is built up front and the load notification precedes construction
returning.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := defaultText
		if len(args) == 1 {
			text = args[0]
		}

		out := cmd.OutOrStdout()

		var doc proxy.Document
		if eager {
			logging.Debug("constructing real document up front")
			doc = proxy.NewRealDocument(text, out)
		} else {
			logging.Debug("constructing deferring wrapper, nothing loaded yet")
			doc = proxy.NewDocumentProxyV2(text, out)
		}

		for i := 0; i < repeat; i++ {
			doc.Render()
		}
	},
}

func init() {
	renderCmd.Flags().BoolVar(&eager, "eager", false, "load the document at construction instead of first render")
	renderCmd.Flags().IntVar(&repeat, "repeat", 1, "number of times to render")
	rootCmd.AddCommand(renderCmd)
}
