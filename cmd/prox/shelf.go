package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/prox/internal/logging"
	"github.com/sghaida/prox/proxy"
)

var shelfCmd = &cobra.Command{
	Use:   "shelf",
	Short: "List a shelf of documents, rendering only one",
	Long: `shelf seeds a small in-memory library, lists its names, then opens
and renders a single entry. Listing and opening load nothing; only the
rendered document pays its load cost.`,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		lib := proxy.NewLibrary(out).
			Provide("readme", defaultText).
			Provide("notes", "Defer the heavy lifting.").
			Provide("draft", "Unfinished thoughts.")

		for _, name := range lib.Names() {
			fmt.Fprintf(out, "- %s\n", name)
		}
		logging.Debug("shelf listed, nothing loaded yet")

		doc := lib.MustOpen("readme")
		doc.Render()
	},
}

func init() {
	rootCmd.AddCommand(shelfCmd)
}
