// Swatches resolves and previews colour swatch field values.
//
// Editors pick a colour, or a multi-colour entry, from an admin-configured
// palette; swatches re-resolves stored selections against the live palette
// and renders the preview swatches shown in list views. It also serves the
// field type to hosts as a go-plugin.
package main

import (
	"os"

	"github.com/jmylchreest/swatches/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
