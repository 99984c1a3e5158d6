// Package app wires plugins and command handlers into the desktop runtime.
package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"devtoolsx/internal/infrastructure/logging"
)

// Main runs b and reports a startup or run-loop failure on stderr. It always
// returns normally; any exit status beyond that is the host runtime's own.
func Main(b *Builder, assets fs.FS, stderr io.Writer) {
	if stderr == nil {
		stderr = os.Stderr
	}

	if err := b.Run(assets); err != nil {
		logging.LogCommandError(b.logger, err, "run", map[string]interface{}{
			"state": b.State().String(),
		})
		fmt.Fprintf(stderr, "Error while running application: %v\n", err)
	}
}
