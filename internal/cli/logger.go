package cli

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// logger carries the command's own diagnostics. Panels go to stdout, this
// goes to stderr.
var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *clog.Logger {
	return clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		Prefix:          "erronaut",
	})
}
