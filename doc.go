// Package erronaut prints developer-facing diagnostics as bordered,
// colourised terminal panels. Each panel carries a title (kind and
// timestamp), the message, the payload's detail fields and the call site
// that produced it.
//
// # Design overview
//
//   - One formatter: info, warn, debug and error panels share the layout
//     title / message / details / location and differ only in title text and
//     colour (blue, yellow, green, red).
//   - Details keep insertion order. Keys are capitalised, values are compact
//     JSON, and nested records (Group, Fields, maps, and structs whose JSON
//     form is an object) render as indented blocks. A record that contains
//     itself prints [Circular]; records nested deeper than 16 levels print …
//     instead of their content.
//   - Locations are found by walking the stack to the first frame outside
//     this package, so wrappers never shift the reported call site. Errors
//     built with New remember where they were constructed.
//   - Interception happens at explicit boundaries: Recover for panics that
//     reach the top of main or a goroutine, Go/GoErr/Async for goroutines,
//     AfterFunc/Every for timer callbacks, Catch for errors passed along
//     without a handler. Every boundary prints and then keeps the original
//     behaviour (re-panic or return the error) unless PanicContinue says
//     otherwise.
//   - Printing never fails loudly: render and write faults are dropped and
//     counted by Console.Faults.
//
// # Usage
//
//	func main() {
//		defer erronaut.Recover()
//
//		erronaut.Info("listening", "port", 8080)
//		if err := load(); err != nil {
//			erronaut.Warn("falling back to defaults", "error", err)
//		}
//		erronaut.GoErr(func() error {
//			return sync(ctx) // printed if it fails, nobody waits for it
//		})
//	}
//
//	func load() error {
//		return erronaut.New("timeout", "code", 504, "details", erronaut.Group("host", "api"))
//	}
//
// The error above prints
//
//	╭──────────────────────────────────────────╮
//	│                                          │
//	│    Error - 2024-01-02 15:04:05           │
//	│                                          │
//	│   Message: timeout                       │
//	│                                          │
//	│   Code: 504                              │
//	│   Details:                               │
//	│     Host: "api"                          │
//	│                                          │
//	│   at main.load (/src/app/main.go:17)     │
//	│                                          │
//	╰──────────────────────────────────────────╯
//
// # Integration notes
//
//   - A Console is the injectable reporter; NewInterceptor binds boundaries to
//     one without touching process-wide state.
//   - ConsoleFromEnv reads ERRONAUT_* variables; Default uses it.
//   - StdLogger bridges to *log.Logger, NewHandler to log/slog.
//   - The theme subpackage swaps colours (theme.Set, theme.ByName).
package erronaut
