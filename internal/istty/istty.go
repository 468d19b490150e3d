// Package istty answers the two terminal questions erronaut needs: is a file
// descriptor a terminal, and how many columns wide is it.
package istty

import "golang.org/x/term"

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	if fd < 0 {
		return false
	}
	return term.IsTerminal(fd)
}

// Width returns the column count of the terminal behind fd. ok is false when
// fd is not a terminal or the size cannot be read.
func Width(fd int) (int, bool) {
	if fd < 0 {
		return 0, false
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}
