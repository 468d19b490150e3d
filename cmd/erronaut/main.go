// Command erronaut shows the panels printed by pkt.systems/erronaut: the four
// panel kinds, a recovered panic, a failing timer and the available themes.
package main

import "pkt.systems/erronaut/internal/cli"

func main() {
	cli.Execute()
}
