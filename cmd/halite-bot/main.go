// Command halite-bot is the Halite III submission entry point: it reads
// the game stream on stdin and writes commands on stdout (§6).
package main

import "github.com/MyForking/halite3-bot-1/internal/adapters/cli"

func main() {
	cli.Execute()
}
