// Command dramctl drives a DRAM controller simulation from a transaction
// trace, either to completion or live behind a debug server.
package main

import "github.com/sarchlab/dramctl/cmd/dramctl/internal/cmd"

func main() {
	cmd.Execute()
}
