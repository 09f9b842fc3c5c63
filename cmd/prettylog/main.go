// Command prettylog pretty-prints JSON log lines read from files or stdin.
package main

import (
	"os"

	"github.com/philipp01105/prettylog/cmd/prettylog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
