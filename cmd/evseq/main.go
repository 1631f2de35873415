// Command evseq composes, aggregates and converts event-sequence datasets.
package main

import (
	"os"

	"github.com/arloliu/evseq/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
