// Command primes answers prime-number queries over a bounded range.
package main

import (
	"context"
	"os"

	"github.com/s-hama/sigma-js-primes/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
