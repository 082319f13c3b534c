// Command sieve is a thin CLI wrapping the sieve aggregation library: it
// runs one search against the configured engines and prints the result,
// or refreshes the public suffix list. It exists to exercise the library
// end to end, not as the library's primary interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "sieve",
		Short: "Fan a query out across configured search engines and merge the results",
	}

	root.AddCommand(newSearchCmd())
	root.AddCommand(newPSLCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
