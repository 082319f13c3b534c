package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ncecere/sieve/internal/urlcanon"
)

func newPSLCmd() *cobra.Command {
	psl := &cobra.Command{
		Use:   "psl",
		Short: "Manage the public suffix list used by URL canonicalisation",
	}

	psl.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Refresh the public suffix table (a no-op: the table is compiled in)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := urlcanon.RefreshPublicSuffixList(); err != nil {
				return err
			}
			fmt.Println("public suffix list is compiled in at build time; nothing to refresh")
			return nil
		},
	})

	return psl
}
