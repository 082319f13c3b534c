package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ncecere/sieve"
	"github.com/ncecere/sieve/internal/engine"
	_ "github.com/ncecere/sieve/internal/engine/mojeek"
	"github.com/ncecere/sieve/internal/httpclient"
	"github.com/ncecere/sieve/internal/model"
)

func newSearchCmd() *cobra.Command {
	var (
		engineNames []string
		page        int
		safe        string
		timeout     time.Duration
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a query against one or more engines and print the merged results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]

			if len(engineNames) == 0 {
				engineNames = []string{"mojeek"}
			}
			engines, err := engine.Build(engineNames)
			if err != nil {
				return err
			}

			sv := sieve.New(httpclient.NewDefault(15*time.Second), engines...).
				WithTimeout(timeout)

			opts := model.DefaultSearchOptions()
			opts.PageNum = page
			opts.SafeSearch = parseSafeSearchFlag(safe)

			ctx, cancel := context.WithTimeout(context.Background(), timeout+5*time.Second)
			defer cancel()

			resp, err := sv.Search(ctx, query, opts)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			printHuman(resp)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&engineNames, "engine", nil, "engine(s) to query (default: mojeek)")
	cmd.Flags().IntVar(&page, "page", 0, "zero-indexed result page")
	cmd.Flags().StringVar(&safe, "safe", "off", "safe search level: off|moderate|strict")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-engine fetch-and-parse timeout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw SearchResponse as JSON")

	return cmd
}

func parseSafeSearchFlag(s string) model.SafeSearch {
	switch strings.ToLower(s) {
	case "moderate":
		return model.SafeSearchModerate
	case "strict":
		return model.SafeSearchStrict
	default:
		return model.SafeSearchOff
	}
}

func printHuman(resp *sieve.SearchResponse) {
	for i, r := range resp.Results {
		fmt.Printf("%d. %s\n   %s\n", i+1, r.Title, r.URL)
		if r.Summary != "" {
			fmt.Printf("   %s\n", r.Summary)
		}
		fmt.Printf("   score=%.4f engines=%d\n\n", r.Score, len(r.Engines))
	}

	for _, s := range resp.Statuses {
		if s.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", s.Engine.Name, s.Err)
		}
	}
}
