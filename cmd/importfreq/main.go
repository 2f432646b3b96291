package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jward/importfreq"
)

var (
	flagCount  int
	flagNoWarn bool
	flagFormat string
	flagScan   bool
	flagJobs   int
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(importfreq.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "importfreq [path]",
	Short: "Count import frequencies across a Go module or workspace",
	Long: "Importfreq loads the Go module or multi-module workspace at the given path\n" +
		"(default: the current directory), counts how often each import path appears\n" +
		"across its source files, and prints a descending frequency table. Use it to\n" +
		"spot imports common enough to centralize.",
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	RunE: runCount,
}

func init() {
	rootCmd.Flags().IntVarP(&flagCount, "count", "c", -1, "cap the number of rows displayed (-1 for all)")
	rootCmd.Flags().BoolVarP(&flagNoWarn, "no-warn", "q", false, "suppress load and skip warnings")
	rootCmd.Flags().StringVar(&flagFormat, "format", "plain", "output format: plain|table")
	rootCmd.Flags().BoolVar(&flagScan, "scan", false, "scan source files directly, without build evaluation (approximate)")
	rootCmd.Flags().IntVar(&flagJobs, "jobs", 0, "parallel extraction workers (default: number of CPUs)")
}

func validateFormat(format string) error {
	switch format {
	case "plain", "table":
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be plain or table", format)
	}
}

func runCount(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	engine := importfreq.New(target,
		importfreq.WithScanMode(flagScan),
		importfreq.WithWorkers(flagJobs),
	)

	res, err := engine.Count(cmd.Context())
	if err != nil {
		return err
	}

	if !flagNoWarn {
		importfreq.RenderWarnings(os.Stderr, res.Warnings)
	}

	entries := importfreq.Rank(res.Counts, flagCount)
	if flagFormat == "table" {
		if err := importfreq.RenderTable(os.Stdout, entries); err != nil {
			return err
		}
	} else {
		if err := importfreq.RenderPlain(os.Stdout, entries); err != nil {
			return err
		}
	}

	printStatus(res)
	return nil
}

// printStatus writes the run summary to stderr, keeping stdout clean for
// the result table.
func printStatus(res *importfreq.Result) {
	fmt.Fprintf(os.Stderr, "Counted %s import(s) of %s distinct path(s) across %s document(s) in %s\n",
		humanize.Comma(int64(res.TotalImports())),
		humanize.Comma(int64(len(res.Counts))),
		humanize.Comma(int64(res.Documents)),
		res.Elapsed.Round(time.Millisecond),
	)
	if res.SkippedGenerated > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d generated file(s)\n", res.SkippedGenerated)
	}
}
