// csvcat filters, sorts and aggregates delimited text files from the
// command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/csvcat/internal/app"
	"github.com/vegasq/csvcat/internal/config"
	"github.com/vegasq/csvcat/internal/logger"
	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/query"
	"github.com/vegasq/csvcat/table"
)

var (
	version   = "0.1.0"
	buildDate = "dev"
)

// options holds the raw flag values of one invocation
type options struct {
	cfgFile   string
	file      string
	where     string
	orderBy   string
	aggregate string
	schema    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	rootCmd := newRootCmd(opts, stdout)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(opts *options, stdout io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csvcat [flags] [file]",
		Short: "Filter, sort and aggregate CSV files",
		Long: `csvcat loads a delimited text (or parquet) file into memory and runs an
optional filter, an optional sort and an optional aggregate over it, in that
order. Without an aggregate the resulting rows are printed as a table.

Examples:
  csvcat --file products.csv
  csvcat --file products.csv --where "price>150" --order-by brand=asc
  csvcat --file products.csv --aggregate price=avg
  csvcat --file "data/*.csv" --where brand=A --format json
  csvcat --file products.tsv --delimiter '\t' --schema`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.file == "" && len(args) == 1 {
				opts.file = args[0]
			}
			return execute(cmd, opts, stdout)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "input file or glob pattern")
	flags.StringVarP(&opts.where, "where", "w", "", `filter rows, e.g. "price>150" (operators: >, <, =)`)
	flags.StringVarP(&opts.orderBy, "order-by", "o", "", "sort rows, e.g. brand=asc or price=desc")
	flags.StringVarP(&opts.aggregate, "aggregate", "a", "", "aggregate a column, e.g. price=avg ("+strings.Join(query.StrategyNames(), ", ")+")")
	flags.BoolVar(&opts.schema, "schema", false, "describe the columns of the input instead of querying it")
	flags.String("format", "table", "output format: "+strings.Join(output.Formats, ", "))
	flags.Int("limit", 0, "maximum number of printed rows (0 = unlimited)")
	flags.StringP("delimiter", "d", ",", `field delimiter for text input ("\t" for tab)`)
	flags.Bool("trim-spaces", false, "ignore leading white space in fields")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text, json")
	flags.String("log-output", "stderr", "log destination: stderr, stdout or a file path")
	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "csvcat %s (built %s)\n", version, buildDate)
		},
	})

	return rootCmd
}

// execute loads configuration, parses the query tokens and runs the app
func execute(cmd *cobra.Command, opts *options, stdout io.Writer) error {
	if opts.file == "" {
		return fmt.Errorf("missing input file (use --file)")
	}
	if opts.schema && (opts.where != "" || opts.orderBy != "" || opts.aggregate != "") {
		return fmt.Errorf("--schema cannot be combined with --where, --order-by or --aggregate")
	}

	cfg, err := config.Load(opts.cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	// Malformed tokens fail here, before any input is read
	stages, err := parseStages(opts)
	if err != nil {
		return err
	}

	readerOpts, err := cfg.ReaderOptions()
	if err != nil {
		return err
	}

	printer, err := output.New(cfg.Output.Format, stdout)
	if err != nil {
		return err
	}

	a := &app.App{
		Source:  app.FileSource(readerOpts),
		Printer: printer,
		Logger:  log.Named("csvcat").With("file", opts.file),
	}

	log.Info("starting csvcat", "version", version, "file", opts.file, "format", cfg.Output.Format)

	if opts.schema {
		err = a.Schema(opts.file)
	} else {
		err = a.Run(app.Request{File: opts.file, Stages: stages, Limit: cfg.Output.Limit})
	}
	if err != nil {
		log.Error("query failed", "file", opts.file, "error", err)
	}
	return err
}

func parseStages(opts *options) (query.Stages, error) {
	var stages query.Stages
	var err error

	if opts.where != "" {
		if stages.Where, err = query.ParseCondition(opts.where); err != nil {
			return stages, err
		}
	}
	if opts.orderBy != "" {
		if stages.OrderBy, err = query.ParseOrderBy(opts.orderBy); err != nil {
			return stages, err
		}
	}
	if opts.aggregate != "" {
		if stages.Aggregate, err = query.ParseAggregate(opts.aggregate); err != nil {
			return stages, err
		}
	}
	return stages, nil
}

// reportError prints err and, for an unknown column, the columns that exist
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var runErr *app.RunError
	if errors.Is(err, table.ErrMissingColumn) && errors.As(err, &runErr) && len(runErr.Columns) > 0 {
		fmt.Fprintf(w, "\nAvailable columns: %s\n", strings.Join(runErr.Columns, ", "))
	}
}
