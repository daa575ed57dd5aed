package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/amp-labs/lazylist/compare"
	"github.com/amp-labs/lazylist/logger"
	"github.com/amp-labs/lazylist/sortedlist"
	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const appName = "lazysort"

var (
	errUnknownOrder  = errors.New("unknown order")
	errUnknownFormat = errors.New("unknown format")
)

type options struct {
	order       string
	locale      string
	ignoreCase  bool
	reverse     bool
	unique      bool
	format      string
	describe    bool
	verbose     bool
	initialSize int
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName + " [file ...]",
		Short: "Sort lines of text",
		Long: `Sort lines read from the given files, or standard input, and write them
to standard output.

Orders:
  lexical   byte-wise string order (default)
  natural   digit runs compare as numbers, so "v2" sorts before "v10"
  numeric   lines are parsed as floating point numbers
  collate   language aware order, see --locale and --ignore-case`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}

			logger.ConfigureLogging(appName,
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithLevel(level))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.order, "order", "o", "lexical", "ordering: lexical, natural, numeric or collate")
	flags.StringVar(&opts.locale, "locale", "und", "BCP 47 language tag used by --order=collate")
	flags.BoolVarP(&opts.ignoreCase, "ignore-case", "f", false, "fold case when collating")
	flags.BoolVarP(&opts.reverse, "reverse", "r", false, "reverse the order")
	flags.BoolVarP(&opts.unique, "unique", "u", false, "print one line per run of equivalent lines")
	flags.StringVar(&opts.format, "format", "text", "output format: text or yaml")
	flags.BoolVar(&opts.describe, "describe", false, "print a summary of the list to stderr")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log list growth")
	flags.IntVar(&opts.initialSize, "initial-capacity", 64, "initial list capacity")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts *options, files []string) error {
	switch opts.order {
	case "lexical":
		return sortLines(ctx, cmd, opts, files, sortedlist.OrderedBehavior[string](), identity)
	case "natural":
		return sortLines(ctx, cmd, opts, files, sortedlist.NaturalStrings(), identity)
	case "numeric":
		return sortLines(ctx, cmd, opts, files, sortedlist.OrderedBehavior[float64](), parseNumber)
	case "collate":
		tag, err := language.Parse(opts.locale)
		if err != nil {
			return fmt.Errorf("invalid --locale %q: %w", opts.locale, err)
		}

		var collateOpts []collate.Option
		if opts.ignoreCase {
			collateOpts = append(collateOpts, collate.IgnoreCase)
		}

		return sortLines(ctx, cmd, opts, files, sortedlist.CollatedStrings(tag, collateOpts...), identity)
	default:
		return fmt.Errorf("%w %q", errUnknownOrder, opts.order)
	}
}

func identity(line string) (string, error) {
	return line, nil
}

func parseNumber(line string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(line), 64)
}

func sortLines[T any](
	ctx context.Context,
	cmd *cobra.Command,
	opts *options,
	files []string,
	behavior *sortedlist.Behavior[T],
	parse func(string) (T, error),
) error {
	if opts.format != "text" && opts.format != "yaml" {
		return fmt.Errorf("%w %q", errUnknownFormat, opts.format)
	}

	if opts.reverse {
		reversed := *behavior
		reversed.Compare = compare.Reverse(behavior.Compare)
		behavior = &reversed
	}

	log := logger.Get(ctx)

	list, err := sortedlist.New(opts.initialSize, behavior,
		sortedlist.WithLogger[T](log),
		sortedlist.WithName[T](appName))
	if err != nil {
		return err
	}

	defer list.Destroy()

	if err := readInto(cmd, files, list, parse); err != nil {
		return err
	}

	log.Debug("input read", "lines", list.Count(), "capacity", list.Capacity())

	if opts.describe {
		fmt.Fprintln(cmd.ErrOrStderr(), list.Describe())
	}

	var lines []T
	if opts.unique {
		lines = uniqueRuns(list)
	} else {
		lines = make([]T, 0, list.Count())
		for v := range list.Seq() {
			lines = append(lines, v)
		}
	}

	out := cmd.OutOrStdout()

	if opts.format == "yaml" {
		enc := yaml.NewEncoder(out)

		if err := enc.Encode(lines); err != nil {
			return err
		}

		return enc.Close()
	}

	w := bufio.NewWriter(out)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, behavior.String(line)); err != nil {
			return err
		}
	}

	return w.Flush()
}

func readInto[T any](cmd *cobra.Command, files []string, list *sortedlist.List[T], parse func(string) (T, error)) error {
	if len(files) == 0 {
		return readLines(cmd.InOrStdin(), "<stdin>", list, parse)
	}

	for _, name := range files {
		if err := readFile(name, list, parse); err != nil {
			return err
		}
	}

	return nil
}

func readFile[T any](name string, list *sortedlist.List[T], parse func(string) (T, error)) error {
	f, err := os.Open(name) //nolint:gosec
	if err != nil {
		return err
	}

	defer f.Close() //nolint:errcheck

	return readLines(f, name, list, parse)
}

func readLines[T any](r io.Reader, source string, list *sortedlist.List[T], parse func(string) (T, error)) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		value, err := parse(scanner.Text())
		if err != nil {
			return fmt.Errorf("%s:%d: %w", source, lineNo, err)
		}

		if !list.Insert(value) {
			return fmt.Errorf("%s:%d: %w", source, lineNo, list.Err())
		}
	}

	return scanner.Err()
}

// uniqueRuns keeps the first element of every run of equivalent elements.
func uniqueRuns[T any](list *sortedlist.List[T]) []T {
	var out []T

	it := list.Begin()
	defer it.Release()

	for ok := !it.AtEnd(); ok; ok = it.StepForward() {
		value := it.Current()
		out = append(out, value)

		if last := list.IndexOf(value, sortedlist.Last); last > it.CurrentIndex() {
			it.SeekTo(last)
		}
	}

	return out
}
